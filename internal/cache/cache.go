package cache

// Cache is the small keyed store the catalog loader memoizes parsed files in.
type Cache interface {
	Get(key interface{}) (interface{}, bool)
	Add(key, value interface{})
	Keys() []interface{}
	Delete(key interface{})
	Purge()
}
