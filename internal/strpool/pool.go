package strpool

import (
	"strings"
	"sync"
)

var pool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

// Get returns an empty builder from the pool.
func Get() *strings.Builder {
	b := pool.Get().(*strings.Builder)
	b.Reset()
	return b
}

// Put resets the builder and hands it back.
func Put(b *strings.Builder) {
	b.Reset()
	pool.Put(b)
}
