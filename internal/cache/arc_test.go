package cache

import "testing"

func TestNewLRUInvalidSize(t *testing.T) {
	t.Parallel()

	if _, err := NewLRU(0); err == nil {
		t.Fatal("expected error for zero sized cache")
	}
}

func TestLRU(t *testing.T) {
	t.Parallel()

	c, err := NewLRU(2)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	c.Add("a", 1)
	c.Add("b", 2)

	if v, ok := c.Get("a"); !ok || v.(int) != 1 {
		t.Errorf("expected 1 got %#v", v)
	}

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be deleted")
	}

	if len(c.Keys()) != 1 {
		t.Errorf("expected 1 key got %d", len(c.Keys()))
	}

	c.Purge()
	if len(c.Keys()) != 0 {
		t.Errorf("expected empty cache got %d keys", len(c.Keys()))
	}
}
