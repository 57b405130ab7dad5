package policy

import (
	freelru "github.com/elastic/go-freelru"
	"github.com/zeebo/xxh3"
)

func hashString(s string) uint32 {
	return uint32(xxh3.HashString(s))
}

type freeLRUStore[V any] struct {
	c *freelru.SyncedLRU[string, V]
}

// NewFreeLRU returns a string-keyed LRU store backed by go-freelru, which
// keeps entries in a fixed-capacity, GC-friendly hash table.
func NewFreeLRU[V any](capacity int) Store[string, V] {
	c, _ := freelru.NewSynced[string, V](uint32(capacity), hashString) //nolint:gosec // capacity always positive
	return &freeLRUStore[V]{c: c}
}

func (s *freeLRUStore[V]) Get(key string) (V, bool) { return s.c.Get(key) }
func (s *freeLRUStore[V]) Set(key string, value V)  { s.c.Add(key, value) }
func (s *freeLRUStore[V]) Delete(key string) bool   { return s.c.Remove(key) }
func (s *freeLRUStore[V]) Len() int                 { return s.c.Len() }
func (s *freeLRUStore[V]) Clear()                   { s.c.Purge() }
