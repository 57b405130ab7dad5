package policy

import lru "github.com/hashicorp/golang-lru/v2"

type lruStore[K comparable, V any] struct {
	c *lru.Cache[K, V]
}

// NewLRU returns a store evicting the least recently used entry at capacity.
func NewLRU[K comparable, V any](capacity int) Store[K, V] {
	c, _ := lru.New[K, V](capacity)
	return &lruStore[K, V]{c: c}
}

func (s *lruStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *lruStore[K, V]) Set(key K, value V)  { s.c.Add(key, value) }
func (s *lruStore[K, V]) Delete(key K) bool   { return s.c.Remove(key) }
func (s *lruStore[K, V]) Len() int            { return s.c.Len() }
func (s *lruStore[K, V]) Clear()              { s.c.Purge() }

type twoQueueStore[K comparable, V any] struct {
	c *lru.TwoQueueCache[K, V]
}

// NewTwoQueue returns a 2Q store, an LRU variant resistant to pollution from
// one-off scans.
func NewTwoQueue[K comparable, V any](capacity int) Store[K, V] {
	c, _ := lru.New2Q[K, V](capacity)
	return &twoQueueStore[K, V]{c: c}
}

func (s *twoQueueStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *twoQueueStore[K, V]) Set(key K, value V)  { s.c.Add(key, value) }

func (s *twoQueueStore[K, V]) Delete(key K) bool {
	ok := s.c.Contains(key)
	s.c.Remove(key)
	return ok
}

func (s *twoQueueStore[K, V]) Len() int { return s.c.Len() }
func (s *twoQueueStore[K, V]) Clear()   { s.c.Purge() }
