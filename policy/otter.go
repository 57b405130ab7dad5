package policy

import "github.com/maypok86/otter/v2"

type otterStore[K comparable, V any] struct {
	c *otter.Cache[K, V]
}

// NewOtter returns a store backed by otter's adaptive W-TinyLFU policy.
func NewOtter[K comparable, V any](capacity int) Store[K, V] {
	c := otter.Must(&otter.Options[K, V]{MaximumSize: capacity})
	return &otterStore[K, V]{c: c}
}

func (s *otterStore[K, V]) Get(key K) (V, bool) { return s.c.GetIfPresent(key) }
func (s *otterStore[K, V]) Set(key K, value V)  { s.c.Set(key, value) }

func (s *otterStore[K, V]) Delete(key K) bool {
	_, ok := s.c.GetIfPresent(key)
	s.c.Invalidate(key)
	return ok
}

func (s *otterStore[K, V]) Len() int { return s.c.EstimatedSize() }
func (s *otterStore[K, V]) Clear()   { s.c.InvalidateAll() }
