package policy

import theine "github.com/Yiling-J/theine-go"

type theineStore[K comparable, V any] struct {
	c *theine.Cache[K, V]
}

// NewTheine returns a store backed by theine's W-TinyLFU implementation.
func NewTheine[K comparable, V any](capacity int) Store[K, V] {
	c, _ := theine.NewBuilder[K, V](int64(capacity)).Build()
	return &theineStore[K, V]{c: c}
}

func (s *theineStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *theineStore[K, V]) Set(key K, value V)  { s.c.Set(key, value, 1) }

func (s *theineStore[K, V]) Delete(key K) bool {
	_, ok := s.c.Get(key)
	s.c.Delete(key)
	return ok
}

func (s *theineStore[K, V]) Len() int { return s.c.Len() }

func (s *theineStore[K, V]) Clear() {
	var keys []K
	s.c.Range(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	for _, key := range keys {
		s.c.Delete(key)
	}
}
