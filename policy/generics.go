package policy

import (
	gc "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/clock"
	"github.com/Code-Hex/go-generics-cache/policy/fifo"
	"github.com/Code-Hex/go-generics-cache/policy/lfu"
)

// genericsStore adapts go-generics-cache, which supplies the LFU, FIFO and
// CLOCK policies behind one synchronized cache type.
type genericsStore[K comparable, V any] struct {
	c *gc.Cache[K, V]
}

// NewLFU returns a store evicting the least frequently used entry.
func NewLFU[K comparable, V any](capacity int) Store[K, V] {
	return &genericsStore[K, V]{c: gc.New(gc.AsLFU[K, V](lfu.WithCapacity(capacity)))}
}

// NewFIFO returns a store evicting the oldest inserted entry regardless of
// access.
func NewFIFO[K comparable, V any](capacity int) Store[K, V] {
	return &genericsStore[K, V]{c: gc.New(gc.AsFIFO[K, V](fifo.WithCapacity(capacity)))}
}

// NewClock returns a store using the CLOCK second-chance algorithm.
func NewClock[K comparable, V any](capacity int) Store[K, V] {
	return &genericsStore[K, V]{c: gc.New(gc.AsClock[K, V](clock.WithCapacity(capacity)))}
}

func (s *genericsStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *genericsStore[K, V]) Set(key K, value V)  { s.c.Set(key, value) }

func (s *genericsStore[K, V]) Delete(key K) bool {
	if !s.c.Contains(key) {
		return false
	}
	s.c.Delete(key)
	return true
}

func (s *genericsStore[K, V]) Len() int { return len(s.c.Keys()) }

func (s *genericsStore[K, V]) Clear() {
	for _, key := range s.c.Keys() {
		s.c.Delete(key)
	}
}
