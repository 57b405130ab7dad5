package schemacache

import "fmt"

// Memoized is a function wrapped with result caching. See Memoize.
type Memoized[K comparable, V any] struct {
	fn    func(K) V
	cache Strategy
}

// Memoize wraps fn so repeated calls with the same argument are served from
// a bounded memo cache sharing s's size bound. When s is a disabled (null)
// strategy, fn is invoked on every call: toggling cache configuration never
// changes results, only speed.
//
// The memo cache is private to the returned wrapper, so Clear drops only the
// wrapper's results, not s's contents. Arguments are keyed by their fmt "%v"
// rendering; distinct values with the same rendering share an entry.
func Memoize[K comparable, V any](s Strategy, fn func(K) V) *Memoized[K, V] {
	st := s.Stats()
	if !st.Enabled {
		return &Memoized[K, V]{fn: fn}
	}
	return &Memoized[K, V]{
		fn:    fn,
		cache: newActiveStrategy(nil, st.MaxSize, false),
	}
}

// Call invokes the wrapped function, consulting the memo cache first.
func (m *Memoized[K, V]) Call(arg K) V {
	if m.cache == nil {
		return m.fn(arg)
	}
	key := fmt.Sprintf("%v", arg)
	if v, ok := m.cache.Get(key); ok {
		return v.(V)
	}
	v := m.fn(arg)
	m.cache.Set(key, v)
	return v
}

// Clear drops all memoized results.
func (m *Memoized[K, V]) Clear() {
	if m.cache != nil {
		m.cache.Clear()
	}
}
