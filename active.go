package schemacache

import "sync"

// activeStrategy is the caching variant. One mutex per instance guards the
// store and counters, so operations on different named caches never contend
// with each other or with the registry.
type activeStrategy struct {
	mu      sync.Mutex
	store   Store
	maxSize int
	// selfEvicting stores enforce their own capacity; the strategy then
	// performs no eviction of its own.
	selfEvicting bool
	hits         uint64
	misses       uint64
}

func newActiveStrategy(store Store, maxSize int, selfEvicting bool) *activeStrategy {
	if store == nil {
		store = newMapStore()
	}
	if maxSize <= 0 {
		maxSize = DefaultConfig().MaxSize
	}
	return &activeStrategy{store: store, maxSize: maxSize, selfEvicting: selfEvicting}
}

func (s *activeStrategy) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.store.Get(key); ok {
		s.hits++
		return v, true
	}
	s.misses++
	return nil, false
}

// Set inserts a value. When the default store is at capacity and the key is
// new, the entire store is dropped first. Whole-cache eviction is strictly
// simpler than the per-key policies in the policy package; it keeps the hot
// schema-generation path at O(1) bookkeeping per insert.
func (s *activeStrategy) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.selfEvicting && s.store.Len() >= s.maxSize {
		if _, ok := s.store.Get(key); !ok {
			s.store.Clear()
		}
	}
	s.store.Set(key, value)
}

func (s *activeStrategy) Contains(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.store.Get(key)
	return ok
}

func (s *activeStrategy) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(key)
}

func (s *activeStrategy) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

func (s *activeStrategy) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Clear()
	s.hits = 0
	s.misses = 0
}

func (s *activeStrategy) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		Hits:    s.hits,
		Misses:  s.misses,
		MaxSize: s.maxSize,
		Len:     s.store.Len(),
		Enabled: true,
	}
	if total := s.hits + s.misses; total > 0 {
		st.HitRate = float64(s.hits) / float64(total)
	}
	return st
}
