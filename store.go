package schemacache

// Store is the key-value container behind an active strategy. The strategy
// owns the store once supplied: its lock only covers operations that go
// through the strategy, so direct external access voids the thread-safety
// guarantee.
//
// Instantiated as Store[string, any], the adapters in the policy package
// satisfy this interface.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string) bool
	Len() int
	Clear()
}

// mapStore is the default unbounded store. The owning strategy serializes
// access and enforces the size bound, so no locking happens here.
type mapStore map[string]any

func newMapStore() mapStore { return make(mapStore) }

func (m mapStore) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Set(key string, value any) { m[key] = value }

func (m mapStore) Delete(key string) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}

func (m mapStore) Len() int { return len(m) }

func (m mapStore) Clear() { clear(m) }
