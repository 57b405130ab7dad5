package policy

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// DefaultTTL is the expiry used by the "ttl" builder.
const DefaultTTL = 5 * time.Minute

type ttlStore[K comparable, V any] struct {
	c *ttlcache.Cache[K, V]
}

// NewTTL returns a store whose entries expire after ttl and which evicts the
// oldest entry beyond capacity. No background janitor is started: expired
// entries are rejected on access, so Len may count entries that are already
// past their TTL.
func NewTTL[K comparable, V any](capacity int, ttl time.Duration) Store[K, V] {
	c := ttlcache.New[K, V](
		ttlcache.WithCapacity[K, V](uint64(capacity)), //nolint:gosec // capacity always positive
		ttlcache.WithTTL[K, V](ttl),
	)
	return &ttlStore[K, V]{c: c}
}

func (s *ttlStore[K, V]) Get(key K) (V, bool) {
	item := s.c.Get(key)
	if item == nil {
		var zero V
		return zero, false
	}
	return item.Value(), true
}

func (s *ttlStore[K, V]) Set(key K, value V) {
	s.c.Set(key, value, ttlcache.DefaultTTL)
}

func (s *ttlStore[K, V]) Delete(key K) bool {
	ok := s.c.Has(key)
	s.c.Delete(key)
	return ok
}

func (s *ttlStore[K, V]) Len() int { return s.c.Len() }
func (s *ttlStore[K, V]) Clear()   { s.c.DeleteAll() }
