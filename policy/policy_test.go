package policy

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("builds every named policy", func(t *testing.T) {
		for _, name := range Names() {
			s, err := New(name, 64)
			require.NoError(t, err, name)
			require.NotNil(t, s, name)

			s.Set("k", "v")
			v, ok := s.Get("k")
			require.True(t, ok, name)
			assert.Equal(t, "v", v, name)
		}
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := New("arc4random", 64)
		assert.Error(t, err)
	})
}

func TestStoreContract(t *testing.T) {
	// Backends with asynchronous admission (otter, theine) may decline or
	// delay writes, so the strict contract is checked on the synchronous
	// ones only.
	stores := map[string]Store[string, string]{
		"lru":     NewLRU[string, string](8),
		"2q":      NewTwoQueue[string, string](8),
		"sieve":   NewSieve[string, string](8),
		"s3-fifo": NewS3FIFO[string, string](8),
		"lfu":     NewLFU[string, string](8),
		"fifo":    NewFIFO[string, string](8),
		"clock":   NewClock[string, string](8),
		"ttl":     NewTTL[string, string](8, time.Minute),
		"freelru": NewFreeLRU[string](8),
	}

	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			_, ok := s.Get("missing")
			assert.False(t, ok)

			s.Set("a", "1")
			s.Set("b", "2")

			v, ok := s.Get("a")
			require.True(t, ok)
			assert.Equal(t, "1", v)
			assert.Equal(t, 2, s.Len())

			assert.True(t, s.Delete("a"))
			assert.False(t, s.Delete("a"))
			assert.Equal(t, 1, s.Len())

			s.Clear()
			assert.Equal(t, 0, s.Len())
			_, ok = s.Get("b")
			assert.False(t, ok)
		})
	}
}

func TestLRUEviction(t *testing.T) {
	s := NewLRU[string, int](3)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)
	s.Get("a") // refresh a
	s.Set("d", 4)

	assert.Equal(t, 3, s.Len())
	_, ok := s.Get("b")
	assert.False(t, ok, "least recently used entry should be gone")
	_, ok = s.Get("a")
	assert.True(t, ok)
}

func TestBoundedStores(t *testing.T) {
	builders := map[string]func(int) Store[string, int]{
		"lru":     NewLRU[string, int],
		"sieve":   NewSieve[string, int],
		"s3-fifo": NewS3FIFO[string, int],
		"lfu":     NewLFU[string, int],
		"fifo":    NewFIFO[string, int],
		"clock":   NewClock[string, int],
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			const capacity = 16
			s := build(capacity)
			for i := range 200 {
				s.Set(fmt.Sprintf("key-%d", i), i)
			}
			assert.LessOrEqual(t, s.Len(), capacity)
		})
	}
}

func TestTTLExpiry(t *testing.T) {
	s := NewTTL[string, string](8, 20*time.Millisecond)

	s.Set("k", "v")
	_, ok := s.Get("k")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = s.Get("k")
	assert.False(t, ok, "entry should expire after its TTL")
}
