package schemacache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveStrategy(t *testing.T) {
	t.Run("get and set", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)

		_, ok := s.Get("missing")
		assert.False(t, ok)

		s.Set("k", "v")
		v, ok := s.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("contains does not touch stats", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		s.Set("k", 1)

		assert.True(t, s.Contains("k"))
		assert.False(t, s.Contains("other"))

		st := s.Stats()
		assert.Zero(t, st.Hits)
		assert.Zero(t, st.Misses)
	})

	t.Run("remove", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		s.Set("k", 1)

		assert.True(t, s.Remove("k"))
		assert.False(t, s.Remove("k"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("size bound holds after every set", func(t *testing.T) {
		const maxSize = 5
		s := newActiveStrategy(nil, maxSize, false)

		for i := range 100 {
			s.Set(fmt.Sprintf("key-%d", i), i)
			assert.LessOrEqual(t, s.Len(), maxSize)
		}
	})

	t.Run("overflow drops the whole store", func(t *testing.T) {
		s := newActiveStrategy(nil, 2, false)
		s.Set("a", 1)
		s.Set("b", 2)
		s.Set("c", 3)

		assert.Equal(t, 1, s.Len())
		assert.True(t, s.Contains("c"))
		assert.False(t, s.Contains("a"))
		assert.False(t, s.Contains("b"))
	})

	t.Run("overwriting an existing key never evicts", func(t *testing.T) {
		s := newActiveStrategy(nil, 2, false)
		s.Set("a", 1)
		s.Set("b", 2)
		s.Set("b", 3)

		assert.Equal(t, 2, s.Len())
		v, ok := s.Get("b")
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("clear resets contents and stats", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		s.Set("k", 1)
		s.Get("k")
		s.Get("missing")

		s.Clear()

		st := s.Stats()
		assert.Zero(t, st.Hits)
		assert.Zero(t, st.Misses)
		assert.Zero(t, st.Len)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("non-positive max size falls back to default", func(t *testing.T) {
		s := newActiveStrategy(nil, 0, false)
		assert.Equal(t, DefaultConfig().MaxSize, s.Stats().MaxSize)
	})
}

func TestActiveStrategyStats(t *testing.T) {
	t.Run("hit rate formula", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		s.Set("k", 1)

		s.Get("k")       // hit
		s.Get("k")       // hit
		s.Get("k")       // hit
		s.Get("missing") // miss

		st := s.Stats()
		assert.Equal(t, uint64(3), st.Hits)
		assert.Equal(t, uint64(1), st.Misses)
		assert.Equal(t, 0.75, st.HitRate)
		assert.True(t, st.Enabled)
	})

	t.Run("hit rate is zero before any lookup", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		assert.Zero(t, s.Stats().HitRate)
	})

	t.Run("counters never decrease between clears", func(t *testing.T) {
		s := newActiveStrategy(nil, 10, false)
		s.Set("k", 1)

		var prevHits, prevMisses uint64
		for i := range 50 {
			if i%2 == 0 {
				s.Get("k")
			} else {
				s.Get("missing")
			}
			st := s.Stats()
			assert.GreaterOrEqual(t, st.Hits, prevHits)
			assert.GreaterOrEqual(t, st.Misses, prevMisses)
			prevHits, prevMisses = st.Hits, st.Misses
		}
	})
}

func TestNullStrategy(t *testing.T) {
	s := nullStrategy{}

	t.Run("every operation is absent or zero", func(t *testing.T) {
		s.Set("k", "v")
		v, ok := s.Get("k")
		assert.Nil(t, v)
		assert.False(t, ok)
		assert.False(t, s.Contains("k"))
		assert.False(t, s.Remove("k"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("stats report disabled", func(t *testing.T) {
		st := s.Stats()
		assert.False(t, st.Enabled)
		assert.Zero(t, st.Hits)
		assert.Zero(t, st.Misses)
		assert.Zero(t, st.HitRate)
	})
}

func TestStrategyConcurrency(t *testing.T) {
	s := newActiveStrategy(nil, 128, false)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				key := fmt.Sprintf("key-%d", (g*1000+i)%256)
				s.Set(key, i)
				s.Get(key)
				s.Contains(key)
				if i%100 == 0 {
					s.Clear()
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), 128)
}
