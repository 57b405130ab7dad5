package bench

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackends(t *testing.T) {
	t.Run("every registered backend round trips", func(t *testing.T) {
		for _, name := range AvailableNames() {
			factory, ok := registry[name]
			require.True(t, ok, name)

			c := factory(1024)
			assert.Equal(t, name, c.Name())

			c.Set("k", "v")
			switch name {
			case "null":
				_, ok := c.Get("k")
				assert.False(t, ok, name)
			case "ristretto":
				// Writes land through an async buffer.
				require.Eventually(t, func() bool {
					_, ok := c.Get("k")
					return ok
				}, time.Second, time.Millisecond, name)
			default:
				v, ok := c.Get("k")
				require.True(t, ok, name)
				assert.Equal(t, "v", v, name)
			}
			c.Close()
		}
	})

	t.Run("order and registry agree", func(t *testing.T) {
		assert.Len(t, defaultOrder, len(registry))
		for _, name := range defaultOrder {
			_, ok := registry[name]
			assert.True(t, ok, name)
		}
	})
}

func TestSetFilter(t *testing.T) {
	t.Cleanup(func() { SetFilter(nil) })

	SetFilter([]string{"lru", "strategy"})
	assert.Equal(t, []string{"strategy", "lru"}, AllNames())
	assert.Len(t, All(), 2)

	SetFilter(nil)
	assert.Equal(t, AvailableNames(), AllNames())
}

func TestRunHitRate(t *testing.T) {
	t.Cleanup(func() { SetFilter(nil) })
	SetFilter([]string{"strategy", "null", "lru"})

	// A repeating key sequence where the second pass can hit.
	var keys []string
	for range 4 {
		for i := range 500 {
			keys = append(keys, strconv.Itoa(i))
		}
	}

	results := RunHitRate([]int{1000}, keys)
	require.Len(t, results, 3)

	byName := make(map[string]HitRateResult)
	for _, r := range results {
		byName[r.Name] = r
	}

	// The keyspace fits, so bounded caches approach 75% (3 of 4 passes hit).
	assert.InDelta(t, 75.0, byName["lru"].Rates[1000], 1.0)
	assert.InDelta(t, 75.0, byName["strategy"].Rates[1000], 1.0)

	// The null backend never hits.
	assert.Zero(t, byName["null"].Rates[1000])
}

func TestAvgHitRate(t *testing.T) {
	r := HitRateResult{Name: "x", Rates: map[int]float64{10: 50, 20: 100}}
	assert.Equal(t, 75.0, AvgHitRate(r, []int{10, 20}))
}
