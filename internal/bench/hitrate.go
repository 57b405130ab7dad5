package bench

// HitRateResult holds hit rates per capacity for one backend.
type HitRateResult struct {
	Name  string          `json:"name"`
	Rates map[int]float64 `json:"rates"` // capacity -> hit rate percentage
}

// DefaultCapacities are the cache capacities to benchmark.
var DefaultCapacities = []int{1024, 4096, 16384}

// RunHitRate replays keys against every registered backend at each capacity
// using a get-or-set loop: a miss inserts the key.
func RunHitRate(capacities []int, keys []string) []HitRateResult {
	results := make([]HitRateResult, 0, len(All()))
	for _, factory := range All() {
		c := factory(capacities[0])
		name := c.Name()
		c.Close()

		rates := make(map[int]float64)
		for _, capacity := range capacities {
			rates[capacity] = replay(factory, keys, capacity)
		}
		results = append(results, HitRateResult{Name: name, Rates: rates})
	}
	return results
}

func replay(factory Factory, keys []string, capacity int) float64 {
	c := factory(capacity)
	defer c.Close()

	var hits int64
	for _, key := range keys {
		if _, ok := c.Get(key); ok {
			hits++
		} else {
			c.Set(key, key)
		}
	}
	return float64(hits) / float64(len(keys)) * 100
}

// AvgHitRate averages a backend's hit rates across the given capacities.
func AvgHitRate(r HitRateResult, capacities []int) float64 {
	var sum float64
	for _, capacity := range capacities {
		sum += r.Rates[capacity]
	}
	return sum / float64(len(capacities))
}
