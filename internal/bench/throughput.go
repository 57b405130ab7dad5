package bench

import (
	"sync"
	"sync/atomic"
	"time"
)

// ThroughputResult holds multi-goroutine throughput for one backend.
type ThroughputResult struct {
	Name string          `json:"name"`
	QPS  map[int]float64 `json:"qps"` // goroutine count -> QPS
}

// DefaultThreadCounts are the goroutine counts to benchmark.
var DefaultThreadCounts = []int{1, 4, 8}

const (
	// ThroughputCapacity is the backend capacity used for throughput runs.
	ThroughputCapacity = 8192
	runDuration        = 500 * time.Millisecond
	opsBatchSize       = 1000
)

// RunThroughput measures QPS at each goroutine count against every
// registered backend using a 75% read / 25% write mix over keys.
func RunThroughput(threadCounts []int, keys []string) []ThroughputResult {
	results := make([]ThroughputResult, 0, len(All()))
	for _, factory := range All() {
		c := factory(ThroughputCapacity)
		name := c.Name()
		c.Close()

		qps := make(map[int]float64)
		for _, threads := range threadCounts {
			qps[threads] = measureQPS(factory, keys, threads)
		}
		results = append(results, ThroughputResult{Name: name, QPS: qps})
	}
	return results
}

func measureQPS(factory Factory, keys []string, threads int) float64 {
	c := factory(ThroughputCapacity)
	defer c.Close()

	// Pre-populate so reads can hit.
	for _, key := range keys[:min(len(keys), ThroughputCapacity)] {
		c.Set(key, key)
	}

	var ops atomic.Int64
	var stop atomic.Bool
	var wg sync.WaitGroup

	workloadLen := len(keys)

	for range threads {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; ; {
				for range opsBatchSize {
					key := keys[i%workloadLen]
					if i%4 == 0 { // 25% writes
						c.Set(key, key)
					} else { // 75% reads
						c.Get(key)
					}
					i++
				}
				ops.Add(opsBatchSize)
				if stop.Load() {
					return
				}
			}
		}()
	}

	time.Sleep(runDuration)
	stop.Store(true)
	wg.Wait()

	return float64(ops.Load()) / runDuration.Seconds()
}
