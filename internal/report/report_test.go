package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tstromberg/schemacache/internal/bench"
)

func sampleResults() Results {
	return Results{
		Command:    "schemacache-bench -caches lru,otter",
		Machine:    CurrentMachine(),
		Capacities: []int{1024, 4096},
		Threads:    []int{1, 4},
		HitRate: []bench.HitRateResult{
			{Name: "lru", Rates: map[int]float64{1024: 40.5, 4096: 62.1}},
			{Name: "otter", Rates: map[int]float64{1024: 48.2, 4096: 66.9}},
		},
		Throughput: []bench.ThroughputResult{
			{Name: "lru", QPS: map[int]float64{1: 900_000, 4: 2_400_000}},
			{Name: "otter", QPS: map[int]float64{1: 1_100_000, 4: 4_100_000}},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, WriteJSON(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Results
	require.NoError(t, json.Unmarshal(data, &got))
	assert.NotEmpty(t, got.Timestamp)
	assert.Len(t, got.HitRate, 2)
	assert.Equal(t, 62.1, got.HitRate[0].Rates[4096])
}

func TestWriteMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.md")
	require.NoError(t, WriteMarkdown(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	md := string(data)

	assert.Contains(t, md, "# schemacache-bench results")
	assert.Contains(t, md, "| lru |")
	assert.Contains(t, md, "| otter |")
	assert.Contains(t, md, "48.20%")
	assert.Contains(t, md, "4.10M")

	// Tables are sorted best-first: otter wins both suites.
	assert.Less(t, indexOf(md, "| otter |"), indexOf(md, "| lru |"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
