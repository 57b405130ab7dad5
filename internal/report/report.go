// Package report renders benchmark results to JSON and Markdown files.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/tstromberg/schemacache/internal/bench"
)

// Machine describes the host a run was produced on.
type Machine struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
	GoVersion string `json:"go_version"`
}

// Results aggregates everything a benchmark run produced.
type Results struct {
	Timestamp  string                   `json:"timestamp"`
	Command    string                   `json:"command"`
	Machine    Machine                  `json:"machine"`
	Capacities []int                    `json:"capacities,omitempty"`
	Threads    []int                    `json:"threads,omitempty"`
	HitRate    []bench.HitRateResult    `json:"hit_rate,omitempty"`
	Throughput []bench.ThroughputResult `json:"throughput,omitempty"`
}

// CurrentMachine fills a Machine from the running process.
func CurrentMachine() Machine {
	return Machine{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
}

// WriteJSON writes results to a JSON file.
func WriteJSON(filename string, results Results) error {
	results.Timestamp = time.Now().Format(time.RFC3339)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteMarkdown writes results as Markdown tables.
func WriteMarkdown(filename string, results Results) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString("# schemacache-bench results\n\n")
	fmt.Fprintf(&b, "- command: `%s`\n", results.Command)
	fmt.Fprintf(&b, "- machine: %s/%s, %d CPUs, %s\n\n",
		results.Machine.OS, results.Machine.Arch, results.Machine.NumCPU, results.Machine.GoVersion)

	if len(results.HitRate) > 0 {
		b.WriteString("## Hit rate (Zipf, get-or-set)\n\n")
		writeHitRateTable(&b, results.HitRate, results.Capacities)
	}

	if len(results.Throughput) > 0 {
		b.WriteString("## Throughput (75% read / 25% write)\n\n")
		writeThroughputTable(&b, results.Throughput, results.Threads)
	}

	_, err = f.WriteString(b.String())
	return err
}

func writeHitRateTable(b *strings.Builder, results []bench.HitRateResult, capacities []int) {
	sorted := make([]bench.HitRateResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return bench.AvgHitRate(sorted[i], capacities) > bench.AvgHitRate(sorted[j], capacities)
	})

	b.WriteString("| Cache |")
	for _, capacity := range capacities {
		fmt.Fprintf(b, " %d |", capacity)
	}
	b.WriteString(" Avg |\n")

	b.WriteString("|---|")
	for range capacities {
		b.WriteString("---|")
	}
	b.WriteString("---|\n")

	for _, r := range sorted {
		fmt.Fprintf(b, "| %s |", r.Name)
		for _, capacity := range capacities {
			fmt.Fprintf(b, " %.2f%% |", r.Rates[capacity])
		}
		fmt.Fprintf(b, " %.2f%% |\n", bench.AvgHitRate(r, capacities))
	}
	b.WriteString("\n")
}

func writeThroughputTable(b *strings.Builder, results []bench.ThroughputResult, threads []int) {
	avgQPS := func(r bench.ThroughputResult) float64 {
		var sum float64
		for _, t := range threads {
			sum += r.QPS[t]
		}
		return sum / float64(len(threads))
	}

	sorted := make([]bench.ThroughputResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return avgQPS(sorted[i]) > avgQPS(sorted[j])
	})

	b.WriteString("| Cache |")
	for _, t := range threads {
		fmt.Fprintf(b, " %dT |", t)
	}
	b.WriteString(" Avg |\n")

	b.WriteString("|---|")
	for range threads {
		b.WriteString("---|")
	}
	b.WriteString("---|\n")

	for _, r := range sorted {
		fmt.Fprintf(b, "| %s |", r.Name)
		for _, t := range threads {
			fmt.Fprintf(b, " %s |", formatQPS(r.QPS[t]))
		}
		fmt.Fprintf(b, " %s |\n", formatQPS(avgQPS(r)))
	}
	b.WriteString("\n")
}

func formatQPS(qps float64) string {
	if qps >= 1_000_000 {
		return fmt.Sprintf("%.2fM", qps/1_000_000)
	}
	return fmt.Sprintf("%.0fK", qps/1_000)
}
