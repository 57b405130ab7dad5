// schemacache-bench compares the cache strategies and policy stores shipped
// by schemacache by replaying synthetic workloads against each of them.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tstromberg/schemacache/internal/bench"
	"github.com/tstromberg/schemacache/internal/report"
	"github.com/tstromberg/schemacache/internal/workload"
)

// parseIntList parses a comma-separated string of integers.
func parseIntList(input string) []int {
	var result []int
	for s := range strings.SplitSeq(input, ",") {
		s = strings.TrimSpace(s)
		var value int
		if _, err := fmt.Sscanf(s, "%d", &value); err == nil {
			result = append(result, value)
		}
	}
	return result
}

func main() {
	showHelp := flag.Bool("help", false, "Show help message")
	caches := flag.String("caches", "", "Comma-separated list of backends to benchmark (default: all)")
	sizes := flag.String("sizes", "", "Comma-separated cache capacities (default: 1024,4096,16384)")
	threads := flag.String("threads", "", "Comma-separated goroutine counts for throughput (default: 1,4,8)")
	ops := flag.Int("ops", 500_000, "Number of operations in the workload")
	keySpace := flag.Int("keyspace", 50_000, "Number of distinct keys in the workload")
	alpha := flag.Float64("alpha", 0.8, "Zipf skew of the workload")
	skipThroughput := flag.Bool("no-throughput", false, "Skip the throughput suite")
	outDir := flag.String("outdir", "", "Output directory for results (writes results.json and results.md)")
	flag.Parse()

	if *showHelp {
		printUsage()
		os.Exit(0)
	}

	if *caches != "" {
		var names []string
		for name := range strings.SplitSeq(*caches, ",") {
			names = append(names, strings.TrimSpace(name))
		}
		bench.SetFilter(names)
	}

	capacities := bench.DefaultCapacities
	if *sizes != "" {
		capacities = parseIntList(*sizes)
	}

	threadCounts := bench.DefaultThreadCounts
	if *threads != "" {
		threadCounts = parseIntList(*threads)
	}

	fmt.Println("schemacache-bench")
	fmt.Println()
	fmt.Printf("  backends: %d\n", len(bench.AllNames()))
	fmt.Printf("  workload: %d ops, %d keys, Zipf alpha=%.2f\n", *ops, *keySpace, *alpha)
	fmt.Println()

	keys := workload.Zipf(*ops, *keySpace, *alpha, 42)

	results := report.Results{
		Command:    "schemacache-bench " + strings.Join(os.Args[1:], " "),
		Machine:    report.CurrentMachine(),
		Capacities: capacities,
	}

	fmt.Println("  [hitrate] get-or-set replay")
	fmt.Println()
	results.HitRate = bench.RunHitRate(capacities, keys)
	printHitRateTable(results.HitRate, capacities)

	if !*skipThroughput {
		results.Threads = threadCounts
		fmt.Printf("  [throughput] 75%% read / 25%% write, %d entry cache\n\n", bench.ThroughputCapacity)
		results.Throughput = bench.RunThroughput(threadCounts, keys)
		printThroughputTable(results.Throughput, threadCounts)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil { //nolint:gosec // G301: 0755 is standard dir permission
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		jsonPath := filepath.Join(*outDir, "schemacache_results.json")
		mdPath := filepath.Join(*outDir, "schemacache_results.md")

		if err := report.WriteJSON(jsonPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
		if err := report.WriteMarkdown(mdPath, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing Markdown: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results: %s\n", jsonPath)
		fmt.Printf("         %s\n", mdPath)
	}
}

func printUsage() {
	fmt.Println("schemacache-bench - Compare schemacache strategies and policy stores")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  schemacache-bench                     Run all suites against all backends")
	fmt.Println("  schemacache-bench -caches lru,otter   Benchmark specific backends")
	fmt.Println("  schemacache-bench -no-throughput      Hit rate only")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -caches <list>    Comma-separated backends to benchmark (default: all)")
	fmt.Println("  -sizes <list>     Comma-separated capacities (default: 1024,4096,16384)")
	fmt.Println("  -threads <list>   Comma-separated goroutine counts (default: 1,4,8)")
	fmt.Println("  -ops <n>          Workload length (default: 500000)")
	fmt.Println("  -keyspace <n>     Distinct keys in the workload (default: 50000)")
	fmt.Println("  -alpha <f>        Zipf skew (default: 0.8)")
	fmt.Println("  -no-throughput    Skip the throughput suite")
	fmt.Println("  -outdir <dir>     Write schemacache_results.{json,md}")
	fmt.Println()
	fmt.Println("Available backends:")
	for _, name := range bench.AvailableNames() {
		fmt.Printf("  - %s\n", name)
	}
}

func printHitRateTable(results []bench.HitRateResult, capacities []int) {
	sorted := make([]bench.HitRateResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool {
		return bench.AvgHitRate(sorted[i], capacities) > bench.AvgHitRate(sorted[j], capacities)
	})

	fmt.Print("  | Cache          |")
	for _, capacity := range capacities {
		fmt.Printf(" %6d |", capacity)
	}
	fmt.Println("    Avg |")

	fmt.Print("  |----------------|")
	for range capacities {
		fmt.Print("--------|")
	}
	fmt.Println("--------|")

	for _, r := range sorted {
		fmt.Printf("  | %-14s |", r.Name)
		for _, capacity := range capacities {
			fmt.Printf(" %5.2f%% |", r.Rates[capacity])
		}
		fmt.Printf(" %5.2f%% |\n", bench.AvgHitRate(r, capacities))
	}

	if len(sorted) >= 2 {
		best := sorted[0]
		second := sorted[1]
		bestAvg := bench.AvgHitRate(best, capacities)
		secondAvg := bench.AvgHitRate(second, capacities)
		if secondAvg > 0 {
			pct := (bestAvg - secondAvg) / secondAvg * 100
			fmt.Printf("\n  winner: %s (%.2f%% avg, +%.2f%% vs %s)\n", best.Name, bestAvg, pct, second.Name)
		}
	}
	fmt.Println()
}

func printThroughputTable(results []bench.ThroughputResult, threads []int) {
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

	fmt.Print("  | Cache          |")
	for _, t := range threads {
		fmt.Printf(" %2dT       |", t)
	}
	fmt.Println("       Avg |")

	fmt.Print("  |----------------|")
	for range threads {
		fmt.Print("-----------|")
	}
	fmt.Println("-----------|")

	for _, r := range sorted {
		fmt.Printf("  | %-14s |", r.Name)
		for _, t := range threads {
			fmt.Printf(" %9s |", formatQPS(r.QPS[t]))
		}
		fmt.Printf(" %9s |\n", formatQPS(avgQPS(r)))
	}

	if len(sorted) >= 2 {
		best := sorted[0]
		second := sorted[1]
		if secondAvg := avgQPS(second); secondAvg > 0 {
			pct := (avgQPS(best) - secondAvg) / secondAvg * 100
			fmt.Printf("\n  winner: %s (+%.1f%% vs %s)\n", best.Name, pct, second.Name)
		}
	}
	fmt.Println()
}

func formatQPS(qps float64) string {
	if qps >= 1_000_000 {
		return fmt.Sprintf("%.2fM", qps/1_000_000)
	}
	return fmt.Sprintf("%.0fK", qps/1_000)
}
