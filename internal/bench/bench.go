// Package bench replays workloads against the cache strategies and policy
// stores to compare hit rates and throughput. Its tables back the
// schemacache-bench CLI.
package bench

// Cache is the minimal surface a benchmark backend must expose.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Name() string
	Close()
}

// Factory creates a backend instance with the given capacity.
type Factory func(capacity int) Cache

// Filter holds the current backend filter (nil = all backends).
var Filter map[string]bool

// SetFilter restricts which backends the Run functions exercise.
func SetFilter(names []string) {
	if len(names) == 0 {
		Filter = nil
		return
	}
	Filter = make(map[string]bool)
	for _, name := range names {
		Filter[name] = true
	}
}

// All returns factories for all (or filtered) backends in display order.
func All() []Factory {
	var factories []Factory
	for _, name := range defaultOrder {
		if Filter != nil && !Filter[name] {
			continue
		}
		if f, ok := registry[name]; ok {
			factories = append(factories, f)
		}
	}
	return factories
}

// AllNames returns the names of all (or filtered) backends.
func AllNames() []string {
	if Filter == nil {
		return AvailableNames()
	}
	var names []string
	for _, name := range defaultOrder {
		if Filter[name] {
			names = append(names, name)
		}
	}
	return names
}

// AvailableNames returns every backend name, ignoring the filter.
func AvailableNames() []string {
	out := make([]string, len(defaultOrder))
	copy(out, defaultOrder)
	return out
}
