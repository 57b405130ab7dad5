package schemacache

// Stats is a point-in-time snapshot of a strategy's counters. Enabled is
// false only for the null variant.
type Stats struct {
	Hits    uint64  `json:"hits"`
	Misses  uint64  `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	MaxSize int     `json:"max_size"`
	Len     int     `json:"current_size"`
	Enabled bool    `json:"enabled"`
}

// Strategy is the capability shared by the active and null cache variants.
// Callers treat the two interchangeably: a disabled cache changes only
// whether values are ever present, never the shape of any result. Misses
// are not errors; no operation fails.
type Strategy interface {
	// Get returns the value stored under key, recording a hit or a miss.
	Get(key string) (any, bool)
	// Set stores value under key, evicting if the cache is at capacity.
	Set(key string, value any)
	// Contains reports membership without touching the statistics.
	Contains(key string) bool
	// Remove deletes key and reports whether it was present.
	Remove(key string) bool
	// Len returns the current entry count.
	Len() int
	// Clear empties the cache and resets the statistics.
	Clear()
	// Stats returns a snapshot of the counters.
	Stats() Stats
}
