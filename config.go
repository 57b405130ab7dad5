package schemacache

import "time"

// Config holds the global enablement flags and sizing defaults read by a
// Registry. The global Enabled flag wins over the per-kind flags.
//
// TTL is carried for TTL-backed policy stores; the strategy layer itself
// performs no time-based expiry.
type Config struct {
	Enabled             bool
	SchemaEnabled       bool
	ParamBindingEnabled bool
	ModelEnabled        bool
	MetadataEnabled     bool
	MaxSize             int
	TTL                 time.Duration
}

// DefaultConfig returns the configuration used when no explicit one is
// given: everything enabled, 1000 entries per cache, 5 minute TTL.
func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		SchemaEnabled:       true,
		ParamBindingEnabled: true,
		ModelEnabled:        true,
		MetadataEnabled:     true,
		MaxSize:             1000,
		TTL:                 5 * time.Minute,
	}
}
