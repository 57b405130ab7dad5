// Package policy provides bounded key-value stores with real per-key
// eviction: LRU and its variants, LFU, FIFO, SIEVE, S3-FIFO, CLOCK, and
// TTL expiry, each backed by an ecosystem cache library behind one generic
// Store interface.
//
// These are the elaborate siblings of the root package's deliberately simple
// clear-on-overflow strategy. Instantiated as Store[string, any], every
// adapter satisfies the root package's backing-store contract:
//
//	c := reg.Strategy(schemacache.KindSchema, "openapi",
//		schemacache.WithStore(policy.NewLRU[string, any](4096)))
//
// Stores can also be built by policy name through New, which the benchmark
// tooling uses to compare policies against each other.
package policy
