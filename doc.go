// Package schemacache provides pluggable, thread-safe in-memory caching for
// schema and metadata generation pipelines.
//
// Components that repeatedly derive expensive artifacts from reflection
// (OpenAPI document generators, request parameter binders, model registries)
// request a named cache from a Registry and use it as an ordinary key-value
// cache with hit/miss statistics:
//
//	reg := schemacache.NewRegistry(schemacache.DefaultConfig())
//	c := reg.Strategy(schemacache.KindSchema, "openapi")
//	c.Set("User", schema)
//	if v, ok := c.Get("User"); ok {
//		return v.(*Schema)
//	}
//
// Whether caching is actually performed is decided once, at construction
// time. When caching is disabled for a kind (or globally), the Registry hands
// out a null strategy whose operations are no-ops returning the absent
// result. The two variants are behaviorally interchangeable: disabling a
// cache never changes program correctness, only speed.
//
// The built-in strategy keeps entries in an internal map and drops the whole
// map when the size bound is reached. Callers that want real per-key
// eviction back a strategy with one of the policy package stores:
//
//	c := reg.Strategy(schemacache.KindModel, "pydantic",
//		schemacache.WithStore(policy.NewLRU[string, any](4096)))
//
// Registries are plain values with no package-level instance; construct one
// per application and pass it to the components that need caching. Tests get
// isolation for free by constructing their own.
package schemacache
