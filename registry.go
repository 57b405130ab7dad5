package schemacache

import "sync"

// Registry hands out one Strategy per (name, kind) pair and holds the
// enablement configuration. Construct one per application and pass it to
// whichever components need caching; there is no package-level instance.
type Registry struct {
	mu         sync.Mutex
	cfg        Config
	strategies map[string]Strategy
}

// NewRegistry returns a registry using the given configuration.
func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg, strategies: make(map[string]Strategy)}
}

// Config returns a snapshot of the current configuration.
func (r *Registry) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

// SetConfig replaces the configuration atomically. The new configuration
// affects only strategies constructed afterwards: an instance already handed
// out for a name keeps its variant, size bound, and store for the registry's
// lifetime.
func (r *Registry) SetConfig(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cfg = cfg
}

// Enabled reports whether caching is on for the given kind. The global flag
// wins; unrecognized kinds (and KindGeneral) default to enabled.
func (r *Registry) Enabled(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabledLocked(kind)
}

func (r *Registry) enabledLocked(kind Kind) bool {
	if !r.cfg.Enabled {
		return false
	}
	switch kind {
	case KindSchema:
		return r.cfg.SchemaEnabled
	case KindParamBinding:
		return r.cfg.ParamBindingEnabled
	case KindModel:
		return r.cfg.ModelEnabled
	case KindMetadata:
		return r.cfg.MetadataEnabled
	default:
		return true
	}
}

// Option customizes a strategy at construction time. Options are ignored
// when a memoized instance for the (name, kind) pair already exists.
type Option func(*options)

type options struct {
	maxSize int
	store   Store
}

// WithMaxSize overrides the configured default entry bound.
func WithMaxSize(n int) Option {
	return func(o *options) { o.maxSize = n }
}

// WithStore backs the strategy with a caller-chosen store, typically one of
// the policy package adapters. Supplied stores must enforce their own
// capacity; the strategy performs no eviction for them. The store is owned
// by the strategy from this point on.
func WithStore(s Store) Option {
	return func(o *options) { o.store = s }
}

// Strategy returns the cache registered under name for the given kind,
// constructing and memoizing it on first use. Whether the active or the null
// variant is built depends on the configuration at that moment.
func (r *Registry) Strategy(kind Kind, name string, opts ...Option) Strategy {
	key := name + "_" + string(kind)

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.strategies[key]; ok {
		return s
	}

	var s Strategy
	if r.enabledLocked(kind) {
		var o options
		for _, opt := range opts {
			opt(&o)
		}
		if o.maxSize <= 0 {
			o.maxSize = r.cfg.MaxSize
		}
		s = newActiveStrategy(o.store, o.maxSize, o.store != nil)
	} else {
		s = nullStrategy{}
	}
	r.strategies[key] = s
	return s
}

// ClearAll empties contents and statistics of every memoized strategy. The
// memo table itself is retained: subsequent Strategy calls return the same
// instances.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.strategies {
		s.Clear()
	}
}

// StatsSnapshot reports current statistics per memoized cache, keyed by
// "name_kind".
func (r *Registry) StatsSnapshot() map[string]Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Stats, len(r.strategies))
	for key, s := range r.strategies {
		out[key] = s.Stats()
	}
	return out
}
