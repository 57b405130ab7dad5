package bench

import (
	"sync"

	"github.com/coocood/freecache"
	"github.com/dgraph-io/ristretto"
	s4lru "github.com/dgryski/go-s4lru"
	"github.com/klauspost/compress/zstd"
	tinylfu "github.com/vmihailenco/go-tinylfu"

	"github.com/tstromberg/schemacache"
	"github.com/tstromberg/schemacache/policy"
)

// registry maps backend names to their factories.
var registry = map[string]Factory{
	"strategy":       newStrategyCache,
	"null":           newNullCache,
	"lru":            policyBackend("lru", policy.NewLRU[string, string]),
	"2q":             policyBackend("2q", policy.NewTwoQueue[string, string]),
	"sieve":          policyBackend("sieve", policy.NewSieve[string, string]),
	"s3-fifo":        policyBackend("s3-fifo", policy.NewS3FIFO[string, string]),
	"lfu":            policyBackend("lfu", policy.NewLFU[string, string]),
	"fifo":           policyBackend("fifo", policy.NewFIFO[string, string]),
	"clock":          policyBackend("clock", policy.NewClock[string, string]),
	"ttl":            policyBackend("ttl", newTTLStore),
	"freelru":        policyBackend("freelru", policy.NewFreeLRU[string]),
	"otter":          policyBackend("otter", policy.NewOtter[string, string]),
	"theine":         policyBackend("theine", policy.NewTheine[string, string]),
	"ristretto":      newRistretto,
	"tinylfu":        newTinyLFU,
	"s4lru":          newS4LRU,
	"freecache":      newFreecache,
	"freecache-zstd": newFreecacheZstd,
}

// defaultOrder defines the display order for backends.
var defaultOrder = []string{
	"strategy", "null",
	"lru", "2q", "sieve", "s3-fifo", "lfu", "fifo", "clock", "ttl",
	"freelru", "otter", "theine",
	"ristretto", "tinylfu", "s4lru", "freecache", "freecache-zstd",
}

func newTTLStore(capacity int) policy.Store[string, string] {
	return policy.NewTTL[string, string](capacity, policy.DefaultTTL)
}

// policyCache adapts a policy store to the benchmark surface.
type policyCache struct {
	name string
	s    policy.Store[string, string]
}

func policyBackend(name string, build func(capacity int) policy.Store[string, string]) Factory {
	return func(capacity int) Cache {
		return &policyCache{name: name, s: build(capacity)}
	}
}

func (c *policyCache) Get(key string) (string, bool) { return c.s.Get(key) }
func (c *policyCache) Set(key, value string)         { c.s.Set(key, value) }
func (c *policyCache) Name() string                  { return c.name }
func (c *policyCache) Close()                        {}

// strategyCache exercises the active strategy with its default map store and
// whole-cache eviction.
type strategyCache struct {
	s schemacache.Strategy
}

func newStrategyCache(capacity int) Cache {
	reg := schemacache.NewRegistry(schemacache.DefaultConfig())
	return &strategyCache{
		s: reg.Strategy(schemacache.KindGeneral, "bench", schemacache.WithMaxSize(capacity)),
	}
}

func (c *strategyCache) Get(key string) (string, bool) {
	v, ok := c.s.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // type is known from Set
}

func (c *strategyCache) Set(key, value string) { c.s.Set(key, value) }
func (*strategyCache) Name() string            { return "strategy" }
func (*strategyCache) Close()                  {}

// nullCache exercises the disabled variant, the floor for every comparison.
type nullCache struct {
	s schemacache.Strategy
}

func newNullCache(int) Cache {
	cfg := schemacache.DefaultConfig()
	cfg.Enabled = false
	reg := schemacache.NewRegistry(cfg)
	return &nullCache{s: reg.Strategy(schemacache.KindGeneral, "bench")}
}

func (c *nullCache) Get(key string) (string, bool) {
	v, ok := c.s.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // unreachable for the null variant
}

func (c *nullCache) Set(key, value string) { c.s.Set(key, value) }
func (*nullCache) Name() string            { return "null" }
func (*nullCache) Close()                  {}

type ristrettoCache struct {
	c *ristretto.Cache
}

func newRistretto(capacity int) Cache {
	c, _ := ristretto.NewCache(&ristretto.Config{ //nolint:errcheck // config always valid
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	return &ristrettoCache{c: c}
}

func (c *ristrettoCache) Get(key string) (string, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // type is known from Set
}

func (c *ristrettoCache) Set(key, value string) {
	c.c.Set(key, value, 1)
}

func (*ristrettoCache) Name() string { return "ristretto" }

func (c *ristrettoCache) Close() {
	c.c.Wait() // flush pending async writes
	c.c.Close()
}

type tinyLFUCache struct {
	c *tinylfu.SyncT
}

func newTinyLFU(capacity int) Cache {
	return &tinyLFUCache{c: tinylfu.NewSync(capacity, capacity*10)}
}

func (c *tinyLFUCache) Get(key string) (string, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // type is known from Set
}

func (c *tinyLFUCache) Set(key, value string) {
	c.c.Set(&tinylfu.Item{Key: key, Value: value})
}

func (*tinyLFUCache) Name() string { return "tinylfu" }
func (*tinyLFUCache) Close()       {}

// s4lruCache wraps go-s4lru, which is not safe for concurrent use.
type s4lruCache struct {
	c  *s4lru.Cache
	mu sync.Mutex
}

func newS4LRU(capacity int) Cache {
	return &s4lruCache{c: s4lru.New(capacity)}
}

func (c *s4lruCache) Get(key string) (string, bool) {
	c.mu.Lock()
	v, ok := c.c.Get(key)
	c.mu.Unlock()
	if !ok {
		return "", false
	}
	return v.(string), true //nolint:errcheck,revive // type is known from Set
}

func (c *s4lruCache) Set(key, value string) {
	c.mu.Lock()
	c.c.Set(key, value)
	c.mu.Unlock()
}

func (*s4lruCache) Name() string { return "s4lru" }
func (*s4lruCache) Close()       {}

// freecacheEntrySize approximates key + value + internal overhead so the
// byte-based freecache is sized comparably to the entry-count backends.
const freecacheEntrySize = 64

type freecacheCache struct {
	c *freecache.Cache
}

func newFreecache(capacity int) Cache {
	cacheBytes := max(capacity*freecacheEntrySize,
		// minimum 512KB
		512*1024)
	return &freecacheCache{c: freecache.NewCache(cacheBytes)}
}

func (c *freecacheCache) Get(key string) (string, bool) {
	v, err := c.c.Get([]byte(key))
	if err != nil {
		return "", false
	}
	return string(v), true
}

func (c *freecacheCache) Set(key, value string) {
	c.c.Set([]byte(key), []byte(value), 0) //nolint:errcheck,gosec // best-effort set
}

func (*freecacheCache) Name() string { return "freecache" }
func (*freecacheCache) Close()       {}

// zstdFreecache compresses values with zstd before storing them, trading CPU
// for density the way a schema cache holding large JSON documents would.
type zstdFreecache struct {
	c   *freecache.Cache
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newFreecacheZstd(capacity int) Cache {
	cacheBytes := max(capacity*freecacheEntrySize, 512*1024)
	enc, _ := zstd.NewWriter(nil) //nolint:errcheck // default options never fail
	dec, _ := zstd.NewReader(nil) //nolint:errcheck // default options never fail
	return &zstdFreecache{c: freecache.NewCache(cacheBytes), enc: enc, dec: dec}
}

func (c *zstdFreecache) Get(key string) (string, bool) {
	v, err := c.c.Get([]byte(key))
	if err != nil {
		return "", false
	}
	out, err := c.dec.DecodeAll(v, nil)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func (c *zstdFreecache) Set(key, value string) {
	c.c.Set([]byte(key), c.enc.EncodeAll([]byte(value), nil), 0) //nolint:errcheck,gosec // best-effort set
}

func (*zstdFreecache) Name() string { return "freecache-zstd" }

func (c *zstdFreecache) Close() {
	c.enc.Close() //nolint:errcheck // nothing buffered with EncodeAll
	c.dec.Close()
}
