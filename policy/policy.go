package policy

import "fmt"

// Store is a bounded key-value container. Implementations enforce their own
// capacity and are safe for concurrent use.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Delete(key K) bool
	Len() int
	Clear()
}

// Builder constructs a string-keyed, any-valued store with the given
// capacity, the shape the root package accepts as a backing store.
type Builder func(capacity int) Store[string, any]

// builders maps policy names to their builders.
var builders = map[string]Builder{
	"lru":     func(capacity int) Store[string, any] { return NewLRU[string, any](capacity) },
	"2q":      func(capacity int) Store[string, any] { return NewTwoQueue[string, any](capacity) },
	"sieve":   func(capacity int) Store[string, any] { return NewSieve[string, any](capacity) },
	"s3-fifo": func(capacity int) Store[string, any] { return NewS3FIFO[string, any](capacity) },
	"lfu":     func(capacity int) Store[string, any] { return NewLFU[string, any](capacity) },
	"fifo":    func(capacity int) Store[string, any] { return NewFIFO[string, any](capacity) },
	"clock":   func(capacity int) Store[string, any] { return NewClock[string, any](capacity) },
	"ttl":     func(capacity int) Store[string, any] { return NewTTL[string, any](capacity, DefaultTTL) },
	"freelru": func(capacity int) Store[string, any] { return NewFreeLRU[any](capacity) },
	"otter":   func(capacity int) Store[string, any] { return NewOtter[string, any](capacity) },
	"theine":  func(capacity int) Store[string, any] { return NewTheine[string, any](capacity) },
}

// order defines the display order for policies.
var order = []string{
	"lru", "2q", "sieve", "s3-fifo", "lfu", "fifo", "clock", "ttl",
	"freelru", "otter", "theine",
}

// Names returns the available policy names in display order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// New builds a string-keyed store by policy name.
func New(name string, capacity int) (Store[string, any], error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown cache policy %q", name)
	}
	return b(capacity), nil
}
