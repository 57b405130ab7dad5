package policy

import (
	"github.com/scalalang2/golang-fifo/s3fifo"
	"github.com/scalalang2/golang-fifo/sieve"
)

type sieveStore[K comparable, V any] struct {
	c *sieve.Sieve[K, V]
}

// NewSieve returns a store using the SIEVE eviction algorithm, a FIFO
// variant with a second-chance visited bit.
func NewSieve[K comparable, V any](capacity int) Store[K, V] {
	return &sieveStore[K, V]{c: sieve.New[K, V](capacity, 0)}
}

func (s *sieveStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *sieveStore[K, V]) Set(key K, value V)  { s.c.Set(key, value) }
func (s *sieveStore[K, V]) Delete(key K) bool   { return s.c.Remove(key) }
func (s *sieveStore[K, V]) Len() int            { return s.c.Len() }
func (s *sieveStore[K, V]) Clear()              { s.c.Purge() }

type s3fifoStore[K comparable, V any] struct {
	c *s3fifo.S3FIFO[K, V]
}

// NewS3FIFO returns a store using the S3-FIFO eviction algorithm (small,
// main, and ghost FIFO queues).
func NewS3FIFO[K comparable, V any](capacity int) Store[K, V] {
	return &s3fifoStore[K, V]{c: s3fifo.New[K, V](capacity, 0)}
}

func (s *s3fifoStore[K, V]) Get(key K) (V, bool) { return s.c.Get(key) }
func (s *s3fifoStore[K, V]) Set(key K, value V)  { s.c.Set(key, value) }
func (s *s3fifoStore[K, V]) Delete(key K) bool   { return s.c.Remove(key) }
func (s *s3fifoStore[K, V]) Len() int            { return s.c.Len() }
func (s *s3fifoStore[K, V]) Clear()              { s.c.Purge() }
