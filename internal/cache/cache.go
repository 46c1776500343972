// Package cache holds a bounded LRU of resolved lookups that sits in front of
// the tree. Entries are never invalidated: a key's value cannot change once it
// has been inserted.
package cache

import (
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
)

const (
	MinCacheSize = 16
)

// Cache implements an LRU of key/value pairs on top of freelru.
type Cache[K comparable, V any] struct {
	lru *freelru.LRU[K, V]

	// Stats
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache creates a new cache holding at most maxSize entries.
func NewCache[K comparable, V any](maxSize uint32) (*Cache[K, V], error) {
	maxSize = max(maxSize, MinCacheSize)

	lru, err := freelru.New[K, V](maxSize, HashKey[K])
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &Cache[K, V]{lru: lru}, nil
}

// HashKey hashes the textual form of key with xxhash. Keys of the same tree
// share a type, so equal keys always format identically.
func HashKey[K comparable](key K) uint32 {
	var buf [64]byte
	return uint32(xxhash.Sum64(fmt.Appendf(buf[:0], "%v", key)))
}

// Put adds a resolved lookup to the cache.
func (c *Cache[K, V]) Put(key K, value V) {
	c.lru.Add(key, value)
}

// Get retrieves a value from the cache.
// Returns (value, true) on cache hit, (zero, false) on miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return v, false
	}
	c.hits.Add(1)
	return v, true
}

// Size returns current number of cached entries
func (c *Cache[K, V]) Size() int {
	return c.lru.Len()
}

type Stats struct {
	Hits   uint64
	Misses uint64
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
}

// ClearStats resets the cache's positive incrementing statistics
func (c *Cache[K, V]) ClearStats() {
	c.hits.Store(0)
	c.misses.Store(0)
}
