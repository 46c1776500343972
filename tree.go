// Package bindex implements an in-memory B-tree index mapping unique ordered
// keys to values.
//
// Every node holds at most a fixed number of keys, the capacity chosen when
// the tree is created. An insertion that overflows a node splits it and
// promotes the middle entry into the parent; when the root itself overflows
// the tree grows a new root, so every leaf always sits at the same depth.
//
// A Tree is not safe for concurrent use.
package bindex

import (
	"cmp"
	"fmt"

	"github.com/alexhholmes/bindex/internal/algo"
	"github.com/alexhholmes/bindex/internal/base"
	"github.com/alexhholmes/bindex/internal/cache"
)

// Tree is an ordered index. It owns its root node exclusively.
type Tree[K comparable, V any] struct {
	root    *base.Node[K, V]
	compare func(a, b K) int
	length  int

	logger Logger
	cache  *cache.Cache[K, V] // nil unless WithLookupCache was given
}

// New creates an empty tree over naturally ordered keys. capacity is the
// maximum number of keys per node and must be at least 2.
func New[K cmp.Ordered, V any](capacity int, opts ...Option) (*Tree[K, V], error) {
	return NewFunc[K, V](capacity, cmp.Compare[K], opts...)
}

// NewFunc creates an empty tree ordered by compare, which must return a
// negative number, zero or a positive number when a sorts before, equal to or
// after b, and must describe a strict total order.
func NewFunc[K comparable, V any](capacity int, compare func(a, b K) int, opts ...Option) (*Tree[K, V], error) {
	if capacity < base.MinCapacity {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if compare == nil {
		return nil, ErrNilCompare
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	t := &Tree[K, V]{
		root:    base.NewNode[K, V](capacity),
		compare: compare,
		logger:  options.logger,
	}

	if options.cacheSize > 0 {
		c, err := cache.NewCache[K, V](options.cacheSize)
		if err != nil {
			return nil, err
		}
		t.cache = c
	}

	return t, nil
}

// Get returns the value stored under key. The boolean is false when the key
// has never been inserted; that is a normal outcome, not an error.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if t.cache != nil {
		if v, ok := t.cache.Get(key); ok {
			return v, true
		}
	}

	v, ok := algo.Lookup(t.root, key, t.compare)
	if ok && t.cache != nil {
		t.cache.Put(key, v)
	}
	return v, ok
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Insert adds key with value. Keys are unique: inserting a key that is
// already present returns ErrKeyExists and leaves the tree unchanged.
func (t *Tree[K, V]) Insert(key K, value V) error {
	split, err := algo.Insert(t.root, key, value, t.compare)
	if err != nil {
		return fmt.Errorf("insert %v: %w", key, err)
	}
	t.length++

	if split != nil {
		t.growRoot(split)
	}
	return nil
}

// growRoot makes the old root and the overflow fragment the two children of a
// new root holding only the promoted entry.
func (t *Tree[K, V]) growRoot(split *algo.Split[K, V]) {
	t.root = base.NewBranch(t.root.Capacity, split.Key, split.Value, t.root, split.Right)
	t.logger.Info("root split", "height", t.Height(), "len", t.length)
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.length
}

// Height returns the number of node levels; an empty tree has height 1.
func (t *Tree[K, V]) Height() int {
	return algo.Height(t.root)
}

// Capacity returns the maximum number of keys per node.
func (t *Tree[K, V]) Capacity() int {
	return t.root.Capacity
}

// CacheStats counts lookup cache hits and misses.
type CacheStats = cache.Stats

// CacheStats returns lookup cache statistics. Both counters are zero when the
// cache is disabled.
func (t *Tree[K, V]) CacheStats() CacheStats {
	if t.cache == nil {
		return CacheStats{}
	}
	return t.cache.Stats()
}

// Verify checks the ordering, balance and capacity invariants of the whole
// tree. It returns an error wrapping ErrCorruption on the first violation.
func (t *Tree[K, V]) Verify() error {
	return algo.Check(t.root, t.compare)
}
