// Package algo contains algorithms used for traversing and editing a b-tree.
package algo

import "slices"

const searchThreshold = 32

// Position is the outcome of searching a node's keys. When Found is true,
// Index is the slot holding the key. Otherwise Index is the slot the key
// would be inserted at, which is also the child to descend into.
type Position struct {
	Index int
	Found bool
}

// Search locates key within the ascending keys slice.
func Search[K any](keys []K, key K, cmp func(a, b K) int) Position {
	if len(keys) < searchThreshold {
		for i := range keys {
			c := cmp(key, keys[i])
			if c == 0 {
				return Position{Index: i, Found: true}
			}
			if c < 0 {
				return Position{Index: i}
			}
		}
		return Position{Index: len(keys)}
	}

	i, found := slices.BinarySearchFunc(keys, key, cmp)
	return Position{Index: i, Found: found}
}
