package algo

import (
	"github.com/alexhholmes/bindex/internal/base"
)

// Split is the overflow fragment handed back to the caller of Insert when a
// node had to be divided. Key and Value are promoted into the parent and Right
// becomes the parent's child immediately after the divided node.
type Split[K, V any] struct {
	Key   K
	Value V
	Right *base.Node[K, V]
}

// Lookup descends from n towards a leaf. An exact match at any level is
// authoritative since keys are unique across the whole tree.
func Lookup[K, V any](n *base.Node[K, V], key K, cmp func(a, b K) int) (V, bool) {
	for n != nil {
		pos := Search(n.Keys, key, cmp)
		if pos.Found {
			return n.Values[pos.Index], true
		}
		if n.IsLeaf() {
			break
		}
		n = n.Children[pos.Index]
	}

	var zero V
	return zero, false
}

// Insert adds key/value to the subtree rooted at n. If n overflows it is split
// and the upper fragment is returned; the caller owns it until it is absorbed.
// A key already present on the descent path yields base.ErrKeyExists and
// nothing is modified.
func Insert[K, V any](n *base.Node[K, V], key K, value V, cmp func(a, b K) int) (*Split[K, V], error) {
	pos := Search(n.Keys, key, cmp)
	if pos.Found {
		return nil, base.ErrKeyExists
	}

	if n.IsLeaf() {
		n.InsertEntry(pos.Index, key, value)
	} else {
		split, err := Insert(n.Children[pos.Index], key, value, cmp)
		if err != nil {
			return nil, err
		}
		if split != nil {
			n.InsertEntry(pos.Index, split.Key, split.Value)
			n.InsertChild(pos.Index+1, split.Right)
		}
	}

	if n.IsOverflow() {
		return SplitNode(n), nil
	}
	return nil, nil
}

// SplitNode divides n at mid = len(keys)/2. Entries before mid stay in n, the
// entry at mid is promoted, and entries after it move to a new right sibling.
// Internal nodes hand children[mid+1:] to the sibling so that each half keeps
// exactly the subtrees bounded by its own keys.
func SplitNode[K, V any](n *base.Node[K, V]) *Split[K, V] {
	mid := len(n.Keys) / 2

	right := base.NewNode[K, V](n.Capacity)
	right.Keys = append(right.Keys, n.Keys[mid+1:]...)
	right.Values = append(right.Values, n.Values[mid+1:]...)
	if !n.IsLeaf() {
		right.Children = make([]*base.Node[K, V], 0, n.Capacity+2)
		right.Children = append(right.Children, n.Children[mid+1:]...)
	}

	split := &Split[K, V]{
		Key:   n.Keys[mid],
		Value: n.Values[mid],
		Right: right,
	}
	n.Truncate(mid)
	return split
}
