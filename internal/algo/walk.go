package algo

import (
	"fmt"

	"github.com/alexhholmes/bindex/internal/base"
)

// Walk visits every entry below n in ascending key order: children[i], then
// keys[i], for each i, then the rightmost child. depth is 0 for n itself.
// Returning false from fn stops the walk; Walk reports whether it ran to the end.
func Walk[K, V any](n *base.Node[K, V], depth int, fn func(depth int, key K, value V) bool) bool {
	if n == nil {
		return true
	}
	for i := range n.Keys {
		if !n.IsLeaf() && !Walk(n.Children[i], depth+1, fn) {
			return false
		}
		if !fn(depth, n.Keys[i], n.Values[i]) {
			return false
		}
	}
	if !n.IsLeaf() {
		return Walk(n.Children[len(n.Keys)], depth+1, fn)
	}
	return true
}

// Height returns the number of levels in the subtree rooted at n.
func Height[K, V any](n *base.Node[K, V]) int {
	h := 0
	for n != nil {
		h++
		if n.IsLeaf() {
			break
		}
		n = n.Children[0]
	}
	return h
}

// Check validates the structural invariants of the tree rooted at root:
// keys ascend within and across nodes, every internal node has one more child
// than keys, every leaf sits at the same depth, and no node exceeds its
// capacity. Non-root nodes must also hold at least the floor(capacity/2) keys
// left behind by a split. The first violation found is returned wrapped in
// base.ErrCorruption.
func Check[K, V any](root *base.Node[K, V], cmp func(a, b K) int) error {
	if root == nil {
		return nil
	}
	c := checker[K, V]{cmp: cmp, leafDepth: -1}
	return c.node(root, 0, nil, nil)
}

type checker[K, V any] struct {
	cmp       func(a, b K) int
	leafDepth int
}

func (c *checker[K, V]) node(n *base.Node[K, V], depth int, lo, hi *K) error {
	if len(n.Values) != len(n.Keys) {
		return fmt.Errorf("%w: depth %d: %d keys but %d values", base.ErrCorruption, depth, len(n.Keys), len(n.Values))
	}
	if n.IsOverflow() {
		return fmt.Errorf("%w: depth %d: %d keys exceeds capacity %d", base.ErrCorruption, depth, len(n.Keys), n.Capacity)
	}
	if depth > 0 && len(n.Keys) < max(n.Capacity/2, 1) {
		return fmt.Errorf("%w: depth %d: underfull node with %d keys", base.ErrCorruption, depth, len(n.Keys))
	}

	for i, k := range n.Keys {
		if i > 0 && c.cmp(n.Keys[i-1], k) >= 0 {
			return fmt.Errorf("%w: depth %d: keys out of order at index %d", base.ErrCorruption, depth, i)
		}
		if lo != nil && c.cmp(k, *lo) <= 0 {
			return fmt.Errorf("%w: depth %d: key at index %d below parent separator", base.ErrCorruption, depth, i)
		}
		if hi != nil && c.cmp(k, *hi) >= 0 {
			return fmt.Errorf("%w: depth %d: key at index %d above parent separator", base.ErrCorruption, depth, i)
		}
	}

	if n.IsLeaf() {
		if c.leafDepth == -1 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return fmt.Errorf("%w: leaf at depth %d, expected %d", base.ErrCorruption, depth, c.leafDepth)
		}
		return nil
	}

	if len(n.Children) != len(n.Keys)+1 {
		return fmt.Errorf("%w: depth %d: %d keys but %d children", base.ErrCorruption, depth, len(n.Keys), len(n.Children))
	}
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("%w: depth %d: nil child at index %d", base.ErrCorruption, depth, i)
		}
		childLo, childHi := lo, hi
		if i > 0 {
			childLo = &n.Keys[i-1]
		}
		if i < len(n.Keys) {
			childHi = &n.Keys[i]
		}
		if err := c.node(child, depth+1, childLo, childHi); err != nil {
			return err
		}
	}
	return nil
}
