package bindex

import (
	"fmt"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/alexhholmes/bindex/internal/algo"
)

// Walk calls fn for every entry in ascending key order together with the depth
// of the node holding it (0 for the root). Returning false stops the walk.
// The tree must not be modified from within fn.
func (t *Tree[K, V]) Walk(fn func(depth int, key K, value V) bool) {
	algo.Walk(t.root, 0, fn)
}

// Dump writes one "key: value" line per entry in ascending key order, indented
// two spaces per level below the root.
func (t *Tree[K, V]) Dump(w io.Writer) error {
	var err error
	t.Walk(func(depth int, key K, value V) bool {
		_, err = fmt.Fprintf(w, "%s%v: %v\n", strings.Repeat("  ", depth), key, value)
		return err == nil
	})
	return err
}

// String renders the tree as Dump does.
func (t *Tree[K, V]) String() string {
	var b strings.Builder
	_ = t.Dump(&b)
	return b.String()
}

// Digest returns an xxhash of the entries in key order. It depends only on the
// tree's contents, not on its shape, so trees built from the same pairs in any
// order share a digest.
func (t *Tree[K, V]) Digest() uint64 {
	d := xxhash.New()
	var buf []byte
	t.Walk(func(_ int, key K, value V) bool {
		buf = fmt.Appendf(buf[:0], "%v=%v\n", key, value)
		_, _ = d.Write(buf)
		return true
	})
	return d.Sum64()
}
