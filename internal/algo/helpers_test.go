package algo

import (
	"cmp"

	"github.com/alexhholmes/bindex/internal/base"
)

var compareInt = cmp.Compare[int]

// Helper to create a test leaf
func makeLeafNode(capacity int, keys []int, values []string) *base.Node[int, string] {
	n := base.NewNode[int, string](capacity)
	n.Keys = append(n.Keys, keys...)
	n.Values = append(n.Values, values...)
	return n
}

func makeBranchNode(capacity int, keys []int, values []string, children ...*base.Node[int, string]) *base.Node[int, string] {
	n := makeLeafNode(capacity, keys, values)
	n.Children = append(make([]*base.Node[int, string], 0, capacity+2), children...)
	return n
}

// makeSampleTree builds the two level tree
//
//	      [3 8]
//	     /  |  \
//	  [1]  [6]  [9 10]
func makeSampleTree() *base.Node[int, string] {
	return makeBranchNode(2, []int{3, 8}, []string{"abc", "def"},
		makeLeafNode(2, []int{1}, []string{"123"}),
		makeLeafNode(2, []int{6}, []string{"bar"}),
		makeLeafNode(2, []int{9, 10}, []string{"foo", "blub"}),
	)
}
