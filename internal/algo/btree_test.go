package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexhholmes/bindex/internal/base"
)

func TestLookup(t *testing.T) {
	root := makeSampleTree()

	tests := []struct {
		key   int
		want  string
		found bool
	}{
		{key: 1, want: "123", found: true},
		{key: 3, want: "abc", found: true},
		{key: 6, want: "bar", found: true},
		{key: 8, want: "def", found: true},
		{key: 9, want: "foo", found: true},
		{key: 10, want: "blub", found: true},
		{key: 0},
		{key: 2},
		{key: 7},
		{key: 100},
	}

	for _, tt := range tests {
		got, ok := Lookup(root, tt.key, compareInt)
		assert.Equal(t, tt.found, ok, "key %d", tt.key)
		assert.Equal(t, tt.want, got, "key %d", tt.key)
	}
}

func TestLookupEmpty(t *testing.T) {
	root := base.NewNode[int, string](2)

	got, ok := Lookup(root, 42, compareInt)
	assert.False(t, ok)
	assert.Empty(t, got)

	got, ok = Lookup[int, string](nil, 42, compareInt)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestSplitNodeLeaf(t *testing.T) {
	n := makeLeafNode(2, []int{1, 3, 6}, []string{"foo", "abc", "blub"})

	split := SplitNode(n)

	assert.Equal(t, 3, split.Key)
	assert.Equal(t, "abc", split.Value)
	assert.Equal(t, []int{1}, n.Keys)
	assert.Equal(t, []string{"foo"}, n.Values)
	assert.Equal(t, []int{6}, split.Right.Keys)
	assert.Equal(t, []string{"blub"}, split.Right.Values)
	assert.True(t, split.Right.IsLeaf())
	assert.Equal(t, 2, split.Right.Capacity)
}

func TestSplitNodeEvenCount(t *testing.T) {
	n := makeLeafNode(3, []int{1, 2, 3, 4}, []string{"a", "b", "c", "d"})

	split := SplitNode(n)

	assert.Equal(t, 3, split.Key)
	assert.Equal(t, []int{1, 2}, n.Keys)
	assert.Equal(t, []int{4}, split.Right.Keys)
	assert.Equal(t, []string{"d"}, split.Right.Values)
}

func TestSplitNodeBranchMovesChildren(t *testing.T) {
	c0 := makeLeafNode(2, []int{5}, []string{"5"})
	c1 := makeLeafNode(2, []int{15}, []string{"15"})
	c2 := makeLeafNode(2, []int{25}, []string{"25"})
	c3 := makeLeafNode(2, []int{35}, []string{"35"})
	n := makeBranchNode(2, []int{10, 20, 30}, []string{"10", "20", "30"}, c0, c1, c2, c3)

	split := SplitNode(n)

	assert.Equal(t, 20, split.Key)
	assert.Equal(t, []int{10}, n.Keys)
	assert.Equal(t, []*base.Node[int, string]{c0, c1}, n.Children)
	assert.Equal(t, []int{30}, split.Right.Keys)
	require.Len(t, split.Right.Children, 2)
	assert.Same(t, c2, split.Right.Children[0])
	assert.Same(t, c3, split.Right.Children[1])
}

func TestSplitNodeDoesNotAlias(t *testing.T) {
	n := makeLeafNode(2, []int{1, 2, 3}, []string{"a", "b", "c"})

	split := SplitNode(n)
	n.InsertEntry(1, 9, "z")

	assert.Equal(t, []int{3}, split.Right.Keys, "growing the left half must not overwrite the right half")
	assert.Equal(t, []string{"c"}, split.Right.Values)
}

func TestInsertLeaf(t *testing.T) {
	root := base.NewNode[int, string](2)

	split, err := Insert(root, 3, "abc", compareInt)
	require.NoError(t, err)
	assert.Nil(t, split)

	split, err = Insert(root, 1, "foo", compareInt)
	require.NoError(t, err)
	assert.Nil(t, split)
	assert.Equal(t, []int{1, 3}, root.Keys)
	assert.Equal(t, []string{"foo", "abc"}, root.Values)

	// Third key overflows a capacity 2 node
	split, err = Insert(root, 6, "blub", compareInt)
	require.NoError(t, err)
	require.NotNil(t, split)
	assert.Equal(t, 3, split.Key)
	assert.Equal(t, []int{1}, root.Keys)
	assert.Equal(t, []int{6}, split.Right.Keys)
}

func TestInsertDescendsIntoChild(t *testing.T) {
	root := makeSampleTree()

	split, err := Insert(root, 7, "seven", compareInt)
	require.NoError(t, err)
	assert.Nil(t, split)
	assert.Equal(t, []int{6, 7}, root.Children[1].Keys)
	assert.Equal(t, []int{3, 8}, root.Keys)

	split, err = Insert(root, 2, "two", compareInt)
	require.NoError(t, err)
	assert.Nil(t, split)
	assert.Equal(t, []int{1, 2}, root.Children[0].Keys)
	assert.NoError(t, Check(root, compareInt))
}

func TestInsertPropagatesSplit(t *testing.T) {
	root := makeSampleTree()

	// [9 10] overflows to [9 10 11], promoting 10 into the root which then
	// holds [3 8 10] and overflows in turn, promoting 8.
	split, err := Insert(root, 11, "eleven", compareInt)
	require.NoError(t, err)
	require.NotNil(t, split)

	assert.Equal(t, 8, split.Key)
	assert.Equal(t, "def", split.Value)

	assert.Equal(t, []int{3}, root.Keys)
	require.Len(t, root.Children, 2)
	assert.Equal(t, []int{1}, root.Children[0].Keys)
	assert.Equal(t, []int{6}, root.Children[1].Keys)

	right := split.Right
	assert.Equal(t, []int{10}, right.Keys)
	assert.Equal(t, []string{"blub"}, right.Values)
	require.Len(t, right.Children, 2)
	assert.Equal(t, []int{9}, right.Children[0].Keys)
	assert.Equal(t, []int{11}, right.Children[1].Keys)

	grown := base.NewBranch(2, split.Key, split.Value, root, right)
	assert.NoError(t, Check(grown, compareInt))
	assert.Equal(t, 3, Height(grown))
}

func TestInsertDuplicateLeavesTreeUnchanged(t *testing.T) {
	for _, key := range []int{1, 3, 6, 8, 10} {
		root := makeSampleTree()

		split, err := Insert(root, key, "dup", compareInt)
		assert.ErrorIs(t, err, base.ErrKeyExists, "key %d", key)
		assert.Nil(t, split)
		assert.Equal(t, makeSampleTree(), root, "key %d", key)
	}
}
