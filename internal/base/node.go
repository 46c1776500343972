package base

// MinCapacity is the smallest node capacity that still allows a split to
// leave a key on each side of the separator.
const MinCapacity = 2

// Node is a single B-tree node. A leaf has no children; an internal node has
// exactly len(Keys)+1 children. Values[i] belongs to Keys[i].
//
// A node may hold Capacity+1 keys between an insertion and the split that
// follows it. Once an insertion returns, no node holds more than Capacity.
type Node[K, V any] struct {
	Capacity int
	Keys     []K
	Values   []V
	Children []*Node[K, V]
}

// NewNode creates an empty leaf. The backing slices are sized for the
// transient Capacity+1 state so a settled node never reallocates.
func NewNode[K, V any](capacity int) *Node[K, V] {
	return &Node[K, V]{
		Capacity: capacity,
		Keys:     make([]K, 0, capacity+1),
		Values:   make([]V, 0, capacity+1),
	}
}

// NewBranch creates an internal node with a single separator and two children.
func NewBranch[K, V any](capacity int, key K, value V, left, right *Node[K, V]) *Node[K, V] {
	n := NewNode[K, V](capacity)
	n.Keys = append(n.Keys, key)
	n.Values = append(n.Values, value)
	n.Children = make([]*Node[K, V], 0, capacity+2)
	n.Children = append(n.Children, left, right)
	return n
}

// IsLeaf returns true if this is a leaf Node
func (n *Node[K, V]) IsLeaf() bool {
	return len(n.Children) == 0
}

// NumKeys returns the number of keys currently stored in the node.
func (n *Node[K, V]) NumKeys() int {
	return len(n.Keys)
}

// IsOverflow reports whether the node holds more keys than its capacity and
// must be split before the insertion returns.
func (n *Node[K, V]) IsOverflow() bool {
	return len(n.Keys) > n.Capacity
}

// InsertEntry places key and value at index, shifting later entries right.
func (n *Node[K, V]) InsertEntry(index int, key K, value V) {
	n.Keys = insertAt(n.Keys, index, key)
	n.Values = insertAt(n.Values, index, value)
}

// InsertChild places child at index, shifting later children right.
func (n *Node[K, V]) InsertChild(index int, child *Node[K, V]) {
	n.Children = insertAt(n.Children, index, child)
}

// Truncate keeps the first keys entries (and keys+1 children for internal
// nodes), zeroing the dropped tail so detached values can be collected.
func (n *Node[K, V]) Truncate(keys int) {
	clear(n.Keys[keys:])
	clear(n.Values[keys:])
	n.Keys = n.Keys[:keys]
	n.Values = n.Values[:keys]
	if !n.IsLeaf() {
		clear(n.Children[keys+1:])
		n.Children = n.Children[:keys+1]
	}
}

func insertAt[T any](s []T, index int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}
