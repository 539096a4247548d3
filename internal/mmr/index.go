package mmr

import "math/bits"

// InOrderIndex addresses a node of the forest in in-order traversal. It is
// 1-based: the first leaf is 1, its parent 2, the second leaf 3.
type InOrderIndex uint64

// FromLeafPos returns the index of the leaf at position pos.
func FromLeafPos(pos uint64) InOrderIndex {
	return InOrderIndex(2*pos + 1)
}

// Level returns the height of the node; leaves are at level 0.
func (i InOrderIndex) Level() int {
	return bits.TrailingZeros64(uint64(i))
}

// IsLeaf reports whether the index is a leaf.
func (i InOrderIndex) IsLeaf() bool {
	return i&1 == 1
}

// IsLeftChild reports whether the node is the left child of its parent.
func (i InOrderIndex) IsLeftChild() bool {
	return (uint64(i)>>(i.Level()+1))&1 == 0
}

// Parent returns the index of the parent node.
func (i InOrderIndex) Parent() InOrderIndex {
	step := uint64(1) << i.Level()
	if i.IsLeftChild() {
		return InOrderIndex(uint64(i) + step)
	}
	return InOrderIndex(uint64(i) - step)
}

// Sibling returns the index of the other child of the parent.
func (i InOrderIndex) Sibling() InOrderIndex {
	step := uint64(1) << (i.Level() + 1)
	if i.IsLeftChild() {
		return InOrderIndex(uint64(i) + step)
	}
	return InOrderIndex(uint64(i) - step)
}

// LeftChild returns the left child. Must not be called on a leaf.
func (i InOrderIndex) LeftChild() InOrderIndex {
	return InOrderIndex(uint64(i) - uint64(1)<<(i.Level()-1))
}

// RightChild returns the right child. Must not be called on a leaf.
func (i InOrderIndex) RightChild() InOrderIndex {
	return InOrderIndex(uint64(i) + uint64(1)<<(i.Level()-1))
}
