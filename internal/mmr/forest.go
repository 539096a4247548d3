// Package mmr implements a Merkle Mountain Range over block header digests:
// a full MMR (used by nodes that hold every block) and a partial MMR that
// retains authentication paths only for tracked leaves.
//
// Nodes are addressed with an in-order index over the forest: leaf p lives at
// index 2p+1 and the level of a node is the number of trailing zeros of its
// index.
package mmr

import "math/bits"

// Forest is the number of leaves in an MMR. Its binary representation
// describes the trees: every set bit is one perfect tree of that size.
type Forest uint64

// NumLeaves returns the number of leaves.
func (f Forest) NumLeaves() uint64 {
	return uint64(f)
}

// NumTrees returns the number of peaks.
func (f Forest) NumTrees() int {
	return bits.OnesCount64(uint64(f))
}

// NumNodes returns the number of nodes (leaves and inner) in the forest.
func (f Forest) NumNodes() uint64 {
	return 2*uint64(f) - uint64(bits.OnesCount64(uint64(f)))
}

// SmallestTree returns the size of the smallest tree, or 0 for an empty forest.
func (f Forest) SmallestTree() uint64 {
	return uint64(f) & -uint64(f)
}

// LargestTree returns the size of the largest tree, or 0 for an empty forest.
func (f Forest) LargestTree() uint64 {
	if f == 0 {
		return 0
	}
	return 1 << (63 - bits.LeadingZeros64(uint64(f)))
}

// Trees returns the tree sizes, largest first.
func (f Forest) Trees() []uint64 {
	out := make([]uint64, 0, f.NumTrees())
	for rest := uint64(f); rest != 0; {
		size := uint64(1) << (63 - bits.LeadingZeros64(rest))
		out = append(out, size)
		rest &^= size
	}
	return out
}

// treeFor returns the tree containing leaf pos: its index in Trees(), its
// leaf offset and its size.
func (f Forest) treeFor(pos uint64) (peak int, offset uint64, size uint64, ok bool) {
	if pos >= uint64(f) {
		return 0, 0, 0, false
	}
	for i, s := range f.Trees() {
		if pos < offset+s {
			return i, offset, s, true
		}
		offset += s
	}
	return 0, 0, 0, false
}

// treeRoot returns the in-order index of the root of the tree of the given
// size whose first leaf is at offset.
func treeRoot(offset, size uint64) InOrderIndex {
	return InOrderIndex(2*offset + size)
}

func log2(v uint64) int {
	return 63 - bits.LeadingZeros64(v)
}
