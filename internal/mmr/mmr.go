package mmr

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// Mmr is a full Merkle Mountain Range: it stores every node and can open any
// leaf or describe the change between two historic forests.
//
// Not safe for concurrent use.
type Mmr struct {
	forest Forest
	nodes  map[InOrderIndex]crypto.Digest
}

// New returns an empty MMR.
func New() *Mmr {
	return &Mmr{nodes: make(map[InOrderIndex]crypto.Digest)}
}

// Forest returns the current number of leaves.
func (m *Mmr) Forest() Forest {
	return m.forest
}

// Add appends a leaf and merges equal sized trees.
func (m *Mmr) Add(leaf crypto.Digest) {
	idx := FromLeafPos(uint64(m.forest))
	m.nodes[idx] = leaf

	cur := leaf
	for level := 0; uint64(m.forest)&(1<<level) != 0; level++ {
		left := m.nodes[idx.Sibling()]
		cur = crypto.Merge(left, cur)
		idx = idx.Parent()
		m.nodes[idx] = cur
	}
	m.forest++
}

// Leaf returns the leaf at pos.
func (m *Mmr) Leaf(pos uint64) (crypto.Digest, error) {
	if pos >= uint64(m.forest) {
		return crypto.Digest{}, fmt.Errorf("%w: %d >= %d", ErrLeafOutOfBounds, pos, m.forest)
	}
	return m.nodes[FromLeafPos(pos)], nil
}

// Peaks returns the peaks of the current forest.
func (m *Mmr) Peaks() Peaks {
	p, _ := m.PeaksAt(m.forest)
	return p
}

// PeaksAt returns the peaks the MMR had when it held forest leaves.
func (m *Mmr) PeaksAt(forest Forest) (Peaks, error) {
	if forest > m.forest {
		return Peaks{}, fmt.Errorf("%w: requested forest %d, have %d", ErrLeafOutOfBounds, forest, m.forest)
	}

	peaks := make([]crypto.Digest, 0, forest.NumTrees())
	var offset uint64
	for _, size := range forest.Trees() {
		peaks = append(peaks, m.nodes[treeRoot(offset, size)])
		offset += size
	}
	return Peaks{Forest: forest, Peaks: peaks}, nil
}

// Open returns the authentication path of the leaf at pos against the
// current peaks.
func (m *Mmr) Open(pos uint64) (Proof, error) {
	return m.OpenAt(pos, m.forest)
}

// OpenAt returns the authentication path of the leaf at pos against the
// peaks of an earlier forest.
func (m *Mmr) OpenAt(pos uint64, forest Forest) (Proof, error) {
	if forest > m.forest {
		return Proof{}, fmt.Errorf("%w: requested forest %d, have %d", ErrLeafOutOfBounds, forest, m.forest)
	}
	_, _, size, ok := forest.treeFor(pos)
	if !ok {
		return Proof{}, fmt.Errorf("%w: %d >= %d", ErrLeafOutOfBounds, pos, forest)
	}

	depth := log2(size)
	path := make(crypto.MerklePath, 0, depth)
	idx := FromLeafPos(pos)
	for i := 0; i < depth; i++ {
		path = append(path, m.nodes[idx.Sibling()])
		idx = idx.Parent()
	}
	return Proof{Forest: forest, Position: pos, Path: path}, nil
}

// GetDelta returns the delta that advances the peaks of forest from to the
// peaks of forest to.
func (m *Mmr) GetDelta(from, to Forest) (Delta, error) {
	if to > m.forest {
		return Delta{}, fmt.Errorf("%w: requested forest %d, have %d", ErrLeafOutOfBounds, to, m.forest)
	}
	if from > to {
		return Delta{}, fmt.Errorf("%w: %d -> %d", ErrForestShrunk, from, to)
	}
	if from == to {
		return Delta{Forest: to}, nil
	}

	highest, merges, newPeaks := deltaShape(from, to)
	common := uint64(from) &^ (2*highest - 1)

	data := make([]crypto.Digest, 0, deltaSize(from, to))
	offset := common

	if merges != 0 {
		// walk up from the smallest old tree; every left child needs its
		// new right sibling
		smallest := Forest(merges).SmallestTree()
		idx := treeRoot(uint64(from)-smallest, smallest)
		for size := smallest; size < highest; size <<= 1 {
			if idx.IsLeftChild() {
				data = append(data, m.nodes[idx.Sibling()])
			}
			idx = idx.Parent()
		}
		offset += highest
	}

	for _, size := range Forest(newPeaks).Trees() {
		data = append(data, m.nodes[treeRoot(offset, size)])
		offset += size
	}

	return Delta{Forest: to, Data: data}, nil
}
