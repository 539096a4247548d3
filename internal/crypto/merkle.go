package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is returned when a leaf index does not fit the tree
	// depth described by a path or a sparse tree.
	ErrIndexOutOfBounds = errors.New("leaf index out of bounds")

	// ErrInvalidDepth is returned for sparse trees deeper than MaxDepth.
	ErrInvalidDepth = errors.New("invalid tree depth")
)

// MaxDepth is the deepest sparse tree supported.
const MaxDepth = 64

// MerklePath is an authentication path. Element 0 is the sibling of the leaf,
// the last element is the child of the root.
type MerklePath []Digest

// Depth is the number of levels the path spans.
func (p MerklePath) Depth() int {
	return len(p)
}

// ComputeRoot folds leaf up the path, using the bits of index to decide on
// which side each sibling sits.
func (p MerklePath) ComputeRoot(index uint64, leaf Digest) (Digest, error) {
	if len(p) < 64 && index>>uint(len(p)) != 0 {
		return Digest{}, fmt.Errorf("%w: index %d for depth %d", ErrIndexOutOfBounds, index, len(p))
	}

	cur := leaf
	for _, sibling := range p {
		if index&1 == 0 {
			cur = Merge(cur, sibling)
		} else {
			cur = Merge(sibling, cur)
		}
		index >>= 1
	}
	return cur, nil
}

// Verify reports whether leaf at index hashes up to root along p. A malformed
// index is a verification failure, not an error.
func (p MerklePath) Verify(index uint64, leaf, root Digest) bool {
	computed, err := p.ComputeRoot(index, leaf)
	if err != nil {
		return false
	}
	return computed == root
}

// Clone returns a deep copy of the path.
func (p MerklePath) Clone() MerklePath {
	if p == nil {
		return nil
	}
	out := make(MerklePath, len(p))
	copy(out, p)
	return out
}

type nodeKey struct {
	level uint8
	index uint64
}

// SparseMerkleTree is a fixed-depth binary Merkle tree where absent leaves are
// the zero digest. Only non-empty nodes are materialised.
//
// Not safe for concurrent use.
type SparseMerkleTree struct {
	depth  uint8
	leaves map[uint64]Digest
	nodes  map[nodeKey]Digest
	empty  []Digest
}

// NewSparseMerkleTree returns an empty tree of the given depth.
func NewSparseMerkleTree(depth uint8) (*SparseMerkleTree, error) {
	if depth == 0 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}

	empty := make([]Digest, depth+1)
	for l := 1; l <= int(depth); l++ {
		empty[l] = Merge(empty[l-1], empty[l-1])
	}

	return &SparseMerkleTree{
		depth:  depth,
		leaves: make(map[uint64]Digest),
		nodes:  make(map[nodeKey]Digest),
		empty:  empty,
	}, nil
}

// Depth returns the tree depth.
func (t *SparseMerkleTree) Depth() uint8 {
	return t.depth
}

// Len returns the number of non-empty leaves.
func (t *SparseMerkleTree) Len() int {
	return len(t.leaves)
}

// Root returns the current root digest.
func (t *SparseMerkleTree) Root() Digest {
	return t.node(t.depth, 0)
}

// Insert sets the leaf at index and returns the previous value.
func (t *SparseMerkleTree) Insert(index uint64, leaf Digest) (Digest, error) {
	if err := t.checkIndex(index); err != nil {
		return Digest{}, err
	}

	old := t.leaves[index]
	if leaf.IsZero() {
		delete(t.leaves, index)
	} else {
		t.leaves[index] = leaf
	}

	cur := leaf
	idx := index
	for level := uint8(0); level < t.depth; level++ {
		sibling := t.node(level, idx^1)
		if idx&1 == 0 {
			cur = Merge(cur, sibling)
		} else {
			cur = Merge(sibling, cur)
		}
		idx >>= 1
		t.setNode(level+1, idx, cur)
	}

	return old, nil
}

// Leaf returns the leaf at index (zero digest if absent).
func (t *SparseMerkleTree) Leaf(index uint64) Digest {
	return t.leaves[index]
}

// Open returns the authentication path for the leaf at index.
func (t *SparseMerkleTree) Open(index uint64) (MerklePath, error) {
	if err := t.checkIndex(index); err != nil {
		return nil, err
	}

	path := make(MerklePath, 0, t.depth)
	idx := index
	for level := uint8(0); level < t.depth; level++ {
		path = append(path, t.node(level, idx^1))
		idx >>= 1
	}
	return path, nil
}

func (t *SparseMerkleTree) checkIndex(index uint64) error {
	if t.depth < 64 && index>>t.depth != 0 {
		return fmt.Errorf("%w: index %d for depth %d", ErrIndexOutOfBounds, index, t.depth)
	}
	return nil
}

func (t *SparseMerkleTree) node(level uint8, index uint64) Digest {
	if level == 0 {
		if leaf, ok := t.leaves[index]; ok {
			return leaf
		}
		return t.empty[0]
	}
	if d, ok := t.nodes[nodeKey{level: level, index: index}]; ok {
		return d
	}
	return t.empty[level]
}

func (t *SparseMerkleTree) setNode(level uint8, index uint64, d Digest) {
	key := nodeKey{level: level, index: index}
	if d == t.empty[level] {
		delete(t.nodes, key)
		return
	}
	t.nodes[key] = d
}
