package mmr

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// Peaks are the roots of the trees of a forest, largest tree first.
type Peaks struct {
	Forest Forest          `json:"forest"`
	Peaks  []crypto.Digest `json:"peaks"`
}

// NewPeaks validates that peaks has one digest per tree of forest.
func NewPeaks(forest Forest, peaks []crypto.Digest) (Peaks, error) {
	if len(peaks) != forest.NumTrees() {
		return Peaks{}, fmt.Errorf("%w: forest %d has %d trees, got %d peaks",
			ErrInvalidPeaks, forest, forest.NumTrees(), len(peaks))
	}
	cp := make([]crypto.Digest, len(peaks))
	copy(cp, peaks)
	return Peaks{Forest: forest, Peaks: cp}, nil
}

// NumLeaves returns the number of leaves the peaks commit to.
func (p Peaks) NumLeaves() uint64 {
	return p.Forest.NumLeaves()
}

// Hash commits to the forest size and every peak. Block headers carry this
// value as their chain root.
func (p Peaks) Hash() crypto.Digest {
	var forest [8]byte
	binary.LittleEndian.PutUint64(forest[:], uint64(p.Forest))

	parts := make([][]byte, 0, len(p.Peaks)+1)
	parts = append(parts, forest[:])
	for i := range p.Peaks {
		parts = append(parts, p.Peaks[i][:])
	}
	return crypto.Hash(parts...)
}

// Verify checks an inclusion proof against these peaks.
func (p Peaks) Verify(leaf crypto.Digest, proof Proof) bool {
	if proof.Forest != p.Forest {
		return false
	}
	peak, offset, size, ok := p.Forest.treeFor(proof.Position)
	if !ok || len(proof.Path) != log2(size) {
		return false
	}
	return proof.Path.Verify(proof.Position-offset, leaf, p.Peaks[peak])
}

// Proof authenticates one leaf against the peak of the tree containing it.
type Proof struct {
	Forest   Forest            `json:"forest"`
	Position uint64            `json:"position"`
	Path     crypto.MerklePath `json:"path"`
}

// Delta describes how the peaks change when a forest grows to Forest. Data
// holds, in order, the right-hand siblings needed to merge the old trailing
// peaks and then the new peaks, largest first.
type Delta struct {
	Forest Forest          `json:"forest"`
	Data   []crypto.Digest `json:"data"`
}

// Node is an authentication node with its position in the forest.
type Node struct {
	Index  InOrderIndex  `json:"index"`
	Digest crypto.Digest `json:"digest"`
}

// deltaShape splits a forest transition into the bits kept as is, the old
// trees merged into the highest new tree and the trees added as new peaks.
func deltaShape(from, to Forest) (highest, merges, newPeaks uint64) {
	diff := uint64(from ^ to)
	highest = uint64(Forest(diff).LargestTree())
	merges = uint64(from) & (highest - 1)
	if merges != 0 {
		newPeaks = uint64(to) & (highest - 1)
	} else {
		newPeaks = diff
	}
	return highest, merges, newPeaks
}

// deltaSize is the number of digests a delta from -> to must carry.
func deltaSize(from, to Forest) int {
	if from == to {
		return 0
	}
	highest, merges, newPeaks := deltaShape(from, to)
	n := Forest(newPeaks).NumTrees()
	if merges != 0 {
		smallest := Forest(merges).SmallestTree()
		n += log2(highest) - log2(smallest) - (Forest(merges).NumTrees() - 1)
	}
	return n
}
