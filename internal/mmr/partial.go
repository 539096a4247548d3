package mmr

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// PartialMmr follows a full MMR through its peaks and retains the
// authentication paths of tracked leaves only.
//
// Nodes are never pruned by the partial MMR itself: Add and ApplyDelta only
// insert, and every inserted node is returned so callers can persist it.
//
// Not safe for concurrent use.
type PartialMmr struct {
	forest Forest
	peaks  []crypto.Digest
	nodes  map[InOrderIndex]crypto.Digest

	// trackLatest marks the single-leaf peak (odd forest) as tracked. A lone
	// leaf has no sibling yet, so nodes cannot express it.
	trackLatest bool
}

// NewPartial returns a partial MMR with the given peaks and no tracked leaves.
func NewPartial(peaks Peaks) *PartialMmr {
	p, _ := NewPartialFromParts(peaks, nil, false)
	return p
}

// NewPartialFromParts rebuilds a partial MMR from persisted state.
func NewPartialFromParts(peaks Peaks, nodes map[InOrderIndex]crypto.Digest, trackLatest bool) (*PartialMmr, error) {
	if len(peaks.Peaks) != peaks.Forest.NumTrees() {
		return nil, fmt.Errorf("%w: forest %d has %d trees, got %d peaks",
			ErrInvalidPeaks, peaks.Forest, peaks.Forest.NumTrees(), len(peaks.Peaks))
	}

	p := &PartialMmr{
		forest:      peaks.Forest,
		peaks:       append([]crypto.Digest(nil), peaks.Peaks...),
		nodes:       make(map[InOrderIndex]crypto.Digest, len(nodes)),
		trackLatest: trackLatest && peaks.Forest&1 == 1,
	}
	maps.Copy(p.nodes, nodes)
	return p, nil
}

// Forest returns the number of leaves the partial MMR commits to.
func (p *PartialMmr) Forest() Forest {
	return p.forest
}

// Peaks returns a copy of the current peaks.
func (p *PartialMmr) Peaks() Peaks {
	return Peaks{Forest: p.forest, Peaks: append([]crypto.Digest(nil), p.peaks...)}
}

// Nodes returns a copy of the retained authentication nodes.
func (p *PartialMmr) Nodes() map[InOrderIndex]crypto.Digest {
	return maps.Clone(p.nodes)
}

// TrackLatest reports whether the latest leaf is tracked while it is still a
// single-leaf peak.
func (p *PartialMmr) TrackLatest() bool {
	return p.trackLatest
}

// IsTracked reports whether the leaf at pos can be opened.
func (p *PartialMmr) IsTracked(pos uint64) bool {
	_, _, size, ok := p.forest.treeFor(pos)
	if !ok {
		return false
	}
	if size == 1 {
		return p.trackLatest
	}
	return p.hasNode(FromLeafPos(pos).Sibling())
}

// Open returns the authentication path of a tracked leaf.
func (p *PartialMmr) Open(pos uint64) (Proof, error) {
	_, _, size, ok := p.forest.treeFor(pos)
	if !ok {
		return Proof{}, fmt.Errorf("%w: %d >= %d", ErrLeafOutOfBounds, pos, p.forest)
	}
	if size == 1 {
		if !p.trackLatest {
			return Proof{}, fmt.Errorf("%w: %d", ErrUntrackedLeaf, pos)
		}
		return Proof{Forest: p.forest, Position: pos, Path: crypto.MerklePath{}}, nil
	}

	depth := log2(size)
	path := make(crypto.MerklePath, 0, depth)
	idx := FromLeafPos(pos)
	for i := 0; i < depth; i++ {
		sibling, ok := p.nodes[idx.Sibling()]
		if !ok {
			return Proof{}, fmt.Errorf("%w: %d", ErrUntrackedLeaf, pos)
		}
		path = append(path, sibling)
		idx = idx.Parent()
	}
	return Proof{Forest: p.forest, Position: pos, Path: path}, nil
}

// Add appends a leaf. When track is set the authentication path of the leaf
// is retained as later leaves and deltas arrive. The returned nodes are the
// ones newly inserted into the node set.
func (p *PartialMmr) Add(leaf crypto.Digest, track bool) []Node {
	merges := 0
	for uint64(p.forest)&(1<<merges) != 0 {
		merges++
	}

	pos := uint64(p.forest)
	p.forest++

	if merges == 0 {
		p.peaks = append(p.peaks, leaf)
		p.trackLatest = track
		return nil
	}

	var inserted []Node
	trackRight := track
	trackLeft := p.trackLatest
	right := leaf
	rightIdx := FromLeafPos(pos)

	for range merges {
		left := p.peaks[len(p.peaks)-1]
		p.peaks = p.peaks[:len(p.peaks)-1]
		leftIdx := rightIdx.Sibling()

		if trackRight {
			inserted = p.insert(inserted, leftIdx, left)
		}
		if trackLeft {
			inserted = p.insert(inserted, rightIdx, right)
		}

		rightIdx = rightIdx.Parent()
		right = crypto.Merge(left, right)

		// the merged node is always the right side of the next merge
		trackRight = trackRight || trackLeft
		trackLeft = p.isTrackedNode(rightIdx.Sibling())
	}

	p.peaks = append(p.peaks, right)
	p.trackLatest = false
	return inserted
}

// ApplyDelta advances the peaks to delta.Forest and stores the nodes that
// keep every tracked leaf provable under the new peaks.
func (p *PartialMmr) ApplyDelta(delta Delta) ([]Node, error) {
	from, to := p.forest, delta.Forest

	switch {
	case to < from:
		return nil, fmt.Errorf("%w: %d -> %d", ErrForestShrunk, from, to)
	case to == from:
		if len(delta.Data) != 0 {
			return nil, fmt.Errorf("%w: %d digests for unchanged forest %d", ErrInvalidUpdate, len(delta.Data), from)
		}
		return nil, nil
	}

	if want := deltaSize(from, to); len(delta.Data) != want {
		return nil, fmt.Errorf("%w: forest %d -> %d needs %d digests, got %d",
			ErrInvalidUpdate, from, to, want, len(delta.Data))
	}

	highest, merges, newPeaks := deltaShape(from, to)

	var inserted []Node
	k := 0

	if merges != 0 {
		smallest := Forest(merges).SmallestTree()
		cursor := len(p.peaks) - 1
		cur := p.peaks[cursor]
		curIdx := treeRoot(uint64(from)-smallest, smallest)

		var track bool
		if smallest == 1 {
			track = p.trackLatest
		} else {
			track = p.isTrackedNode(curIdx)
		}

		for size := smallest; size < highest; size <<= 1 {
			if curIdx.IsLeftChild() {
				right := delta.Data[k]
				k++
				if track {
					inserted = p.insert(inserted, curIdx.Sibling(), right)
				}
				cur = crypto.Merge(cur, right)
			} else {
				cursor--
				left := p.peaks[cursor]
				leftIdx := curIdx.Sibling()
				leftTracked := p.isTrackedNode(leftIdx)

				if leftTracked {
					inserted = p.insert(inserted, curIdx, cur)
				}
				if track {
					inserted = p.insert(inserted, leftIdx, left)
				}
				track = track || leftTracked
				cur = crypto.Merge(left, cur)
			}
			curIdx = curIdx.Parent()
		}

		p.peaks = append(p.peaks[:cursor], cur)
	}

	for range Forest(newPeaks).NumTrees() {
		p.peaks = append(p.peaks, delta.Data[k])
		k++
	}

	p.forest = to
	p.trackLatest = false
	return inserted, nil
}

func (p *PartialMmr) hasNode(idx InOrderIndex) bool {
	_, ok := p.nodes[idx]
	return ok
}

// isTrackedNode reports whether some leaf below idx is tracked.
func (p *PartialMmr) isTrackedNode(idx InOrderIndex) bool {
	if idx.IsLeaf() {
		return p.hasNode(idx.Sibling())
	}
	return p.hasNode(idx.LeftChild()) || p.hasNode(idx.RightChild())
}

func (p *PartialMmr) insert(out []Node, idx InOrderIndex, d crypto.Digest) []Node {
	p.nodes[idx] = d
	return append(out, Node{Index: idx, Digest: d})
}
