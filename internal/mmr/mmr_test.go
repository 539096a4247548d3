package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

func leafAt(pos uint64) crypto.Digest {
	return crypto.HashElements(pos, 0xb10c)
}

func buildMmr(n uint64) *Mmr {
	m := New()
	for i := uint64(0); i < n; i++ {
		m.Add(leafAt(i))
	}
	return m
}

// ── InOrderIndex ────────────────────────────────────────────────────────────

func TestInOrderIndex_Navigation(t *testing.T) {
	tests := []struct {
		idx     InOrderIndex
		level   int
		left    bool
		parent  InOrderIndex
		sibling InOrderIndex
	}{
		{idx: 1, level: 0, left: true, parent: 2, sibling: 3},
		{idx: 3, level: 0, left: false, parent: 2, sibling: 1},
		{idx: 2, level: 1, left: true, parent: 4, sibling: 6},
		{idx: 6, level: 1, left: false, parent: 4, sibling: 2},
		{idx: 4, level: 2, left: true, parent: 8, sibling: 12},
		{idx: 9, level: 0, left: true, parent: 10, sibling: 11},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, tt.idx.Level(), "level of %d", tt.idx)
		assert.Equal(t, tt.left, tt.idx.IsLeftChild(), "is left child %d", tt.idx)
		assert.Equal(t, tt.parent, tt.idx.Parent(), "parent of %d", tt.idx)
		assert.Equal(t, tt.sibling, tt.idx.Sibling(), "sibling of %d", tt.idx)
	}

	assert.Equal(t, InOrderIndex(2), InOrderIndex(4).LeftChild())
	assert.Equal(t, InOrderIndex(6), InOrderIndex(4).RightChild())
	assert.Equal(t, InOrderIndex(7), FromLeafPos(3))
}

func TestForest_Shape(t *testing.T) {
	f := Forest(13) // 8 + 4 + 1

	assert.Equal(t, 3, f.NumTrees())
	assert.Equal(t, []uint64{8, 4, 1}, f.Trees())
	assert.Equal(t, uint64(1), f.SmallestTree())
	assert.Equal(t, uint64(8), f.LargestTree())
	assert.Equal(t, uint64(23), f.NumNodes())
	assert.Equal(t, uint64(0), Forest(0).LargestTree())
}

// ── Full MMR ────────────────────────────────────────────────────────────────

func TestMmr_PeaksMatchManualMerge(t *testing.T) {
	m := buildMmr(3)

	p01 := crypto.Merge(leafAt(0), leafAt(1))
	assert.Equal(t, Forest(3), m.Forest())
	assert.Equal(t, []crypto.Digest{p01, leafAt(2)}, m.Peaks().Peaks)

	m.Add(leafAt(3))
	p23 := crypto.Merge(leafAt(2), leafAt(3))
	assert.Equal(t, []crypto.Digest{crypto.Merge(p01, p23)}, m.Peaks().Peaks)
}

func TestMmr_OpenVerifiesAgainstPeaks(t *testing.T) {
	m := buildMmr(23)

	for forest := Forest(1); forest <= 23; forest++ {
		peaks, err := m.PeaksAt(forest)
		require.NoError(t, err)

		for pos := uint64(0); pos < uint64(forest); pos++ {
			proof, err := m.OpenAt(pos, forest)
			require.NoError(t, err)
			assert.True(t, peaks.Verify(leafAt(pos), proof), "leaf %d forest %d", pos, forest)
			assert.False(t, peaks.Verify(leafAt(pos+100), proof))
		}
	}
}

func TestMmr_Errors(t *testing.T) {
	m := buildMmr(4)

	_, err := m.Leaf(4)
	assert.ErrorIs(t, err, ErrLeafOutOfBounds)

	_, err = m.PeaksAt(5)
	assert.ErrorIs(t, err, ErrLeafOutOfBounds)

	_, err = m.GetDelta(3, 2)
	assert.ErrorIs(t, err, ErrForestShrunk)

	_, err = m.Open(9)
	assert.ErrorIs(t, err, ErrLeafOutOfBounds)
}

func TestMmr_DeltaSize(t *testing.T) {
	m := buildMmr(64)

	for from := Forest(0); from <= 64; from++ {
		for to := from; to <= 64; to++ {
			delta, err := m.GetDelta(from, to)
			require.NoError(t, err)
			assert.Len(t, delta.Data, deltaSize(from, to), "delta %d -> %d", from, to)
		}
	}
}

// ── Partial MMR ─────────────────────────────────────────────────────────────

func TestPartialMmr_AddMatchesFull(t *testing.T) {
	full := New()
	partial := NewPartial(Peaks{})

	for pos := uint64(0); pos < 40; pos++ {
		full.Add(leafAt(pos))
		partial.Add(leafAt(pos), pos%5 == 0)

		require.Equal(t, full.Peaks(), partial.Peaks(), "after leaf %d", pos)
	}

	for pos := uint64(0); pos < 40; pos += 5 {
		proof, err := partial.Open(pos)
		require.NoError(t, err, "open %d", pos)

		want, err := full.Open(pos)
		require.NoError(t, err)
		assert.Equal(t, want, proof)
		assert.True(t, partial.Peaks().Verify(leafAt(pos), proof))
	}

	_, err := partial.Open(1)
	assert.ErrorIs(t, err, ErrUntrackedLeaf)
}

func TestPartialMmr_ApplyDeltaKeepsTrackedPaths(t *testing.T) {
	full := buildMmr(70)

	for from := uint64(1); from <= 33; from++ {
		for to := from; to <= 70; to++ {
			partial := NewPartial(Peaks{})
			tracked := map[uint64]bool{}
			for pos := uint64(0); pos < from; pos++ {
				track := pos%3 == 0 || pos == from-1
				tracked[pos] = track
				partial.Add(leafAt(pos), track)
			}

			delta, err := full.GetDelta(Forest(from), Forest(to))
			require.NoError(t, err)

			_, err = partial.ApplyDelta(delta)
			require.NoError(t, err, "delta %d -> %d", from, to)

			wantPeaks, err := full.PeaksAt(Forest(to))
			require.NoError(t, err)
			require.Equal(t, wantPeaks, partial.Peaks(), "peaks %d -> %d", from, to)

			for pos, track := range tracked {
				if !track {
					continue
				}
				proof, err := partial.Open(pos)
				require.NoError(t, err, "open %d after %d -> %d", pos, from, to)
				assert.True(t, wantPeaks.Verify(leafAt(pos), proof), "verify %d after %d -> %d", pos, from, to)
			}
		}
	}
}

func TestPartialMmr_ApplyDeltaReturnsInsertedNodes(t *testing.T) {
	full := buildMmr(8)
	partial := NewPartial(Peaks{})
	partial.Add(leafAt(0), true)

	delta, err := full.GetDelta(1, 8)
	require.NoError(t, err)

	before := len(partial.Nodes())
	nodes, err := partial.ApplyDelta(delta)
	require.NoError(t, err)

	assert.Len(t, partial.Nodes(), before+len(nodes))
	assert.Len(t, nodes, 3)
	for _, n := range nodes {
		assert.Equal(t, n.Digest, partial.Nodes()[n.Index])
	}
}

func TestPartialMmr_ApplyDeltaRejectsMalformed(t *testing.T) {
	full := buildMmr(10)
	partial := NewPartial(Peaks{})
	for pos := uint64(0); pos < 5; pos++ {
		partial.Add(leafAt(pos), false)
	}

	delta, err := full.GetDelta(5, 10)
	require.NoError(t, err)

	short := Delta{Forest: delta.Forest, Data: delta.Data[:len(delta.Data)-1]}
	_, err = partial.ApplyDelta(short)
	assert.ErrorIs(t, err, ErrInvalidUpdate)

	_, err = partial.ApplyDelta(Delta{Forest: 4})
	assert.ErrorIs(t, err, ErrForestShrunk)

	_, err = partial.ApplyDelta(Delta{Forest: 5, Data: []crypto.Digest{leafAt(1)}})
	assert.ErrorIs(t, err, ErrInvalidUpdate)

	// the failed attempts left the partial untouched
	assert.Equal(t, Forest(5), partial.Forest())

	_, err = partial.ApplyDelta(delta)
	require.NoError(t, err)
	assert.Equal(t, full.Peaks(), partial.Peaks())
}

func TestPartialMmr_ForestNeverShrinks(t *testing.T) {
	full := buildMmr(50)
	partial := NewPartial(Peaks{})

	steps := []uint64{3, 4, 4, 9, 17, 32, 33, 50}
	partial.Add(leafAt(0), true)
	prev := partial.Forest()
	for _, to := range steps {
		if Forest(to) < prev {
			continue
		}
		delta, err := full.GetDelta(prev, Forest(to))
		require.NoError(t, err)
		_, err = partial.ApplyDelta(delta)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, partial.Forest(), prev)
		assert.Len(t, partial.Peaks().Peaks, partial.Forest().NumTrees())
		prev = partial.Forest()
	}

	proof, err := partial.Open(0)
	require.NoError(t, err)
	assert.True(t, full.Peaks().Verify(leafAt(0), proof))
}

func TestNewPartialFromParts_RejectsBadPeaks(t *testing.T) {
	_, err := NewPartialFromParts(Peaks{Forest: 3, Peaks: []crypto.Digest{leafAt(0)}}, nil, false)
	assert.ErrorIs(t, err, ErrInvalidPeaks)

	_, err = NewPeaks(2, nil)
	assert.ErrorIs(t, err, ErrInvalidPeaks)
}

func TestPeaks_HashCommitsToForest(t *testing.T) {
	a := Peaks{Forest: 2, Peaks: []crypto.Digest{leafAt(1)}}
	b := Peaks{Forest: 4, Peaks: []crypto.Digest{leafAt(1)}}

	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Hash(), Peaks{Forest: 2, Peaks: []crypto.Digest{leafAt(1)}}.Hash())
}
