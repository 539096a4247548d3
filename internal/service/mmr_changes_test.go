package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

func TestApplyMmrChanges_FollowsFullMmr(t *testing.T) {
	full := mmr.New()
	headers := make([]models.BlockHeader, 20)
	for i := range headers {
		headers[i] = models.BlockHeader{BlockNum: uint32(i), Timestamp: uint32(1000 + i)}
		full.Add(headers[i].Hash())
	}

	partial := mmr.NewPartial(mmr.Peaks{})
	current := uint32(0)
	var tracked []uint32

	for _, target := range []uint32{1, 2, 5, 6, 7, 12, 19} {
		delta, err := full.GetDelta(mmr.Forest(current+1), mmr.Forest(target))
		require.NoError(t, err)

		// чётные блоки считаем блоками с нотами клиента
		hasNotes := current%2 == 0
		if hasNotes {
			tracked = append(tracked, current)
		}

		peaks, _, err := applyMmrChanges(partial, delta, headers[current], hasNotes)
		require.NoError(t, err, "step %d -> %d", current, target)

		want, err := full.PeaksAt(mmr.Forest(target))
		require.NoError(t, err)
		assert.Equal(t, want.Forest, peaks.Forest)
		assert.Equal(t, want.Hash(), peaks.Hash(), "peaks at forest %d", target)

		current = target
	}

	final := partial.Peaks()
	for _, pos := range tracked {
		proof, err := partial.Open(uint64(pos))
		require.NoError(t, err, "leaf %d", pos)
		assert.True(t, final.Verify(headers[pos].Hash(), proof), "leaf %d", pos)
	}
}

func TestApplyMmrChanges_ForestMismatch(t *testing.T) {
	partial := mmr.NewPartial(mmr.Peaks{})

	_, _, err := applyMmrChanges(partial, mmr.Delta{Forest: 4}, models.BlockHeader{BlockNum: 3}, false)

	require.ErrorIs(t, err, mmr.ErrInvalidUpdate)
	assert.Equal(t, mmr.Forest(0), partial.Forest())
}

func TestApplyMmrChanges_ReturnsLeafNodes(t *testing.T) {
	full := mmr.New()
	headers := make([]models.BlockHeader, 4)
	for i := range headers {
		headers[i] = models.BlockHeader{BlockNum: uint32(i)}
		full.Add(headers[i].Hash())
	}

	partial := mmr.NewPartial(mmr.Peaks{})
	delta, err := full.GetDelta(1, 1)
	require.NoError(t, err)
	_, nodes, err := applyMmrChanges(partial, delta, headers[0], true)
	require.NoError(t, err)
	assert.Empty(t, nodes)
	assert.True(t, partial.TrackLatest())

	// блок 1 сливается с отслеживаемым блоком 0: его хеш становится узлом пути
	delta, err = full.GetDelta(2, 3)
	require.NoError(t, err)
	_, nodes, err = applyMmrChanges(partial, delta, headers[1], false)
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	assert.Contains(t, nodes, mmr.Node{Index: mmr.FromLeafPos(1), Digest: headers[1].Hash()})
}
