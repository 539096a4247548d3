package service

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

// applyMmrChanges appends current to partial, keeping its path when
// currentHasNotes is set, and advances partial to the forest of delta. It
// returns the new peaks and every node the two operations added.
//
// partial must cover exactly the blocks before current.
func applyMmrChanges(partial *mmr.PartialMmr, delta mmr.Delta, current models.BlockHeader, currentHasNotes bool) (mmr.Peaks, []mmr.Node, error) {
	if got := partial.Forest(); uint64(got) != uint64(current.BlockNum) {
		return mmr.Peaks{}, nil, fmt.Errorf("%w: partial mmr has %d leaves, current block is %d",
			mmr.ErrInvalidUpdate, got, current.BlockNum)
	}

	leafNodes := partial.Add(current.Hash(), currentHasNotes)

	deltaNodes, err := partial.ApplyDelta(delta)
	if err != nil {
		return mmr.Peaks{}, nil, fmt.Errorf("apply mmr delta to forest %d: %w", delta.Forest, err)
	}

	return partial.Peaks(), append(deltaNodes, leafNodes...), nil
}
