package mmr

import "errors"

var (
	// ErrInvalidUpdate is returned when a delta does not describe a valid
	// transition from the current forest (wrong number of nodes, data for an
	// unchanged forest).
	ErrInvalidUpdate = errors.New("mmr: invalid delta")

	// ErrForestShrunk is returned when a delta targets a forest smaller than
	// the current one.
	ErrForestShrunk = errors.New("mmr: forest cannot shrink")

	// ErrInvalidPeaks is returned when the number of peaks does not match the
	// number of trees in the forest.
	ErrInvalidPeaks = errors.New("mmr: peaks do not match forest")

	// ErrUntrackedLeaf is returned when opening a leaf whose authentication
	// path is not retained by a partial MMR.
	ErrUntrackedLeaf = errors.New("mmr: leaf is not tracked")

	// ErrLeafOutOfBounds is returned when a leaf position is outside the forest.
	ErrLeafOutOfBounds = errors.New("mmr: leaf position out of bounds")
)
