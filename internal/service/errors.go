package service

import "errors"

var (
	// ErrAccountIsPrivate is returned when the node answers an update of an
	// account tracked as public without the account state.
	ErrAccountIsPrivate = errors.New("node reports tracked public account as private")

	// ErrChainRootMismatch is returned when the MMR peaks after a step do not
	// hash to the chain root of the synced block header.
	ErrChainRootMismatch = errors.New("chain root mismatch")

	// ErrMissingBlockHeader is returned when the store has a sync height but
	// no header for it.
	ErrMissingBlockHeader = errors.New("missing block header for sync height")

	// ErrInvalidSyncResponse is returned when the node answers with a block
	// behind the requested one.
	ErrInvalidSyncResponse = errors.New("invalid sync state response")

	ErrUnknownInputNote   = errors.New("transaction consumes an unknown input note")
	ErrTransactionIDEmpty = errors.New("transaction id is empty")
)
