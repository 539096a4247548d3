package mocknode

import "errors"

var (
	ErrBlockNotFound   = errors.New("block not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrNoteTreeFull    = errors.New("block note tree is full")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrDuplicateTx     = errors.New("transaction already submitted")
)
