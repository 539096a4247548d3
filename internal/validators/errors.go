package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTransactionID  = errors.New("transaction id is empty")
	ErrInvalidAccountID    = errors.New("invalid account id")
	ErrEmptyAccountHash    = errors.New("account hash is empty")
	ErrUnchangedAccount    = errors.New("transaction does not change the account")
	ErrEmptyNullifier      = errors.New("nullifier is empty")
	ErrDuplicateNullifier  = errors.New("duplicate nullifier")
	ErrDuplicateOutputNote = errors.New("duplicate output note")
	ErrNoNoteIDs           = errors.New("note ids list cannot be empty")
	ErrDuplicateNoteID     = errors.New("duplicate note id")
	ErrNoPrefixes          = errors.New("nullifier prefixes list cannot be empty")
	ErrTooManyFilters      = errors.New("too many sync filters")
)
