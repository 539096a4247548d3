package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBlockHeaderNotFound is returned when a block header is requested by
	// number but was never stored. A fresh store has no headers at all, not
	// even genesis.
	ErrBlockHeaderNotFound = errors.New("block header was not found")

	// ErrAccountNotFound is returned when an account lookup by id matches no
	// stored state.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrTransactionExists is returned when a local transaction is stored a
	// second time.
	ErrTransactionExists = errors.New("transaction already exists")

	// ErrUnknownDriver is returned by [NewStore] for a driver it cannot open.
	ErrUnknownDriver = errors.New("unknown store driver")

	// ErrRetryable wraps database failures classified as transient by the
	// backend's [ErrorClassificator]. The whole operation may be retried.
	ErrRetryable = errors.New("retryable store error")

	// ErrDuplicate wraps unique constraint violations reported by the
	// database.
	ErrDuplicate = errors.New("duplicate store record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingRecord is returned when a JSON column cannot be decoded back
	// into its model.
	ErrDecodingRecord = errors.New("failed to decode stored record")

	// ErrEncodingRecord is returned when a model cannot be encoded into its
	// JSON column.
	ErrEncodingRecord = errors.New("failed to encode record")
)
