package store

import (
	"context"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/mmr"
	"github.com/MKhiriev/go-light-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store is the client persistence capability. Every method is safe for
// concurrent use; callers still serialize syncs against one store.
type Store interface {
	NoteStore
	AccountStore
	TransactionStore
	ChainStore
	TagStore

	// ApplyStateSync writes every part of update atomically where the backend
	// supports it. It is the only writer of sync results.
	ApplyStateSync(ctx context.Context, update models.StateSyncUpdate) error

	Close() error
}

// NoteStore holds input and output notes.
type NoteStore interface {
	GetInputNotes(ctx context.Context, filter models.NoteFilter) ([]models.InputNoteRecord, error)
	GetOutputNotes(ctx context.Context, filter models.NoteFilter) ([]models.OutputNoteRecord, error)
	UpsertInputNotes(ctx context.Context, notes ...models.InputNoteRecord) error
	UpsertOutputNotes(ctx context.Context, notes ...models.OutputNoteRecord) error

	// GetUnspentInputNoteNullifiers returns the nullifiers of input notes that
	// are not consumed yet.
	GetUnspentInputNoteNullifiers(ctx context.Context) ([]models.Nullifier, error)
}

// AccountStore keeps every known state of the tracked accounts.
type AccountStore interface {
	// GetAccountHeaders returns the latest header of every tracked account.
	GetAccountHeaders(ctx context.Context) ([]models.AccountHeader, error)

	// GetAccount returns the latest state of id or [ErrAccountNotFound].
	GetAccount(ctx context.Context, id models.AccountID) (models.Account, error)

	// GetAccountHeaderByHash returns the stored header with the given
	// commitment, or nil when no state matches.
	GetAccountHeaderByHash(ctx context.Context, hash crypto.Digest) (*models.AccountHeader, error)

	InsertAccount(ctx context.Context, account models.Account) error

	// IsAccountLocked reports whether a sync found the account out of step
	// with the chain.
	IsAccountLocked(ctx context.Context, id models.AccountID) (bool, error)
}

// TransactionStore keeps locally executed transactions.
type TransactionStore interface {
	GetTransactions(ctx context.Context, filter models.TransactionFilter) ([]models.TransactionRecord, error)

	// ApplyTransaction stores a submitted transaction together with the input
	// notes it consumes and the output notes it creates.
	ApplyTransaction(ctx context.Context, tx models.TransactionRecord, consumed []models.InputNoteRecord, created []models.OutputNoteRecord) error
}

// ChainStore keeps block headers and the partial chain MMR.
type ChainStore interface {
	// GetSyncHeight returns the highest stored block number, 0 when empty.
	GetSyncHeight(ctx context.Context) (uint32, error)

	// GetBlockHeaderByNum returns the header or [ErrBlockHeaderNotFound].
	GetBlockHeaderByNum(ctx context.Context, num uint32) (models.StoredBlockHeader, error)

	// InsertBlockHeader stores header with the chain MMR peaks it commits to.
	InsertBlockHeader(ctx context.Context, header models.BlockHeader, peaks mmr.Peaks, hasClientNotes bool) error

	// BuildCurrentPartialMmr rebuilds the partial MMR as of the latest stored
	// header.
	BuildCurrentPartialMmr(ctx context.Context) (*mmr.PartialMmr, error)
}

// TagStore keeps note tag subscriptions.
type TagStore interface {
	GetNoteTags(ctx context.Context) ([]models.NoteTagRecord, error)

	// AddNoteTag reports false when the exact subscription already exists.
	AddNoteTag(ctx context.Context, tag models.NoteTagRecord) (bool, error)

	// RemoveNoteTag returns the number of removed subscriptions.
	RemoveNoteTag(ctx context.Context, tag models.NoteTagRecord) (int, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
