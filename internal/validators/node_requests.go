package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/rpc"
	"github.com/MKhiriev/go-light-client/models"
)

// Field names accepted by [NodeRequestValidator].
const (
	FieldTransactionID   = "transaction_id"
	FieldAccountID       = "account_id"
	FieldAccountHashes   = "account_hashes"
	FieldInputNullifiers = "input_nullifiers"
	FieldOutputNotes     = "output_notes"
	FieldNoteIDs         = "note_ids"
	FieldPrefixes        = "prefixes"
	FieldAccountIDs      = "account_ids"
	FieldSyncFilters     = "sync_filters"
)

// MaxSyncFilters bounds the account ids, note tags and nullifier prefixes a
// single sync request may carry, each counted separately.
const MaxSyncFilters = 1 << 12

// NodeRequestValidator validates the requests a node accepts from clients:
// [models.ProvenTransaction], [models.SyncStateRequest],
// [rpc.GetNotesByIDRequest] and [rpc.CheckNullifiersRequest].
type NodeRequestValidator struct{}

func NewNodeRequestValidator() Validator {
	return &NodeRequestValidator{}
}

func (v *NodeRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProvenTransaction:
		return v.validateProvenTransaction(ctx, value, fields...)
	case *models.ProvenTransaction:
		return v.validateProvenTransaction(ctx, *value, fields...)

	case models.SyncStateRequest:
		return v.validateSyncStateRequest(ctx, value, fields...)
	case *models.SyncStateRequest:
		return v.validateSyncStateRequest(ctx, *value, fields...)

	case rpc.GetNotesByIDRequest:
		return v.validateNotesByIDRequest(ctx, value, fields...)
	case *rpc.GetNotesByIDRequest:
		return v.validateNotesByIDRequest(ctx, *value, fields...)

	case rpc.CheckNullifiersRequest:
		return v.validateCheckNullifiersRequest(ctx, value, fields...)
	case *rpc.CheckNullifiersRequest:
		return v.validateCheckNullifiersRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NodeRequestValidator) validateProvenTransaction(_ context.Context, tx models.ProvenTransaction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTransactionID, FieldAccountID, FieldAccountHashes, FieldInputNullifiers, FieldOutputNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldTransactionID:
			if tx.ID.IsZero() {
				return ErrEmptyTransactionID
			}
		case FieldAccountID:
			if tx.AccountID == 0 {
				return ErrInvalidAccountID
			}
		case FieldAccountHashes:
			if tx.FinalAccountHash.IsZero() {
				return ErrEmptyAccountHash
			}
			if tx.InitAccountHash == tx.FinalAccountHash {
				return ErrUnchangedAccount
			}
		case FieldInputNullifiers:
			seen := make(map[models.Nullifier]struct{}, len(tx.InputNullifiers))
			for i, n := range tx.InputNullifiers {
				if n.IsZero() {
					return fmt.Errorf("nullifier at index %d: %w", i, ErrEmptyNullifier)
				}
				if _, ok := seen[n]; ok {
					return fmt.Errorf("%w: %s", ErrDuplicateNullifier, n)
				}
				seen[n] = struct{}{}
			}
		case FieldOutputNotes:
			ids := make([]models.NoteID, 0, len(tx.OutputNotes))
			for _, note := range tx.OutputNotes {
				ids = append(ids, note.ID())
			}
			if id, ok := firstDuplicate(ids); ok {
				return fmt.Errorf("%w: %s", ErrDuplicateOutputNote, id)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NodeRequestValidator) validateSyncStateRequest(_ context.Context, req models.SyncStateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountIDs, FieldSyncFilters}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountIDs:
			for i, id := range req.AccountIDs {
				if id == 0 {
					return fmt.Errorf("account id at index %d: %w", i, ErrInvalidAccountID)
				}
			}
		case FieldSyncFilters:
			if len(req.AccountIDs) > MaxSyncFilters || len(req.NoteTags) > MaxSyncFilters || len(req.NullifierPrefixes) > MaxSyncFilters {
				return ErrTooManyFilters
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NodeRequestValidator) validateNotesByIDRequest(_ context.Context, req rpc.GetNotesByIDRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteIDs:
			if len(req.NoteIDs) == 0 {
				return ErrNoNoteIDs
			}
			if id, ok := firstDuplicate(req.NoteIDs); ok {
				return fmt.Errorf("%w: %s", ErrDuplicateNoteID, id)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NodeRequestValidator) validateCheckNullifiersRequest(_ context.Context, req rpc.CheckNullifiersRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrefixes}
	}

	for _, f := range fields {
		switch f {
		case FieldPrefixes:
			if len(req.Prefixes) == 0 {
				return ErrNoPrefixes
			}
			if len(req.Prefixes) > MaxSyncFilters {
				return ErrTooManyFilters
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func firstDuplicate(ids []crypto.Digest) (crypto.Digest, bool) {
	seen := make(map[crypto.Digest]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return crypto.Digest{}, false
}
