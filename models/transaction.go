package models

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// TransactionStatus is the lifecycle of a locally submitted transaction.
type TransactionStatus uint8

const (
	TransactionStatusPending TransactionStatus = iota + 1
	TransactionStatusCommitted
	TransactionStatusDiscarded
)

func (s TransactionStatus) String() string {
	switch s {
	case TransactionStatusPending:
		return "pending"
	case TransactionStatusCommitted:
		return "committed"
	case TransactionStatusDiscarded:
		return "discarded"
	default:
		return fmt.Sprintf("transaction_status(%d)", uint8(s))
	}
}

// TransactionRecord is a transaction executed by this client.
type TransactionRecord struct {
	ID                  TransactionID     `json:"id"`
	AccountID           AccountID         `json:"account_id"`
	InitAccountHash     crypto.Digest     `json:"init_account_hash"`
	FinalAccountHash    crypto.Digest     `json:"final_account_hash"`
	InputNoteNullifiers []Nullifier       `json:"input_note_nullifiers"`
	OutputNoteIDs       []NoteID          `json:"output_note_ids"`
	BlockNum            uint32            `json:"block_num"`
	Status              TransactionStatus `json:"status"`
	CommitHeight        uint32            `json:"commit_height,omitempty"`
	SubmittedAt         uint64            `json:"submitted_at"`
}

// TransactionInclusion is reported by the node for committed transactions
// of tracked accounts.
type TransactionInclusion struct {
	TransactionID TransactionID `json:"transaction_id"`
	AccountID     AccountID     `json:"account_id"`
	BlockNum      uint32        `json:"block_num"`
}

// TransactionUpdates is the transaction part of a state sync update.
type TransactionUpdates struct {
	Committed []TransactionInclusion `json:"committed"`
	Discarded []TransactionID        `json:"discarded"`
}

// ProvenTransaction is what the node accepts for inclusion.
type ProvenTransaction struct {
	ID               TransactionID `json:"id"`
	AccountID        AccountID     `json:"account_id"`
	InitAccountHash  crypto.Digest `json:"init_account_hash"`
	FinalAccountHash crypto.Digest `json:"final_account_hash"`
	InputNullifiers  []Nullifier   `json:"input_nullifiers"`
	OutputNotes      []Note        `json:"output_notes"`
	BlockRef         uint32        `json:"block_ref"`
	Proof            []byte        `json:"proof"`
}

// TransactionResult bundles a locally executed transaction with the notes it
// consumes and creates.
type TransactionResult struct {
	Proven      ProvenTransaction
	InputNotes  []NoteID
	OutputNotes []Note
}
