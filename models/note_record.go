package models

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// InputNoteRecord is a note the client may consume. Only State changes over
// the life of the record; records are never deleted.
type InputNoteRecord struct {
	Details   NoteDetails
	CreatedAt uint64
	State     InputNoteState
}

// NewInputNoteRecord returns a record in the given state.
func NewInputNoteRecord(details NoteDetails, createdAt uint64, state InputNoteState) InputNoteRecord {
	return InputNoteRecord{Details: details, CreatedAt: createdAt, State: state}
}

// ID returns the note id.
func (r InputNoteRecord) ID() NoteID {
	return r.Details.ID()
}

// Nullifier returns the note nullifier.
func (r InputNoteRecord) Nullifier() Nullifier {
	return r.Details.Nullifier()
}

// Metadata returns the metadata if the current state knows it.
func (r InputNoteRecord) Metadata() *NoteMetadata {
	return r.State.Metadata()
}

// InclusionProof returns the proof held by the current state.
func (r InputNoteRecord) InclusionProof() *NoteInclusionProof {
	return r.State.InclusionProof()
}

// ConsumerTransactionID returns the id of the local transaction consuming the
// note, if any.
func (r InputNoteRecord) ConsumerTransactionID() *TransactionID {
	if sub := r.State.Submission(); sub != nil {
		id := sub.ConsumerTransaction
		return &id
	}
	return nil
}

// Note returns the full note when the metadata is known.
func (r InputNoteRecord) Note() (Note, bool) {
	m := r.Metadata()
	if m == nil {
		return Note{}, false
	}
	return Note{NoteDetails: r.Details, Metadata: *m}, true
}

func (r InputNoteRecord) IsCommitted() bool {
	return r.State.Kind() == StateCommitted
}

func (r InputNoteRecord) IsConsumed() bool {
	return r.State.Kind().IsConsumed()
}

func (r InputNoteRecord) IsProcessing() bool {
	return r.State.Kind().IsProcessing()
}

// IsAuthenticated reports whether the note inclusion was verified.
func (r InputNoteRecord) IsAuthenticated() bool {
	switch r.State.Kind() {
	case StateCommitted, StateProcessingAuthenticated, StateConsumedAuthenticatedLocal:
		return true
	}
	return false
}

// InclusionProofReceived applies the event and reports whether the record
// changed.
func (r *InputNoteRecord) InclusionProofReceived(proof NoteInclusionProof, metadata NoteMetadata) (bool, error) {
	return r.apply(InclusionProofReceived(r.State, proof, metadata))
}

// ConsumedExternally applies the event and reports whether the record changed.
func (r *InputNoteRecord) ConsumedExternally(nullifierBlock uint32) (bool, error) {
	return r.apply(ConsumedExternally(r.State, nullifierBlock))
}

// BlockHeaderReceived applies the event and reports whether the record
// changed.
func (r *InputNoteRecord) BlockHeaderReceived(header BlockHeader) (bool, error) {
	return r.apply(BlockHeaderReceived(r.State, r.ID(), header))
}

// ConsumedLocally applies the event and reports whether the record changed.
func (r *InputNoteRecord) ConsumedLocally(account AccountID, txID TransactionID, submittedAt uint64) (bool, error) {
	return r.apply(ConsumedLocally(r.State, SubmissionData{
		ConsumerAccount:     account,
		ConsumerTransaction: txID,
		SubmittedAt:         submittedAt,
	}))
}

// TransactionCommitted applies the event and reports whether the record
// changed.
func (r *InputNoteRecord) TransactionCommitted(txID TransactionID, block uint32) (bool, error) {
	return r.apply(TransactionCommitted(r.State, txID, block))
}

func (r *InputNoteRecord) apply(next InputNoteState, err error) (bool, error) {
	if err != nil {
		return false, fmt.Errorf("note %s: %w", r.ID(), err)
	}
	if next == nil {
		return false, nil
	}
	r.State = next
	return true, nil
}

type inputNoteRecordJSON struct {
	Details   NoteDetails     `json:"details"`
	CreatedAt uint64          `json:"created_at"`
	StateKind string          `json:"state_kind"`
	State     json.RawMessage `json:"state"`
}

// MarshalJSON encodes the state next to its kind.
func (r InputNoteRecord) MarshalJSON() ([]byte, error) {
	if r.State == nil {
		return nil, fmt.Errorf("note %s: %w", r.ID(), ErrUnknownNoteState)
	}
	state, err := EncodeNoteState(r.State)
	if err != nil {
		return nil, err
	}
	return json.Marshal(inputNoteRecordJSON{
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
		StateKind: r.State.Kind().String(),
		State:     state,
	})
}

// UnmarshalJSON restores a record written by MarshalJSON.
func (r *InputNoteRecord) UnmarshalJSON(b []byte) error {
	var raw inputNoteRecordJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	kind, err := ParseNoteStateKind(raw.StateKind)
	if err != nil {
		return err
	}
	state, err := DecodeNoteState(kind, raw.State)
	if err != nil {
		return err
	}

	r.Details = raw.Details
	r.CreatedAt = raw.CreatedAt
	r.State = state
	return nil
}

// OutputNoteStateKind is the state of a note created by a local transaction.
type OutputNoteStateKind uint8

const (
	OutputNoteExpected OutputNoteStateKind = iota + 1
	OutputNoteCommitted
	OutputNoteConsumed
)

func (k OutputNoteStateKind) String() string {
	switch k {
	case OutputNoteExpected:
		return "expected"
	case OutputNoteCommitted:
		return "committed"
	case OutputNoteConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("output_note_state(%d)", uint8(k))
	}
}

// OutputNoteRecord is a note created by a local transaction. Recipient is nil
// when only the recipient digest is known, in which case the nullifier cannot
// be derived.
type OutputNoteRecord struct {
	ID              NoteID         `json:"id"`
	Assets          NoteAssets     `json:"assets"`
	Metadata        NoteMetadata   `json:"metadata"`
	RecipientDigest crypto.Digest  `json:"recipient_digest"`
	Recipient       *NoteRecipient `json:"recipient,omitempty"`
	ExpectedHeight  uint32         `json:"expected_height"`

	State          OutputNoteStateKind `json:"state"`
	InclusionProof *NoteInclusionProof `json:"inclusion_proof,omitempty"`
	ConsumedAt     uint32              `json:"consumed_at,omitempty"`
}

// NewOutputNoteRecord returns an expected output note for n.
func NewOutputNoteRecord(n Note, expectedHeight uint32) OutputNoteRecord {
	recipient := n.Recipient
	return OutputNoteRecord{
		ID:              n.ID(),
		Assets:          n.Assets,
		Metadata:        n.Metadata,
		RecipientDigest: n.Recipient.Digest(),
		Recipient:       &recipient,
		ExpectedHeight:  expectedHeight,
		State:           OutputNoteExpected,
	}
}

// Nullifier returns the note nullifier when the full recipient is known.
func (r OutputNoteRecord) Nullifier() (Nullifier, bool) {
	if r.Recipient == nil {
		return Nullifier{}, false
	}
	return NoteDetails{Assets: r.Assets, Recipient: *r.Recipient}.Nullifier(), true
}

func (r OutputNoteRecord) IsConsumed() bool {
	return r.State == OutputNoteConsumed
}

// InclusionProofReceived commits the note. Re-delivery of the held proof is
// a no-op.
func (r *OutputNoteRecord) InclusionProofReceived(proof NoteInclusionProof, metadata NoteMetadata) (bool, error) {
	if metadata != r.Metadata {
		return false, fmt.Errorf("output note %s: %w: metadata differs", r.ID, ErrInclusionProofMismatch)
	}

	switch r.State {
	case OutputNoteExpected:
		p := proof
		r.InclusionProof = &p
		r.State = OutputNoteCommitted
		return true, nil
	case OutputNoteCommitted, OutputNoteConsumed:
		if r.InclusionProof != nil && r.InclusionProof.Equal(proof) {
			return false, nil
		}
		return false, fmt.Errorf("output note %s: %w", r.ID, ErrInclusionProofMismatch)
	}
	return false, fmt.Errorf("output note %s in state %s: %w", r.ID, r.State, ErrInvalidTransition)
}

// NullifierReceived consumes a committed note.
func (r *OutputNoteRecord) NullifierReceived(nullifier Nullifier, block uint32) (bool, error) {
	if own, ok := r.Nullifier(); ok && own != nullifier {
		return false, fmt.Errorf("output note %s: %w", r.ID, ErrNullifierMismatch)
	}

	switch r.State {
	case OutputNoteCommitted:
		r.State = OutputNoteConsumed
		r.ConsumedAt = block
		return true, nil
	case OutputNoteConsumed:
		return false, nil
	}
	return false, fmt.Errorf("output note %s in state %s: %w", r.ID, r.State, ErrInvalidTransition)
}
