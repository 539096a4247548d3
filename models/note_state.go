package models

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// NoteStateKind names the state of an input note. The values are persisted.
type NoteStateKind uint8

const (
	StateExpected NoteStateKind = iota + 1
	StateUnverified
	StateCommitted
	StateInvalid
	StateProcessingAuthenticated
	StateProcessingUnauthenticated
	StateConsumedAuthenticatedLocal
	StateConsumedUnauthenticatedLocal
	StateConsumedExternal
)

var noteStateNames = map[NoteStateKind]string{
	StateExpected:                     "expected",
	StateUnverified:                   "unverified",
	StateCommitted:                    "committed",
	StateInvalid:                      "invalid",
	StateProcessingAuthenticated:      "processing_authenticated",
	StateProcessingUnauthenticated:    "processing_unauthenticated",
	StateConsumedAuthenticatedLocal:   "consumed_authenticated_local",
	StateConsumedUnauthenticatedLocal: "consumed_unauthenticated_local",
	StateConsumedExternal:             "consumed_external",
}

func (k NoteStateKind) String() string {
	if name, ok := noteStateNames[k]; ok {
		return name
	}
	return fmt.Sprintf("note_state(%d)", uint8(k))
}

// ParseNoteStateKind is the inverse of String.
func ParseNoteStateKind(s string) (NoteStateKind, error) {
	for k, name := range noteStateNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNoteState, s)
}

// IsConsumed reports whether the state is terminal.
func (k NoteStateKind) IsConsumed() bool {
	switch k {
	case StateConsumedAuthenticatedLocal, StateConsumedUnauthenticatedLocal, StateConsumedExternal:
		return true
	}
	return false
}

// IsProcessing reports whether a local transaction is consuming the note.
func (k NoteStateKind) IsProcessing() bool {
	return k == StateProcessingAuthenticated || k == StateProcessingUnauthenticated
}

// NoteEvent names an input that drives the note state machine.
type NoteEvent string

const (
	EventInclusionProofReceived NoteEvent = "inclusion_proof_received"
	EventConsumedExternally     NoteEvent = "consumed_externally"
	EventBlockHeaderReceived    NoteEvent = "block_header_received"
	EventConsumedLocally        NoteEvent = "consumed_locally"
	EventTransactionCommitted   NoteEvent = "transaction_committed"
)

// InputNoteState is the state of an input note. The set of implementations
// is closed: only the state types of this package satisfy it.
type InputNoteState interface {
	Kind() NoteStateKind

	// Metadata returns the note metadata if the state knows it.
	Metadata() *NoteMetadata

	// InclusionProof returns the proof held by the state, valid or not.
	InclusionProof() *NoteInclusionProof

	// Submission returns the local consumption data, if any.
	Submission() *SubmissionData

	isInputNoteState()
}

// SubmissionData records the local transaction consuming a note.
type SubmissionData struct {
	ConsumerAccount     AccountID     `json:"consumer_account"`
	ConsumerTransaction TransactionID `json:"consumer_transaction"`
	SubmittedAt         uint64        `json:"submitted_at"`
}

// ExpectedState: the note details are known but the note was not seen
// on-chain yet.
type ExpectedState struct {
	NoteMetadata  *NoteMetadata `json:"metadata,omitempty"`
	AfterBlockNum uint32        `json:"after_block_num"`
	Tag           *NoteTag      `json:"tag,omitempty"`
}

// UnverifiedState: an inclusion proof was received but not checked against
// a block header.
type UnverifiedState struct {
	NoteMetadata NoteMetadata       `json:"metadata"`
	Proof        NoteInclusionProof `json:"inclusion_proof"`
}

// CommittedState: the inclusion proof verified against the block note root.
type CommittedState struct {
	NoteMetadata  NoteMetadata       `json:"metadata"`
	Proof         NoteInclusionProof `json:"inclusion_proof"`
	BlockNoteRoot crypto.Digest      `json:"block_note_root"`
}

// InvalidState: the inclusion proof did not verify. A later proof may still
// move the note back to Unverified.
type InvalidState struct {
	NoteMetadata  NoteMetadata       `json:"metadata"`
	InvalidProof  NoteInclusionProof `json:"invalid_inclusion_proof"`
	BlockNoteRoot crypto.Digest      `json:"block_note_root"`
}

// ProcessingAuthenticatedState: a committed note is being consumed by a
// local transaction.
type ProcessingAuthenticatedState struct {
	NoteMetadata   NoteMetadata       `json:"metadata"`
	Proof          NoteInclusionProof `json:"inclusion_proof"`
	BlockNoteRoot  crypto.Digest      `json:"block_note_root"`
	SubmissionData SubmissionData     `json:"submission_data"`
}

// ProcessingUnauthenticatedState: a note not yet authenticated is being
// consumed by a local transaction.
type ProcessingUnauthenticatedState struct {
	NoteMetadata   NoteMetadata   `json:"metadata"`
	AfterBlockNum  uint32         `json:"after_block_num"`
	SubmissionData SubmissionData `json:"submission_data"`
}

// ConsumedAuthenticatedLocalState: the local transaction consuming an
// authenticated note was committed.
type ConsumedAuthenticatedLocalState struct {
	NoteMetadata         NoteMetadata       `json:"metadata"`
	Proof                NoteInclusionProof `json:"inclusion_proof"`
	BlockNoteRoot        crypto.Digest      `json:"block_note_root"`
	NullifierBlockHeight uint32             `json:"nullifier_block_height"`
	SubmissionData       SubmissionData     `json:"submission_data"`
}

// ConsumedUnauthenticatedLocalState: the local transaction consuming an
// unauthenticated note was committed.
type ConsumedUnauthenticatedLocalState struct {
	NoteMetadata         NoteMetadata   `json:"metadata"`
	NullifierBlockHeight uint32         `json:"nullifier_block_height"`
	SubmissionData       SubmissionData `json:"submission_data"`
}

// ConsumedExternalState: the nullifier appeared on-chain without a local
// transaction consuming the note.
type ConsumedExternalState struct {
	NullifierBlockHeight uint32 `json:"nullifier_block_height"`
}

// Kind implements InputNoteState.
func (ExpectedState) Kind() NoteStateKind {
	return StateExpected
}

func (s ExpectedState) Metadata() *NoteMetadata {
	return s.NoteMetadata
}

func (ExpectedState) InclusionProof() *NoteInclusionProof {
	return nil
}

func (ExpectedState) Submission() *SubmissionData {
	return nil
}

func (ExpectedState) isInputNoteState() {}

func (UnverifiedState) Kind() NoteStateKind {
	return StateUnverified
}

func (s UnverifiedState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (s UnverifiedState) InclusionProof() *NoteInclusionProof {
	return &s.Proof
}

func (UnverifiedState) Submission() *SubmissionData {
	return nil
}

func (UnverifiedState) isInputNoteState() {}

func (CommittedState) Kind() NoteStateKind {
	return StateCommitted
}

func (s CommittedState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (s CommittedState) InclusionProof() *NoteInclusionProof {
	return &s.Proof
}

func (CommittedState) Submission() *SubmissionData {
	return nil
}

func (CommittedState) isInputNoteState() {}

func (InvalidState) Kind() NoteStateKind {
	return StateInvalid
}

func (s InvalidState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (s InvalidState) InclusionProof() *NoteInclusionProof {
	return &s.InvalidProof
}

func (InvalidState) Submission() *SubmissionData {
	return nil
}

func (InvalidState) isInputNoteState() {}

func (ProcessingAuthenticatedState) Kind() NoteStateKind {
	return StateProcessingAuthenticated
}

func (s ProcessingAuthenticatedState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (s ProcessingAuthenticatedState) InclusionProof() *NoteInclusionProof {
	return &s.Proof
}

func (s ProcessingAuthenticatedState) Submission() *SubmissionData {
	return &s.SubmissionData
}

func (ProcessingAuthenticatedState) isInputNoteState() {}

func (ProcessingUnauthenticatedState) Kind() NoteStateKind {
	return StateProcessingUnauthenticated
}

func (s ProcessingUnauthenticatedState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (ProcessingUnauthenticatedState) InclusionProof() *NoteInclusionProof {
	return nil
}

func (s ProcessingUnauthenticatedState) Submission() *SubmissionData {
	return &s.SubmissionData
}

func (ProcessingUnauthenticatedState) isInputNoteState() {}

func (ConsumedAuthenticatedLocalState) Kind() NoteStateKind {
	return StateConsumedAuthenticatedLocal
}

func (s ConsumedAuthenticatedLocalState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (s ConsumedAuthenticatedLocalState) InclusionProof() *NoteInclusionProof {
	return &s.Proof
}

func (s ConsumedAuthenticatedLocalState) Submission() *SubmissionData {
	return &s.SubmissionData
}

func (ConsumedAuthenticatedLocalState) isInputNoteState() {}

func (ConsumedUnauthenticatedLocalState) Kind() NoteStateKind {
	return StateConsumedUnauthenticatedLocal
}

func (s ConsumedUnauthenticatedLocalState) Metadata() *NoteMetadata {
	return &s.NoteMetadata
}

func (ConsumedUnauthenticatedLocalState) InclusionProof() *NoteInclusionProof {
	return nil
}

func (s ConsumedUnauthenticatedLocalState) Submission() *SubmissionData {
	return &s.SubmissionData
}

func (ConsumedUnauthenticatedLocalState) isInputNoteState() {}

func (ConsumedExternalState) Kind() NoteStateKind {
	return StateConsumedExternal
}

func (ConsumedExternalState) Metadata() *NoteMetadata {
	return nil
}

func (ConsumedExternalState) InclusionProof() *NoteInclusionProof {
	return nil
}

func (ConsumedExternalState) Submission() *SubmissionData {
	return nil
}

func (ConsumedExternalState) isInputNoteState() {}

// EncodeNoteState serialises a state for storage. The kind is stored next to
// the payload by the caller.
func EncodeNoteState(s InputNoteState) ([]byte, error) {
	return json.Marshal(s)
}

// DecodeNoteState restores a state written by EncodeNoteState.
func DecodeNoteState(kind NoteStateKind, data []byte) (InputNoteState, error) {
	var (
		s   InputNoteState
		err error
	)

	switch kind {
	case StateExpected:
		s, err = decodeState[ExpectedState](data)
	case StateUnverified:
		s, err = decodeState[UnverifiedState](data)
	case StateCommitted:
		s, err = decodeState[CommittedState](data)
	case StateInvalid:
		s, err = decodeState[InvalidState](data)
	case StateProcessingAuthenticated:
		s, err = decodeState[ProcessingAuthenticatedState](data)
	case StateProcessingUnauthenticated:
		s, err = decodeState[ProcessingUnauthenticatedState](data)
	case StateConsumedAuthenticatedLocal:
		s, err = decodeState[ConsumedAuthenticatedLocalState](data)
	case StateConsumedUnauthenticatedLocal:
		s, err = decodeState[ConsumedUnauthenticatedLocalState](data)
	case StateConsumedExternal:
		s, err = decodeState[ConsumedExternalState](data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownNoteState, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s note state: %w", kind, err)
	}
	return s, nil
}

func decodeState[T InputNoteState](data []byte) (InputNoteState, error) {
	var s T
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}
