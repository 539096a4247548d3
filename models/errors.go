package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when an event cannot be applied to a
	// note in its current state.
	ErrInvalidTransition = errors.New("invalid note state transition")

	// ErrNoteNotConsumable is returned when a local transaction tries to
	// consume a note that cannot be consumed (no metadata, invalid proof).
	ErrNoteNotConsumable = errors.New("note is not consumable")

	// ErrNoteAlreadyProcessing is returned when a note is consumed locally
	// while another local transaction is already consuming it.
	ErrNoteAlreadyProcessing = errors.New("note is already being processed")

	// ErrNoteAlreadyConsumed is returned when consuming a consumed note.
	ErrNoteAlreadyConsumed = errors.New("note is already consumed")

	// ErrInclusionProofMismatch is returned when an authenticated note
	// receives a proof or a note root that differs from the one it holds.
	ErrInclusionProofMismatch = errors.New("inclusion proof mismatch")

	// ErrTransactionMismatch is returned when a committed transaction is not
	// the one recorded as the note consumer.
	ErrTransactionMismatch = errors.New("consumer transaction mismatch")

	// ErrUnverifiableNote is returned when a block header arrives for a note
	// that has no inclusion proof to verify.
	ErrUnverifiableNote = errors.New("note has no inclusion proof to verify")

	// ErrNullifierMismatch is returned when a nullifier update is applied to a
	// note with a different nullifier.
	ErrNullifierMismatch = errors.New("nullifier mismatch")

	// ErrInvalidInclusionProof is returned for structurally malformed proofs.
	ErrInvalidInclusionProof = errors.New("invalid inclusion proof")

	// ErrUnknownNoteState is returned when decoding an unknown state tag.
	ErrUnknownNoteState = errors.New("unknown note state")

	// ErrInvalidNoteInputs is returned when a well-known note script is
	// missing one of its inputs.
	ErrInvalidNoteInputs = errors.New("invalid note inputs")
)

// NoteStateError reports an event rejected by the note state machine.
type NoteStateError struct {
	State NoteStateKind
	Event NoteEvent
	Err   error
}

func (e *NoteStateError) Error() string {
	return fmt.Sprintf("note in state %s cannot handle %s: %v", e.State, e.Event, e.Err)
}

func (e *NoteStateError) Unwrap() error {
	return e.Err
}

func stateErr(s InputNoteState, ev NoteEvent, err error) error {
	return &NoteStateError{State: s.Kind(), Event: ev, Err: err}
}
