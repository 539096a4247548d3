package models

import "errors"

// The functions below implement the input note state machine. Each returns
// the next state, nil when the event is valid but changes nothing, or an
// error when the event is not allowed in the current state.
//
// A failed inclusion proof is not an error: the note moves to InvalidState.

// InclusionProofReceived handles a new inclusion proof for the note.
func InclusionProofReceived(s InputNoteState, proof NoteInclusionProof, metadata NoteMetadata) (InputNoteState, error) {
	switch st := s.(type) {
	case ExpectedState:
		return UnverifiedState{NoteMetadata: metadata, Proof: proof}, nil
	case UnverifiedState:
		if st.NoteMetadata == metadata && st.Proof.Equal(proof) {
			return nil, nil
		}
		return UnverifiedState{NoteMetadata: metadata, Proof: proof}, nil
	case CommittedState:
		return nil, sameProof(st, st.NoteMetadata, st.Proof, proof, metadata)
	case InvalidState:
		return UnverifiedState{NoteMetadata: metadata, Proof: proof}, nil
	case ProcessingAuthenticatedState:
		return nil, sameProof(st, st.NoteMetadata, st.Proof, proof, metadata)
	case ProcessingUnauthenticatedState,
		ConsumedAuthenticatedLocalState,
		ConsumedUnauthenticatedLocalState,
		ConsumedExternalState:
		return nil, nil
	}
	return nil, unknownState(s, EventInclusionProofReceived)
}

// ConsumedExternally handles the note nullifier appearing on-chain at
// nullifierBlock without a local transaction being committed for it.
func ConsumedExternally(s InputNoteState, nullifierBlock uint32) (InputNoteState, error) {
	switch s.(type) {
	case ExpectedState,
		UnverifiedState,
		CommittedState,
		InvalidState,
		ProcessingAuthenticatedState,
		ProcessingUnauthenticatedState:
		return ConsumedExternalState{NullifierBlockHeight: nullifierBlock}, nil
	case ConsumedAuthenticatedLocalState,
		ConsumedUnauthenticatedLocalState,
		ConsumedExternalState:
		return nil, nil
	}
	return nil, unknownState(s, EventConsumedExternally)
}

// BlockHeaderReceived verifies a held inclusion proof against header. Headers
// of other blocks than the proof's are ignored.
func BlockHeaderReceived(s InputNoteState, id NoteID, header BlockHeader) (InputNoteState, error) {
	switch st := s.(type) {
	case ExpectedState:
		return nil, stateErr(s, EventBlockHeaderReceived, ErrUnverifiableNote)
	case UnverifiedState:
		if header.BlockNum != st.Proof.BlockNum {
			return nil, nil
		}
		if st.Proof.Verify(id, st.NoteMetadata, header.NoteRoot) {
			return CommittedState{
				NoteMetadata:  st.NoteMetadata,
				Proof:         st.Proof,
				BlockNoteRoot: header.NoteRoot,
			}, nil
		}
		return InvalidState{
			NoteMetadata:  st.NoteMetadata,
			InvalidProof:  st.Proof,
			BlockNoteRoot: header.NoteRoot,
		}, nil
	case CommittedState:
		if header.BlockNum != st.Proof.BlockNum || header.NoteRoot == st.BlockNoteRoot {
			return nil, nil
		}
		return nil, stateErr(s, EventBlockHeaderReceived, ErrInclusionProofMismatch)
	case InvalidState:
		if header.BlockNum != st.InvalidProof.BlockNum {
			return nil, nil
		}
		if st.InvalidProof.Verify(id, st.NoteMetadata, header.NoteRoot) {
			return CommittedState{
				NoteMetadata:  st.NoteMetadata,
				Proof:         st.InvalidProof,
				BlockNoteRoot: header.NoteRoot,
			}, nil
		}
		return nil, nil
	case ProcessingAuthenticatedState,
		ProcessingUnauthenticatedState,
		ConsumedAuthenticatedLocalState,
		ConsumedUnauthenticatedLocalState,
		ConsumedExternalState:
		return nil, nil
	}
	return nil, unknownState(s, EventBlockHeaderReceived)
}

// ConsumedLocally marks the note as being consumed by a local transaction.
func ConsumedLocally(s InputNoteState, submission SubmissionData) (InputNoteState, error) {
	switch st := s.(type) {
	case ExpectedState:
		if st.NoteMetadata == nil {
			return nil, stateErr(s, EventConsumedLocally, ErrNoteNotConsumable)
		}
		return ProcessingUnauthenticatedState{
			NoteMetadata:   *st.NoteMetadata,
			AfterBlockNum:  st.AfterBlockNum,
			SubmissionData: submission,
		}, nil
	case UnverifiedState:
		after := st.Proof.BlockNum
		if after > 0 {
			after--
		}
		return ProcessingUnauthenticatedState{
			NoteMetadata:   st.NoteMetadata,
			AfterBlockNum:  after,
			SubmissionData: submission,
		}, nil
	case CommittedState:
		return ProcessingAuthenticatedState{
			NoteMetadata:   st.NoteMetadata,
			Proof:          st.Proof,
			BlockNoteRoot:  st.BlockNoteRoot,
			SubmissionData: submission,
		}, nil
	case InvalidState:
		return nil, stateErr(s, EventConsumedLocally, ErrNoteNotConsumable)
	case ProcessingAuthenticatedState, ProcessingUnauthenticatedState:
		return nil, stateErr(s, EventConsumedLocally, ErrNoteAlreadyProcessing)
	case ConsumedAuthenticatedLocalState,
		ConsumedUnauthenticatedLocalState,
		ConsumedExternalState:
		return nil, stateErr(s, EventConsumedLocally, ErrNoteAlreadyConsumed)
	}
	return nil, unknownState(s, EventConsumedLocally)
}

// TransactionCommitted handles the commitment of the local transaction
// consuming the note.
func TransactionCommitted(s InputNoteState, txID TransactionID, block uint32) (InputNoteState, error) {
	switch st := s.(type) {
	case ProcessingAuthenticatedState:
		if st.SubmissionData.ConsumerTransaction != txID {
			return nil, stateErr(s, EventTransactionCommitted, ErrTransactionMismatch)
		}
		return ConsumedAuthenticatedLocalState{
			NoteMetadata:         st.NoteMetadata,
			Proof:                st.Proof,
			BlockNoteRoot:        st.BlockNoteRoot,
			NullifierBlockHeight: block,
			SubmissionData:       st.SubmissionData,
		}, nil
	case ProcessingUnauthenticatedState:
		if st.SubmissionData.ConsumerTransaction != txID {
			return nil, stateErr(s, EventTransactionCommitted, ErrTransactionMismatch)
		}
		return ConsumedUnauthenticatedLocalState{
			NoteMetadata:         st.NoteMetadata,
			NullifierBlockHeight: block,
			SubmissionData:       st.SubmissionData,
		}, nil
	case ExpectedState,
		UnverifiedState,
		CommittedState,
		InvalidState,
		ConsumedAuthenticatedLocalState,
		ConsumedUnauthenticatedLocalState,
		ConsumedExternalState:
		return nil, stateErr(s, EventTransactionCommitted, ErrInvalidTransition)
	}
	return nil, unknownState(s, EventTransactionCommitted)
}

func sameProof(s InputNoteState, held NoteMetadata, heldProof, proof NoteInclusionProof, metadata NoteMetadata) error {
	if held == metadata && heldProof.Equal(proof) {
		return nil
	}
	return stateErr(s, EventInclusionProofReceived, ErrInclusionProofMismatch)
}

// unknownState covers a nil state; every concrete state is handled above.
func unknownState(s InputNoteState, ev NoteEvent) error {
	if s == nil {
		return &NoteStateError{Event: ev, Err: errors.New("nil note state")}
	}
	return stateErr(s, ev, ErrInvalidTransition)
}
