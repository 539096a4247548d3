package models

import (
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// Roots of the well-known note scripts.
var (
	// P2IDScriptRoot pays the assets to the account in input 0.
	P2IDScriptRoot = crypto.Hash([]byte("note-script:p2id"))
	// P2IDRScriptRoot pays to the account in input 0 or, from the block
	// height in input 1 on, back to the sender.
	P2IDRScriptRoot = crypto.Hash([]byte("note-script:p2idr"))
	// SWAPScriptRoot gives the assets to whoever pays the asset described by
	// inputs 0 (faucet) and 1 (amount) back to the sender.
	SWAPScriptRoot = crypto.Hash([]byte("note-script:swap"))
)

// WellKnownScript names the script guarding a note.
type WellKnownScript uint8

const (
	ScriptUnknown WellKnownScript = iota
	ScriptP2ID
	ScriptP2IDR
	ScriptSWAP
)

func (s WellKnownScript) String() string {
	switch s {
	case ScriptP2ID:
		return "P2ID"
	case ScriptP2IDR:
		return "P2IDR"
	case ScriptSWAP:
		return "SWAP"
	default:
		return "unknown"
	}
}

// ScriptOf classifies a script root.
func ScriptOf(root crypto.Digest) WellKnownScript {
	switch root {
	case P2IDScriptRoot:
		return ScriptP2ID
	case P2IDRScriptRoot:
		return ScriptP2IDR
	case SWAPScriptRoot:
		return ScriptSWAP
	default:
		return ScriptUnknown
	}
}

// NewP2IDNote builds a public pay-to-id note from sender to target tagged
// for target.
func NewP2IDNote(sender, target AccountID, assets NoteAssets, serial [4]uint64) Note {
	return Note{
		NoteDetails: NoteDetails{
			Assets: assets,
			Recipient: NoteRecipient{
				SerialNum: serial,
				Script:    NoteScript{Root: P2IDScriptRoot},
				Inputs:    []uint64{uint64(target)},
			},
		},
		Metadata: NoteMetadata{Sender: sender, NoteType: NoteTypePublic, Tag: NoteTagForAccount(target)},
	}
}

// NewP2IDRNote is [NewP2IDNote] with a recall height after which the
// sender may take the assets back.
func NewP2IDRNote(sender, target AccountID, assets NoteAssets, serial [4]uint64, recallHeight uint32) Note {
	n := NewP2IDNote(sender, target, assets, serial)
	n.Recipient.Script.Root = P2IDRScriptRoot
	n.Recipient.Inputs = append(n.Recipient.Inputs, uint64(recallHeight))
	return n
}

// NewSWAPNote offers assets to anyone paying requested back to sender.
func NewSWAPNote(sender AccountID, offered NoteAssets, requested Asset, serial [4]uint64, tag NoteTag) Note {
	return Note{
		NoteDetails: NoteDetails{
			Assets: offered,
			Recipient: NoteRecipient{
				SerialNum: serial,
				Script:    NoteScript{Root: SWAPScriptRoot},
				Inputs:    []uint64{uint64(requested.Faucet), requested.Amount},
			},
		},
		Metadata: NoteMetadata{Sender: sender, NoteType: NoteTypePublic, Tag: tag},
	}
}

// P2IDTarget returns the payee of a P2ID or P2IDR note.
func (r NoteRecipient) P2IDTarget() (AccountID, error) {
	if len(r.Inputs) < 1 {
		return 0, fmt.Errorf("%w: pay-to-id note without target", ErrInvalidNoteInputs)
	}
	return AccountID(r.Inputs[0]), nil
}

// P2IDRRecallHeight returns the block height from which the sender may
// reclaim a P2IDR note.
func (r NoteRecipient) P2IDRRecallHeight() (uint32, error) {
	if len(r.Inputs) < 2 {
		return 0, fmt.Errorf("%w: P2IDR note without recall height", ErrInvalidNoteInputs)
	}
	return uint32(r.Inputs[1]), nil
}

// SWAPRequestedAsset returns the fungible asset a SWAP note asks for.
func (r NoteRecipient) SWAPRequestedAsset() (Asset, error) {
	if len(r.Inputs) < 2 {
		return Asset{}, fmt.Errorf("%w: SWAP note without requested asset", ErrInvalidNoteInputs)
	}
	return Asset{Faucet: AccountID(r.Inputs[0]), Amount: r.Inputs[1]}, nil
}

// NoteRelevanceKind tells when an account can consume a note.
type NoteRelevanceKind uint8

const (
	// RelevanceAlways: the account can consume the note right away.
	RelevanceAlways NoteRelevanceKind = iota + 1
	// RelevanceAfter: the account can consume the note from AfterBlock on.
	RelevanceAfter
)

// NoteRelevance is the answer of the note screener for one account.
type NoteRelevance struct {
	Kind       NoteRelevanceKind `json:"kind"`
	AfterBlock uint32            `json:"after_block,omitempty"`
}

// NoteConsumability pairs an account with its relevance for a note.
type NoteConsumability struct {
	AccountID AccountID     `json:"account_id"`
	Relevance NoteRelevance `json:"relevance"`
}
