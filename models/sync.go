package models

import (
	"github.com/MKhiriev/go-light-client/internal/crypto"
	"github.com/MKhiriev/go-light-client/internal/mmr"
)

// CommittedNote is a note inclusion reported by the node.
type CommittedNote struct {
	NoteID    NoteID            `json:"note_id"`
	NoteIndex uint16            `json:"note_index"`
	Path      crypto.MerklePath `json:"merkle_path"`
	Metadata  NoteMetadata      `json:"metadata"`
}

// InclusionProof builds the proof of the note in block blockNum.
func (c CommittedNote) InclusionProof(blockNum uint32) (NoteInclusionProof, error) {
	return NewNoteInclusionProof(blockNum, c.NoteIndex, c.Path)
}

// NullifierUpdate is a nullifier published in block BlockNum.
type NullifierUpdate struct {
	Nullifier Nullifier `json:"nullifier"`
	BlockNum  uint32    `json:"block_num"`
}

// SyncStateRequest asks the node for the next relevant block after BlockNum.
type SyncStateRequest struct {
	BlockNum          uint32      `json:"block_num"`
	AccountIDs        []AccountID `json:"account_ids"`
	NoteTags          []NoteTag   `json:"note_tags"`
	NullifierPrefixes []uint16    `json:"nullifier_prefixes"`
}

// SyncStateResponse is the node answer to SyncStateRequest. BlockHeader is
// the first block after the requested one with something relevant, or the
// chain tip.
type SyncStateResponse struct {
	ChainTip           uint32                 `json:"chain_tip"`
	BlockHeader        BlockHeader            `json:"block_header"`
	MmrDelta           mmr.Delta              `json:"mmr_delta"`
	AccountHashUpdates []AccountHashUpdate    `json:"account_hash_updates"`
	Transactions       []TransactionInclusion `json:"transactions"`
	NoteInclusions     []CommittedNote        `json:"note_inclusions"`
	Nullifiers         []NullifierUpdate      `json:"nullifiers"`
}

// NoteSyncResponse is the node answer to a note-only sync.
type NoteSyncResponse struct {
	ChainTip    uint32          `json:"chain_tip"`
	BlockHeader BlockHeader     `json:"block_header"`
	MmrPath     mmr.Proof       `json:"mmr_path"`
	Notes       []CommittedNote `json:"notes"`
}

// FetchedNote is a note returned by id. Note is nil for private notes, of
// which the node only knows the commitment.
type FetchedNote struct {
	NoteID         NoteID             `json:"note_id"`
	Metadata       NoteMetadata       `json:"metadata"`
	InclusionProof NoteInclusionProof `json:"inclusion_proof"`
	Note           *Note              `json:"note,omitempty"`
}

// NoteUpdates is the note part of a state sync update.
type NoteUpdates struct {
	NewInputNotes      []InputNoteRecord  `json:"new_input_notes"`
	UpdatedInputNotes  []InputNoteRecord  `json:"updated_input_notes"`
	NewOutputNotes     []OutputNoteRecord `json:"new_output_notes"`
	UpdatedOutputNotes []OutputNoteRecord `json:"updated_output_notes"`
}

// IsEmpty reports whether no note changed.
func (u NoteUpdates) IsEmpty() bool {
	return len(u.NewInputNotes) == 0 && len(u.UpdatedInputNotes) == 0 &&
		len(u.NewOutputNotes) == 0 && len(u.UpdatedOutputNotes) == 0
}

// CommittedNoteIDs returns the ids of input and output notes that are now
// committed.
func (u NoteUpdates) CommittedNoteIDs() []NoteID {
	var ids []NoteID
	for _, n := range u.UpdatedInputNotes {
		if n.IsCommitted() {
			ids = append(ids, n.ID())
		}
	}
	for _, n := range u.UpdatedOutputNotes {
		if n.State == OutputNoteCommitted {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// ConsumedNoteIDs returns the ids of input and output notes that are now
// consumed.
func (u NoteUpdates) ConsumedNoteIDs() []NoteID {
	var ids []NoteID
	for _, n := range u.UpdatedInputNotes {
		if n.IsConsumed() {
			ids = append(ids, n.ID())
		}
	}
	for _, n := range u.UpdatedOutputNotes {
		if n.IsConsumed() {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// StateSyncUpdate is the complete result of one sync step. The store applies
// it in one go; nothing else writes sync results.
type StateSyncUpdate struct {
	// BlockHeader is the synced block. Nil for updates that only carry note
	// changes (nullifier backfill).
	BlockHeader *BlockHeader `json:"block_header,omitempty"`

	// BlockHasRelevantNotes is stored with BlockHeader and decides whether the
	// block's MMR path is kept when the next step appends it.
	BlockHasRelevantNotes bool `json:"block_has_relevant_notes"`

	NoteUpdates        NoteUpdates        `json:"note_updates"`
	TransactionUpdates TransactionUpdates `json:"transaction_updates"`

	NewMmrPeaks  mmr.Peaks  `json:"new_mmr_peaks"`
	NewAuthNodes []mmr.Node `json:"new_auth_nodes"`

	AccountUpdates AccountUpdates  `json:"account_updates"`
	TagsToRemove   []NoteTagRecord `json:"tags_to_remove"`
}

// BlockNum returns the synced block number, or 0 without header.
func (u *StateSyncUpdate) BlockNum() uint32 {
	if u.BlockHeader == nil {
		return 0
	}
	return u.BlockHeader.BlockNum
}

// SyncStatusKind tells whether more steps are needed.
type SyncStatusKind uint8

const (
	// SyncedToBlock: the node returned an intermediate block; step again.
	SyncedToBlock SyncStatusKind = iota + 1
	// SyncedToLastBlock: the returned block is the chain tip.
	SyncedToLastBlock
)

func (k SyncStatusKind) String() string {
	if k == SyncedToLastBlock {
		return "synced_to_last_block"
	}
	return "synced_to_block"
}

// SyncStatus is the result of a step that made progress.
type SyncStatus struct {
	Kind   SyncStatusKind
	Update StateSyncUpdate
}

// IsLastBlock reports whether the chain tip was reached.
func (s *SyncStatus) IsLastBlock() bool {
	return s.Kind == SyncedToLastBlock
}
