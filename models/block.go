package models

import (
	"encoding/binary"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// BlockHeader is the part of a block the light client keeps. Headers are
// immutable: a header received twice for the same number must be identical.
type BlockHeader struct {
	Version   uint32 `json:"version"`
	BlockNum  uint32 `json:"block_num"`
	Timestamp uint32 `json:"timestamp"`

	// PrevHash is the hash of the previous block header.
	PrevHash crypto.Digest `json:"prev_hash"`

	// ChainRoot commits to the MMR peaks over all blocks before this one.
	ChainRoot crypto.Digest `json:"chain_root"`

	AccountRoot   crypto.Digest `json:"account_root"`
	NullifierRoot crypto.Digest `json:"nullifier_root"`

	// NoteRoot is the root of the block note tree. Inclusion proofs of notes
	// created in this block are verified against it.
	NoteRoot crypto.Digest `json:"note_root"`

	TxHash crypto.Digest `json:"tx_hash"`
}

// Hash returns the header commitment: the leaf this block occupies in the
// chain MMR.
func (h BlockHeader) Hash() crypto.Digest {
	var nums [12]byte
	binary.LittleEndian.PutUint32(nums[0:], h.Version)
	binary.LittleEndian.PutUint32(nums[4:], h.BlockNum)
	binary.LittleEndian.PutUint32(nums[8:], h.Timestamp)

	return crypto.Hash(
		nums[:],
		h.PrevHash[:],
		h.ChainRoot[:],
		h.AccountRoot[:],
		h.NullifierRoot[:],
		h.NoteRoot[:],
		h.TxHash[:],
	)
}

// StoredBlockHeader is a header together with the flag telling whether the
// block holds notes relevant to the client. The flag decides whether the
// block's MMR path is retained.
type StoredBlockHeader struct {
	Header         BlockHeader `json:"header"`
	HasClientNotes bool        `json:"has_client_notes"`
}
