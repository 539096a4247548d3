package models

import (
	"encoding/binary"
	"fmt"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// BlockNoteTreeDepth is the depth of the per-block note tree.
const BlockNoteTreeDepth = 16

// MaxNotesPerBlock bounds the note index inside a block.
const MaxNotesPerBlock = 1 << BlockNoteTreeDepth

// NoteType tells how much of a note the node stores.
type NoteType uint8

const (
	NoteTypePublic NoteType = iota + 1
	NoteTypePrivate
	NoteTypeEncrypted
)

func (t NoteType) String() string {
	switch t {
	case NoteTypePublic:
		return "public"
	case NoteTypePrivate:
		return "private"
	case NoteTypeEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

// NoteMetadata is published next to the note commitment.
type NoteMetadata struct {
	Sender   AccountID `json:"sender"`
	NoteType NoteType  `json:"note_type"`
	Tag      NoteTag   `json:"tag"`
	Aux      uint64    `json:"aux"`
}

// Hash returns the metadata commitment.
func (m NoteMetadata) Hash() crypto.Digest {
	return crypto.HashElements(uint64(m.Sender), uint64(m.NoteType), uint64(m.Tag), m.Aux)
}

// Asset is a fungible amount issued by Faucet. Non-fungible assets carry
// their data commitment and an Amount of zero.
type Asset struct {
	Faucet AccountID      `json:"faucet"`
	Amount uint64         `json:"amount"`
	Data   *crypto.Digest `json:"data,omitempty"`
}

// IsFungible reports whether the asset is a plain amount.
func (a Asset) IsFungible() bool {
	return a.Data == nil
}

func (a Asset) hash() crypto.Digest {
	if a.Data != nil {
		return crypto.Merge(crypto.HashElements(uint64(a.Faucet)), *a.Data)
	}
	return crypto.HashElements(uint64(a.Faucet), a.Amount)
}

// NoteAssets are the assets carried by a note.
type NoteAssets []Asset

// Commitment hashes the assets in order.
func (n NoteAssets) Commitment() crypto.Digest {
	parts := make([][]byte, 0, len(n))
	for _, a := range n {
		h := a.hash()
		parts = append(parts, h[:])
	}
	return crypto.Hash(parts...)
}

// NoteScript identifies the program that guards a note by its MAST root.
type NoteScript struct {
	Root crypto.Digest `json:"root"`
}

// NoteRecipient is everything needed to consume a note besides the assets.
type NoteRecipient struct {
	SerialNum [4]uint64  `json:"serial_num"`
	Script    NoteScript `json:"script"`
	Inputs    []uint64   `json:"inputs"`
}

func (r NoteRecipient) serialHash() crypto.Digest {
	return crypto.HashElements(r.SerialNum[:]...)
}

// InputsHash commits to the note inputs.
func (r NoteRecipient) InputsHash() crypto.Digest {
	return crypto.HashElements(r.Inputs...)
}

// Digest returns the recipient commitment.
func (r NoteRecipient) Digest() crypto.Digest {
	return crypto.Merge(crypto.Merge(r.serialHash(), r.Script.Root), r.InputsHash())
}

// NoteDetails is a note without metadata: enough to compute its id and
// nullifier, not enough to prove inclusion.
type NoteDetails struct {
	Assets    NoteAssets    `json:"assets"`
	Recipient NoteRecipient `json:"recipient"`
}

// ID returns the note id.
func (d NoteDetails) ID() NoteID {
	return crypto.Merge(d.Recipient.Digest(), d.Assets.Commitment())
}

// Nullifier returns the value published when the note is consumed.
func (d NoteDetails) Nullifier() Nullifier {
	return crypto.Hash(
		encodeSerial(d.Recipient.SerialNum),
		d.Recipient.Script.Root[:],
		bytesOf(d.Recipient.InputsHash()),
		bytesOf(d.Assets.Commitment()),
	)
}

// Note is a full note.
type Note struct {
	NoteDetails
	Metadata NoteMetadata `json:"metadata"`
}

// NoteCommitment returns the leaf a note occupies in its block note tree.
func NoteCommitment(id NoteID, metadata NoteMetadata) crypto.Digest {
	return crypto.Merge(id, metadata.Hash())
}

// Commitment returns the note tree leaf of the note.
func (n Note) Commitment() crypto.Digest {
	return NoteCommitment(n.ID(), n.Metadata)
}

// NoteInclusionProof places a note commitment in a block note tree.
type NoteInclusionProof struct {
	BlockNum  uint32            `json:"block_num"`
	NoteIndex uint16            `json:"note_index"`
	Path      crypto.MerklePath `json:"path"`
}

// NewNoteInclusionProof validates the path depth.
func NewNoteInclusionProof(blockNum uint32, index uint16, path crypto.MerklePath) (NoteInclusionProof, error) {
	if path.Depth() != BlockNoteTreeDepth {
		return NoteInclusionProof{}, fmt.Errorf("%w: path depth %d, want %d",
			ErrInvalidInclusionProof, path.Depth(), BlockNoteTreeDepth)
	}
	return NoteInclusionProof{BlockNum: blockNum, NoteIndex: index, Path: path.Clone()}, nil
}

// Verify checks that the note (id, metadata) is at the proof's index under
// noteRoot.
func (p NoteInclusionProof) Verify(id NoteID, metadata NoteMetadata, noteRoot crypto.Digest) bool {
	return p.Path.Verify(uint64(p.NoteIndex), NoteCommitment(id, metadata), noteRoot)
}

// Equal compares two proofs field by field.
func (p NoteInclusionProof) Equal(o NoteInclusionProof) bool {
	if p.BlockNum != o.BlockNum || p.NoteIndex != o.NoteIndex || len(p.Path) != len(o.Path) {
		return false
	}
	for i := range p.Path {
		if p.Path[i] != o.Path[i] {
			return false
		}
	}
	return true
}

func encodeSerial(s [4]uint64) []byte {
	b := make([]byte, 32)
	for i, v := range s {
		binary.LittleEndian.PutUint64(b[i*8:], v)
	}
	return b
}

func bytesOf(d crypto.Digest) []byte {
	return d[:]
}
