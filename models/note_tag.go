package models

import "fmt"

// NoteTagSourceKind tells why a tag subscription exists.
type NoteTagSourceKind uint8

const (
	// TagSourceUser tags were added explicitly and are never removed by sync.
	TagSourceUser NoteTagSourceKind = iota + 1
	// TagSourceAccount tags follow a tracked account.
	TagSourceAccount
	// TagSourceNote tags wait for one specific note and are removed once the
	// note is committed or consumed.
	TagSourceNote
)

func (k NoteTagSourceKind) String() string {
	switch k {
	case TagSourceUser:
		return "user"
	case TagSourceAccount:
		return "account"
	case TagSourceNote:
		return "note"
	default:
		return fmt.Sprintf("tag_source(%d)", uint8(k))
	}
}

// NoteTagSource identifies the owner of a tag subscription. AccountID is set
// for TagSourceAccount, NoteID for TagSourceNote.
type NoteTagSource struct {
	Kind      NoteTagSourceKind `json:"kind"`
	AccountID AccountID         `json:"account_id,omitempty"`
	NoteID    NoteID            `json:"note_id,omitempty"`
}

func UserTagSource() NoteTagSource {
	return NoteTagSource{Kind: TagSourceUser}
}

func AccountTagSource(id AccountID) NoteTagSource {
	return NoteTagSource{Kind: TagSourceAccount, AccountID: id}
}

func NoteTagSourceFor(id NoteID) NoteTagSource {
	return NoteTagSource{Kind: TagSourceNote, NoteID: id}
}

// NoteTagRecord is one tag subscription. Two records with the same tag but
// different sources are distinct subscriptions.
type NoteTagRecord struct {
	Tag    NoteTag       `json:"tag"`
	Source NoteTagSource `json:"source"`
}

// UniqueTags returns the distinct tags of records in order of first
// occurrence.
func UniqueTags(records []NoteTagRecord) []NoteTag {
	seen := make(map[NoteTag]struct{}, len(records))
	out := make([]NoteTag, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Tag]; ok {
			continue
		}
		seen[r.Tag] = struct{}{}
		out = append(out, r.Tag)
	}
	return out
}
