package models

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-light-client/internal/crypto"
)

// NoteID identifies a note: the hash of its recipient digest and its assets.
type NoteID = crypto.Digest

// Nullifier is published on-chain when a note is consumed.
type Nullifier = crypto.Digest

// TransactionID identifies an executed transaction.
type TransactionID = crypto.Digest

// NullifierPrefix returns the 16-bit prefix sent to the node instead of the
// full nullifier.
func NullifierPrefix(n Nullifier) uint16 {
	return binary.BigEndian.Uint16(n[:2])
}

// NullifierPrefixes compresses nullifiers into their distinct prefixes,
// keeping the order of first occurrence.
func NullifierPrefixes(nullifiers []Nullifier) []uint16 {
	seen := make(map[uint16]struct{}, len(nullifiers))
	out := make([]uint16, 0, len(nullifiers))
	for _, n := range nullifiers {
		p := NullifierPrefix(n)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// AccountStorageMode tells whether the node stores the full account state.
type AccountStorageMode uint8

const (
	// AccountStoragePublic accounts have their full state published on-chain.
	AccountStoragePublic AccountStorageMode = 0b00
	// AccountStoragePrivate accounts only have their hash published.
	AccountStoragePrivate AccountStorageMode = 0b10
)

func (m AccountStorageMode) String() string {
	switch m {
	case AccountStoragePublic:
		return "public"
	case AccountStoragePrivate:
		return "private"
	default:
		return "unknown"
	}
}

// AccountType is encoded in bits 60-61 of an AccountID.
type AccountType uint8

const (
	AccountTypeRegularImmutableCode AccountType = 0b00
	AccountTypeRegularUpdatableCode AccountType = 0b01
	AccountTypeFungibleFaucet       AccountType = 0b10
	AccountTypeNonFungibleFaucet    AccountType = 0b11
)

const (
	accountStorageShift = 62
	accountTypeShift    = 60
	accountSeqMask      = uint64(1)<<accountTypeShift - 1
)

// ErrInvalidAccountID is returned when parsing a malformed account id.
var ErrInvalidAccountID = errors.New("invalid account id")

// AccountID identifies an account. The two most significant bits carry the
// storage mode, the next two the account type.
type AccountID uint64

// NewAccountID assembles an id from its parts. Bits of seq above bit 59 are
// dropped.
func NewAccountID(seq uint64, typ AccountType, mode AccountStorageMode) AccountID {
	return AccountID(uint64(mode)<<accountStorageShift |
		uint64(typ)<<accountTypeShift |
		seq&accountSeqMask)
}

// StorageMode returns the storage mode encoded in the id.
func (id AccountID) StorageMode() AccountStorageMode {
	return AccountStorageMode(uint64(id) >> accountStorageShift)
}

// Type returns the account type encoded in the id.
func (id AccountID) Type() AccountType {
	return AccountType(uint64(id) >> accountTypeShift & 0b11)
}

func (id AccountID) IsPublic() bool {
	return id.StorageMode() == AccountStoragePublic
}

func (id AccountID) IsPrivate() bool {
	return id.StorageMode() == AccountStoragePrivate
}

// IsFaucet reports whether the account can issue assets.
func (id AccountID) IsFaucet() bool {
	t := id.Type()
	return t == AccountTypeFungibleFaucet || t == AccountTypeNonFungibleFaucet
}

// String returns the 0x-prefixed 16 digit hex form.
func (id AccountID) String() string {
	return fmt.Sprintf("0x%016x", uint64(id))
}

// ParseAccountID parses the hex form produced by String.
func ParseAccountID(s string) (AccountID, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidAccountID, s, err)
	}
	return AccountID(v), nil
}

func (id AccountID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AccountID) UnmarshalText(text []byte) error {
	parsed, err := ParseAccountID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value stores the id as a signed 64-bit integer: drivers reject uint64 values
// with the high bit set.
func (id AccountID) Value() (driver.Value, error) {
	return int64(id), nil
}

// Scan implements sql.Scanner.
func (id *AccountID) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*id = AccountID(v)
		return nil
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAccountID, src)
	}
}

// NoteTag is a coarse filter the node matches notes against.
type NoteTag uint32

// NoteTagForAccount derives the tag used for notes addressed to id: the 14
// most significant bits after the storage mode.
func NoteTagForAccount(id AccountID) NoteTag {
	return NoteTag((uint64(id) << 2) >> 50)
}

func (t NoteTag) String() string {
	return fmt.Sprintf("0x%08x", uint32(t))
}
