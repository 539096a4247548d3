// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the hashing primitives the light client uses to
// authenticate chain data: a fixed-size [Digest], the BLAKE2b-256 based
// [Hash] and [Merge] functions, Merkle path verification and a fixed-depth
// sparse Merkle tree.
//
// The package knows nothing about notes, accounts or the network. It only
// turns bytes into digests and checks that digests fit together.
package crypto

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the size of a [Digest] in bytes.
const DigestSize = blake2b.Size256

// ErrInvalidDigest is returned when a hex string or a database value cannot
// be decoded into a [Digest].
var ErrInvalidDigest = errors.New("invalid digest")

// Digest is a 256-bit hash value. The zero value is the digest of nothing
// and is used as the empty leaf of sparse trees.
type Digest [DigestSize]byte

// hasherPool keeps reusable BLAKE2b-256 instances so that hashing on the hot
// path (MMR merges, note commitments) does not allocate a new state each time.
var hasherPool = sync.Pool{
	New: func() any {
		h, err := blake2b.New256(nil)
		if err != nil {
			// only fails for keys longer than 64 bytes
			panic(err)
		}
		return h
	},
}

// Hash returns the BLAKE2b-256 digest of the concatenation of parts.
func Hash(parts ...[]byte) Digest {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	for _, p := range parts {
		h.Write(p)
	}

	var d Digest
	h.Sum(d[:0])

	h.Reset()
	hasherPool.Put(h)

	return d
}

// Merge hashes two digests into their parent digest. The order matters:
// Merge(a, b) != Merge(b, a).
func Merge(left, right Digest) Digest {
	return Hash(left[:], right[:])
}

// HashElements hashes a list of 64-bit elements (little endian).
func HashElements(elements ...uint64) Digest {
	buf := make([]byte, 8*len(elements))
	for i, e := range elements {
		binary.LittleEndian.PutUint64(buf[i*8:], e)
	}
	return Hash(buf)
}

// ParseDigest decodes a hex string (with or without 0x prefix) into a Digest.
func ParseDigest(s string) (Digest, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	var d Digest
	raw, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	if len(raw) != DigestSize {
		return d, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDigest, DigestSize, len(raw))
	}

	copy(d[:], raw)
	return d, nil
}

// MustParseDigest is like ParseDigest but panics on malformed input. Only
// meant for constants and tests.
func MustParseDigest(s string) Digest {
	d, err := ParseDigest(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the 0x-prefixed hex encoding.
func (d Digest) String() string {
	return "0x" + hex.EncodeToString(d[:])
}

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestSize)
	copy(b, d[:])
	return b
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the digest as a hex string.
func (d Digest) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a hex string digest.
func (d *Digest) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	return d.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer. Digests are stored as raw bytes.
func (d Digest) Value() (driver.Value, error) {
	return d[:], nil
}

// Scan implements sql.Scanner.
func (d *Digest) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		if len(v) != DigestSize {
			return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidDigest, DigestSize, len(v))
		}
		copy(d[:], v)
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case nil:
		*d = Digest{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDigest, src)
	}
}
