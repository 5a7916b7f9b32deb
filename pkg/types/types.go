// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types contains the fixed width hash and signature values
// shared by the merkle and proof packages, together with the
// Keccak-256 hasher they are computed with.
package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	HashSize = 32
	H520Size = 65
)

var (
	ErrInvalidLength = errors.New("invalid length")
)

// H256 is a 32 byte digest. Equality and ordering are byte-wise.
type H256 [HashSize]byte

// H520 is a 65 byte value, usually a secp256k1 signature in r|s|v form.
type H520 [H520Size]byte

// ZeroH256 is the digest with all bytes set to zero.
var ZeroH256 = H256{}

// BytesToH256 copies b into a H256. The length of b must be exactly HashSize.
func BytesToH256(b []byte) (h H256, err error) {
	if len(b) != HashSize {
		return h, fmt.Errorf("h256: got %d bytes: %w", len(b), ErrInvalidLength)
	}
	copy(h[:], b)
	return h, nil
}

// ParseHexH256 returns a H256 from a hex-encoded string representation.
// The 0x prefix is optional.
func ParseHexH256(s string) (h H256, err error) {
	b, err := DecodeHex(s)
	if err != nil {
		return h, err
	}
	return BytesToH256(b)
}

// MustParseHexH256 returns a H256 from a hex-encoded string
// representation, and panics if there is a parse error.
func MustParseHexH256(s string) H256 {
	h, err := ParseHexH256(s)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the lowercase hex-encoded representation without prefix.
func (h H256) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the digest bytes.
func (h H256) Bytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// Equal returns true if two digests are identical.
func (h H256) Equal(o H256) bool {
	return h == o
}

// Cmp compares two digests byte-wise, returning -1, 0 or 1.
func (h H256) Cmp(o H256) int {
	return bytes.Compare(h[:], o[:])
}

// Less reports whether h sorts before o.
func (h H256) Less(o H256) bool {
	return h.Cmp(o) < 0
}

// IsZero returns true if all bytes are zero.
func (h H256) IsZero() bool {
	return h == ZeroH256
}

// MarshalJSON returns JSON-encoded representation of H256.
func (h H256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON sets H256 to a value from JSON-encoded representation.
func (h *H256) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*h, err = ParseHexH256(s)
	return err
}

// BytesToH520 copies b into a H520. The length of b must be exactly H520Size.
func BytesToH520(b []byte) (h H520, err error) {
	if len(b) != H520Size {
		return h, fmt.Errorf("h520: got %d bytes: %w", len(b), ErrInvalidLength)
	}
	copy(h[:], b)
	return h, nil
}

// ParseHexH520 returns a H520 from a hex-encoded string representation.
// The 0x prefix is optional.
func ParseHexH520(s string) (h H520, err error) {
	b, err := DecodeHex(s)
	if err != nil {
		return h, err
	}
	return BytesToH520(b)
}

// String returns the lowercase hex-encoded representation, always
// 130 characters long.
func (h H520) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the value bytes.
func (h H520) Bytes() []byte {
	b := make([]byte, H520Size)
	copy(b, h[:])
	return b
}

// Equal returns true if two values are identical.
func (h H520) Equal(o H520) bool {
	return h == o
}

// Cmp compares two values byte-wise, returning -1, 0 or 1.
func (h H520) Cmp(o H520) int {
	return bytes.Compare(h[:], o[:])
}

// IsZero returns true if all bytes are zero.
func (h H520) IsZero() bool {
	return h == H520{}
}

// MarshalJSON returns JSON-encoded representation of H520.
func (h H520) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON sets H520 to a value from JSON-encoded representation.
func (h *H520) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*h, err = ParseHexH520(s)
	return err
}

// DecodeHex decodes a hex string with or without the 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}
