// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/ethersphere/aurakit/pkg/types"
)

const (
	SignatureSize = types.H520Size

	// compactHeader is the offset of the recovery id in btcec compact
	// signatures, and compressedFlag marks compressed public keys.
	compactHeader  = 27
	compressedFlag = 4
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
)

// Signature is a recoverable secp256k1 signature laid out as r|s|v, where
// v is the recovery id.
//
// The zero value is the all-zero default signature. It is a sentinel used
// in tests and is not a valid signature on any message.
type Signature [SignatureSize]byte

// Raw returns the 65 raw signature bytes.
func (s Signature) Raw() []byte {
	b := make([]byte, SignatureSize)
	copy(b, s[:])
	return b
}

// H520 returns the signature as a fixed width value.
func (s Signature) H520() types.H520 {
	return types.H520(s)
}

// IsZero reports whether s is the default all-zero signature.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// R returns the r value of the signature.
func (s Signature) R() *big.Int {
	return new(big.Int).SetBytes(s[:32])
}

// S returns the s value of the signature.
func (s Signature) S() *big.Int {
	return new(big.Int).SetBytes(s[32:64])
}

// V returns the recovery id.
func (s Signature) V() byte {
	return s[64]
}

// Validate checks the shape of the signature: r and s must lie in
// [1, N-1] of the secp256k1 group and v must be 0 or 1. It does not
// verify the signature against any message.
func (s Signature) Validate() error {
	n := btcec.S256().N
	if r := s.R(); r.Sign() == 0 || r.Cmp(n) >= 0 {
		return fmt.Errorf("r out of range: %w", ErrInvalidSignature)
	}
	if v := s.S(); v.Sign() == 0 || v.Cmp(n) >= 0 {
		return fmt.Errorf("s out of range: %w", ErrInvalidSignature)
	}
	if v := s.V(); v > 1 {
		return fmt.Errorf("recovery id %d: %w", v, ErrInvalidSignature)
	}
	return nil
}

// NewSignature copies 65 raw bytes into a Signature.
func NewSignature(b []byte) (s Signature, err error) {
	if len(b) != SignatureSize {
		return s, fmt.Errorf("signature length %d: %w", len(b), ErrInvalidSignature)
	}
	copy(s[:], b)
	return s, nil
}

// ParseHexSignature returns a Signature from its hex representation.
// The 0x prefix is optional.
func ParseHexSignature(h string) (Signature, error) {
	v, err := types.ParseHexH520(h)
	if err != nil {
		return Signature{}, err
	}
	return Signature(v), nil
}

// SignatureFromCompact converts a btcec compact signature (v|r|s with
// v = 27 + recovery id, plus 4 for compressed keys) to r|s|v form.
func SignatureFromCompact(c []byte) (s Signature, err error) {
	if len(c) != SignatureSize {
		return s, fmt.Errorf("compact signature length %d: %w", len(c), ErrInvalidSignature)
	}
	v := c[0]
	if v < compactHeader || v >= compactHeader+2*compressedFlag {
		return s, fmt.Errorf("compact signature header %d: %w", v, ErrInvalidSignature)
	}
	v -= compactHeader
	if v >= compressedFlag {
		v -= compressedFlag
	}
	copy(s[:64], c[1:])
	s[64] = v
	return s, nil
}

// compact converts the signature back to the btcec compact form for a
// compressed public key.
func (s Signature) compact() []byte {
	c := make([]byte, SignatureSize)
	c[0] = compactHeader + compressedFlag + s[64]
	copy(c[1:], s[:64])
	return c
}
