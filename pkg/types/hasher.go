// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"golang.org/x/crypto/sha3"
)

var (
	// NewHasher returns the legacy Keccak-256 hasher. This is the
	// pre-standard variant, not FIPS-202 SHA3-256.
	NewHasher = sha3.NewLegacyKeccak256
)

// NullRLPHash is the Keccak-256 digest of the RLP encoding of an empty
// byte string (0x80). It is the canonical root of no data.
var NullRLPHash = MustParseHexH256("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// Keccak256 hashes the given values in order.
func Keccak256(data ...[]byte) (h H256) {
	hasher := NewHasher()
	for _, d := range data {
		// keccak writes never fail
		_, _ = hasher.Write(d)
	}
	copy(h[:], hasher.Sum(nil))
	return h
}
