// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reference is a simple level by level implementation of the
// complete merkle root, used to check the in-place implementation.
package reference

import (
	"github.com/ethersphere/aurakit/pkg/types"
)

// rlpString32 is the RLP prefix of a 32 byte string.
const rlpString32 = 0x80 + types.HashSize

// RefRoot computes the complete merkle root of hashes allocating a new
// slice for every level of the tree.
func RefRoot(hashes []types.H256) types.H256 {
	count := len(hashes)
	if count == 0 {
		return types.NullRLPHash
	}

	// largest power of two not greater than count
	width := 1
	for width*2 <= count {
		width *= 2
	}
	bottom := 2 * (count - width)

	level := make([]types.H256, 0, width)
	for i := 0; i < bottom; i += 2 {
		level = append(level, Combine(hashes[i], hashes[i+1]))
	}
	level = append(level, hashes[bottom:]...)

	for len(level) > 1 {
		next := make([]types.H256, len(level)/2)
		for i := range next {
			next[i] = Combine(level[2*i], level[2*i+1])
		}
		level = next
	}
	return level[0]
}

// Combine hashes the two nodes the way the tree does, writing the RLP
// string prefixes by hand.
func Combine(left, right types.H256) types.H256 {
	return types.Keccak256(Encode(left, right))
}

// Encode returns the 66 byte serialization of a pair of nodes.
func Encode(left, right types.H256) []byte {
	b := make([]byte, 0, 2*(types.HashSize+1))
	b = append(b, rlpString32)
	b = append(b, left[:]...)
	b = append(b, rlpString32)
	b = append(b, right[:]...)
	return b
}
