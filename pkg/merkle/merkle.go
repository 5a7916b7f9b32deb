// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merkle

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math/bits"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethersphere/aurakit/pkg/types"
)

// CompleteRoot hashes every leaf with Keccak-256 and returns the root of
// the complete merkle tree built over the leaf hashes.
func CompleteRoot(leaves [][]byte) types.H256 {
	hashes := make([]types.H256, len(leaves))
	for i, leaf := range leaves {
		hashes[i] = types.Keccak256(leaf)
	}
	return root(hashes)
}

// CompleteRootRaw returns the root of the complete merkle tree built over
// already hashed leaves. The hashes slice is not modified.
func CompleteRootRaw(hashes []types.H256) types.H256 {
	return root(hashes)
}

// CompleteRootFromReader reads newline separated leaves from r and returns
// their CompleteRoot. A final newline does not start an additional leaf.
func CompleteRootFromReader(r io.Reader) (types.H256, error) {
	var leaves [][]byte
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			leaves = append(leaves, bytes.TrimSuffix(line, []byte{'\n'}))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return types.ZeroH256, err
		}
	}
	return CompleteRoot(leaves), nil
}

// root folds hashes into the complete tree root.
func root(hashes []types.H256) types.H256 {
	count := len(hashes)
	if count == 0 {
		return types.NullRLPHash
	}

	lowest := lowestChildrenLen(count)

	// nodes always has a power of two length
	nodes := make([]types.H256, 0, count-lowest/2)
	for i := 0; i < lowest; i += 2 {
		nodes = append(nodes, combine(hashes[i], hashes[i+1]))
	}
	nodes = append(nodes, hashes[lowest:]...)

	n := len(nodes)
	for d := 1; d < n; d <<= 1 {
		for j := 0; j < n; j += d + d {
			nodes[j] = combine(nodes[j], nodes[j+d])
		}
	}
	return nodes[0]
}

// lowestChildrenLen returns the number of leaves on the deepest level of
// the complete tree with count leaves, which is zero for powers of two.
func lowestChildrenLen(count int) int {
	if count <= 0 {
		return 0
	}
	p := 1 << (bits.Len(uint(count)) - 1)
	return (count - p) << 1
}

// combine hashes the RLP encodings of left and right appended together.
func combine(left, right types.H256) (h types.H256) {
	hasher := types.NewHasher()
	// encoding a byte array into the keccak state never fails
	_ = rlp.Encode(hasher, left)
	_ = rlp.Encode(hasher, right)
	copy(h[:], hasher.Sum(nil))
	return h
}
