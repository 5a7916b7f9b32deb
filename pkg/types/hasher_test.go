// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types_test

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/ethersphere/aurakit/pkg/types"
)

func TestNewHasher(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plaintext []byte
		hash      []byte
	}{
		{
			plaintext: []byte("Digital Freedom Now."),
			hash:      []byte{43, 108, 13, 242, 182, 16, 111, 176, 64, 234, 1, 180, 231, 199, 55, 85, 89, 149, 188, 70, 54, 111, 149, 1, 187, 76, 74, 232, 251, 194, 192, 190},
		},
		{
			plaintext: []byte("If Ethereum is the world's CPU, Swarm is the world's Hard Drive"),
			hash:      []byte{189, 23, 172, 191, 253, 137, 130, 94, 251, 161, 91, 101, 97, 229, 100, 172, 122, 47, 152, 84, 63, 116, 108, 216, 0, 66, 111, 10, 247, 85, 13, 210},
		},
	}

	for _, tc := range tests {
		h := types.NewHasher()

		_, err := h.Write(tc.plaintext)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(h.Sum(nil), tc.hash) {
			t.Fatalf("unexpected hash value")
		}

		if got := types.Keccak256(tc.plaintext); !bytes.Equal(got[:], tc.hash) {
			t.Fatalf("keccak256: got %v, want %x", got, tc.hash)
		}
	}
}

func TestKeccak256Empty(t *testing.T) {
	t.Parallel()

	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if got := types.Keccak256().String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got := types.Keccak256(nil).String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestNullRLPHash(t *testing.T) {
	t.Parallel()

	empty, err := rlp.EncodeToBytes([]byte{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(empty, []byte{0x80}) {
		t.Fatalf("got rlp %x, want 80", empty)
	}
	if got := types.Keccak256(empty); got != types.NullRLPHash {
		t.Errorf("got %v, want %v", got, types.NullRLPHash)
	}
}
