// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/ethersphere/aurakit/pkg/api"
	"github.com/ethersphere/aurakit/pkg/jsonhttp"
	"github.com/ethersphere/aurakit/pkg/jsonhttp/jsonhttptest"
	"github.com/ethersphere/aurakit/pkg/types"
)

func TestMerkleRoot(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, testServerOptions{})

	for _, tc := range []struct {
		name   string
		leaves []string
		want   string
	}{
		{
			name:   "empty",
			leaves: []string{},
			want:   "56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421",
		},
		{
			name:   "two",
			leaves: []string{"0x646f65", "7265696e64656572"},
			want:   "de5a46e4aa9a3b638e38715ecbbdcdfda25c1a3ce85973200d691d6501c0a8a0",
		},
		{
			name:   "seven",
			leaves: []string{"0x61", "0x62", "0x63", "0x64", "0x65", "0x66", "0x67"},
			want:   "768dfb4ca3311fa3bf4d696dde334e30edf3542e8ea114a4f9d18fb34365f1d1",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root", http.StatusOK,
				jsonhttptest.WithJSONRequestBody(api.MerkleRootRequest{Leaves: tc.leaves}),
				jsonhttptest.WithExpectedJSONResponse(api.MerkleRootResponse{
					Root: types.MustParseHexH256(tc.want),
				}),
			)
		})
	}

	t.Run("versioned path", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodPost, "/v1/merkle/root", http.StatusOK,
			jsonhttptest.WithJSONRequestBody(api.MerkleRootRequest{}),
			jsonhttptest.WithExpectedJSONResponse(api.MerkleRootResponse{Root: types.NullRLPHash}),
		)
	})
}

func TestMerkleRootInvalid(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, testServerOptions{MaxBodySize: 64})

	t.Run("invalid leaves", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root", http.StatusBadRequest,
			jsonhttptest.WithJSONRequestBody(api.MerkleRootRequest{
				Leaves: []string{"zz", "0x00", "0x123"},
			}),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "leaf 0: invalid hex string; leaf 2: hex string of odd length",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root", http.StatusBadRequest,
			jsonhttptest.WithRequestBody(strings.NewReader("{")),
			jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
				Message: "invalid request body",
				Code:    http.StatusBadRequest,
			}),
		)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()

		jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root", http.StatusRequestEntityTooLarge,
			jsonhttptest.WithJSONRequestBody(api.MerkleRootRequest{
				Leaves: []string{strings.Repeat("00", 64)},
			}),
		)
	})
}

func TestMerkleRootRaw(t *testing.T) {
	t.Parallel()

	client, _ := newTestServer(t, testServerOptions{})

	jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root/raw", http.StatusOK,
		jsonhttptest.WithJSONRequestBody(api.MerkleRootRawRequest{
			Hashes: []string{
				"8e827ab731f2416f6057b9c7f241b1841e345ffeabb4274e35995a45f4d42a1a",
				"768dfb4ca3311fa3bf4d696dde334e30edf3542e8ea114a4f9d18fb34365f1d1",
				"e68dfb4ca3311fa3bf4d696dde334e30edf3542e8ea114a4f9d18fb34365f1d1",
				"f68dfb4ca3311fa3bf4d696dde334e30edf3542e8ea114a4f9d18fb34365f1d1",
				"968dfb4ca3311fa3bf4d696dde334e30edf3542e8ea114a4f9d18fb34365f1d1",
			},
		}),
		jsonhttptest.WithExpectedJSONResponse(api.MerkleRootResponse{
			Root: types.MustParseHexH256("e30a149e738cfaf89fb3a2267d7109a1bda978320426c2ff8b3a2d77aa103a6a"),
		}),
	)

	jsonhttptest.Request(t, client, http.MethodPost, "/merkle/root/raw", http.StatusBadRequest,
		jsonhttptest.WithJSONRequestBody(api.MerkleRootRawRequest{
			Hashes: []string{"00", "0x" + strings.Repeat("ab", 32)},
		}),
		jsonhttptest.WithExpectedJSONResponse(jsonhttp.StatusResponse{
			Message: "hash 0: h256: got 1 bytes: invalid length",
			Code:    http.StatusBadRequest,
		}),
	)
}
