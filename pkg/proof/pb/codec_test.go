// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pb_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethersphere/aurakit/pkg/proof/pb"
	"github.com/google/go-cmp/cmp"
)

func TestMarshal(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		proof *pb.Proof
		want  []byte
	}{
		{
			name:  "empty",
			proof: &pb.Proof{},
			want:  []byte{},
		},
		{
			name:  "authority round",
			proof: &pb.Proof{Content: []byte{1, 2, 3}, Type: pb.ProofType_AuthorityRound},
			want:  []byte{0x0a, 0x03, 1, 2, 3},
		},
		{
			name:  "raft",
			proof: &pb.Proof{Content: []byte{0xff}, Type: pb.ProofType_Raft},
			want:  []byte{0x0a, 0x01, 0xff, 0x10, 0x01},
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pb.Marshal(tc.proof)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("got %x, want %x", got, tc.want)
			}

			p, err := pb.Unmarshal(got)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(p.GetContent(), tc.proof.GetContent()) || p.GetType() != tc.proof.GetType() {
				t.Fatalf("got %v, want %v", p, tc.proof)
			}
		})
	}
}

func TestUnmarshalUnknownType(t *testing.T) {
	t.Parallel()

	if _, err := pb.Unmarshal([]byte{0x10, 0x07}); !errors.Is(err, pb.ErrUnknownProofType) {
		t.Fatalf("got error %v, want %v", err, pb.ErrUnknownProofType)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	t.Parallel()

	if _, err := pb.Unmarshal([]byte{0x0a, 0x05, 1}); err == nil {
		t.Fatal("expected error")
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	var nilProof *pb.Proof
	if nilProof.GetContent() != nil || nilProof.GetType() != pb.ProofType_AuthorityRound {
		t.Fatal("nil envelope accessors")
	}

	p := new(pb.Proof)
	p.SetContent([]byte("content"))
	p.SetType(pb.ProofType_Bft)

	want := &pb.Proof{Content: []byte("content"), Type: pb.ProofType_Bft}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("envelope mismatch (-want +have):\n%s", diff)
	}
	if got := p.GetType().String(); got != "Bft" {
		t.Errorf("got type %q, want Bft", got)
	}
}
