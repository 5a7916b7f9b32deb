// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ethersphere/aurakit/pkg/crypto"
)

func TestDefaultSignature(t *testing.T) {
	t.Parallel()

	var s crypto.Signature
	if !s.IsZero() {
		t.Fatal("zero value is not the default signature")
	}
	if !bytes.Equal(s.Raw(), make([]byte, crypto.SignatureSize)) {
		t.Fatalf("got raw %x, want 65 zero bytes", s.Raw())
	}
	if got := s.String(); got != strings.Repeat("0", 130) {
		t.Fatalf("got %q", got)
	}
	if err := s.Validate(); !errors.Is(err, crypto.ErrInvalidSignature) {
		t.Fatalf("got error %v, want %v", err, crypto.ErrInvalidSignature)
	}
}

func TestRawIsACopy(t *testing.T) {
	t.Parallel()

	var s crypto.Signature
	s[0] = 1
	raw := s.Raw()
	raw[0] = 2
	if s[0] != 1 {
		t.Fatal("raw bytes alias the signature")
	}
}

func TestSignatureFromCompact(t *testing.T) {
	t.Parallel()

	compact := make([]byte, crypto.SignatureSize)
	for i := 1; i < len(compact); i++ {
		compact[i] = byte(i)
	}

	for _, tc := range []struct {
		name    string
		header  byte
		wantV   byte
		wantErr error
	}{
		{name: "uncompressed recid 0", header: 27, wantV: 0},
		{name: "uncompressed recid 1", header: 28, wantV: 1},
		{name: "compressed recid 0", header: 31, wantV: 0},
		{name: "compressed recid 1", header: 32, wantV: 1},
		{name: "low header", header: 26, wantErr: crypto.ErrInvalidSignature},
		{name: "high header", header: 35, wantErr: crypto.ErrInvalidSignature},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := append([]byte{tc.header}, compact[1:]...)
			s, err := crypto.SignatureFromCompact(c)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if s.V() != tc.wantV {
				t.Errorf("got v %d, want %d", s.V(), tc.wantV)
			}
			if !bytes.Equal(s[:64], compact[1:]) {
				t.Errorf("got r|s %x, want %x", s[:64], compact[1:])
			}
		})
	}

	if _, err := crypto.SignatureFromCompact(compact[1:]); !errors.Is(err, crypto.ErrInvalidSignature) {
		t.Fatalf("got error %v, want %v", err, crypto.ErrInvalidSignature)
	}
}

func TestParseHexSignature(t *testing.T) {
	t.Parallel()

	var want crypto.Signature
	want[0], want[64] = 0xff, 0x01

	got, err := crypto.ParseHexSignature("0x" + want.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := crypto.NewSignature(want.Raw()[:64]); !errors.Is(err, crypto.ErrInvalidSignature) {
		t.Fatalf("got error %v, want %v", err, crypto.ErrInvalidSignature)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	var s crypto.Signature
	s[31], s[63] = 1, 1
	if err := s.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	s[64] = 2
	if err := s.Validate(); !errors.Is(err, crypto.ErrInvalidSignature) {
		t.Fatalf("got error %v, want %v", err, crypto.ErrInvalidSignature)
	}

	// r equal to the group order is out of range
	n, err := crypto.ParseHexSignature("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141" +
		"0000000000000000000000000000000000000000000000000000000000000001" + "00")
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Validate(); !errors.Is(err, crypto.ErrInvalidSignature) {
		t.Fatalf("got error %v, want %v", err, crypto.ErrInvalidSignature)
	}
}
