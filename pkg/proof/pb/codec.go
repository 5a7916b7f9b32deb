// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pb

import (
	"errors"
	"fmt"

	proto "github.com/gogo/protobuf/proto"
)

var ErrUnknownProofType = errors.New("unknown proof type")

// Marshal returns the protobuf wire form of the envelope.
func Marshal(p *Proof) ([]byte, error) {
	return proto.Marshal(p)
}

// Unmarshal parses an envelope from its protobuf wire form. Envelopes with
// a tag outside of the ProofType enumeration are rejected.
func Unmarshal(b []byte) (*Proof, error) {
	p := new(Proof)
	if err := proto.Unmarshal(b, p); err != nil {
		return nil, err
	}
	if _, ok := ProofType_name[int32(p.Type)]; !ok {
		return nil, fmt.Errorf("tag %d: %w", p.Type, ErrUnknownProofType)
	}
	return p, nil
}
