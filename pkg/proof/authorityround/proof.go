// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package authorityround provides the proof produced by the authority
// round consensus engine: the step of the round and the signature of the
// step by the authority chosen for it.
//
// The proof travels inside a pb.Proof envelope tagged AuthorityRound. Its
// content is exactly 73 bytes, the step as little endian uint64 followed by
// the 65 signature bytes, with no framing.
package authorityround

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethersphere/aurakit/pkg/crypto"
	"github.com/ethersphere/aurakit/pkg/proof/pb"
	"github.com/ethersphere/aurakit/pkg/types"
)

const (
	stepSize = 8
	// ContentSize is the length of the encoded proof.
	ContentSize = stepSize + types.H520Size
)

var (
	ErrMalformedProof      = errors.New("authority round: malformed proof")
	ErrUnexpectedProofType = errors.New("authority round: unexpected proof type")
)

// Proof is an immutable authority round proof.
type Proof struct {
	step      uint64
	signature types.H520
}

// New constructs a proof for the step signed with sig.
func New(step uint64, sig crypto.Signature) Proof {
	var s types.H520
	copy(s[:], sig.Raw())
	return Proof{
		step:      step,
		signature: s,
	}
}

// Step returns the consensus round step.
func (p Proof) Step() uint64 {
	return p.step
}

// Signature returns the signature over the step.
func (p Proof) Signature() types.H520 {
	return p.signature
}

// Equal reports whether both fields of the proofs match.
func (p Proof) Equal(o Proof) bool {
	return p.step == o.step && p.signature == o.signature
}

// String renders the proof as "step: <decimal>, signature: <hex>".
func (p Proof) String() string {
	return fmt.Sprintf("step: %d, signature: %s", p.step, p.signature)
}

// MarshalBinary returns the 73 byte content of the proof. It never fails.
func (p Proof) MarshalBinary() ([]byte, error) {
	b := make([]byte, ContentSize)
	binary.LittleEndian.PutUint64(b[:stepSize], p.step)
	copy(b[stepSize:], p.signature[:])
	return b, nil
}

// UnmarshalBinary sets the proof from its 73 byte content.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if len(b) != ContentSize {
		return fmt.Errorf("content length %d, want %d: %w", len(b), ContentSize, ErrMalformedProof)
	}
	p.step = binary.LittleEndian.Uint64(b[:stepSize])
	copy(p.signature[:], b[stepSize:])
	return nil
}

// Envelope wraps the proof into an envelope tagged AuthorityRound.
func (p Proof) Envelope() *pb.Proof {
	content, _ := p.MarshalBinary()
	env := new(pb.Proof)
	env.SetContent(content)
	env.SetType(pb.ProofType_AuthorityRound)
	return env
}

// FromEnvelope decodes the proof from an envelope, rejecting envelopes
// that are not tagged AuthorityRound.
func FromEnvelope(env *pb.Proof) (Proof, error) {
	if t := env.GetType(); t != pb.ProofType_AuthorityRound {
		return Proof{}, fmt.Errorf("got %s: %w", t, ErrUnexpectedProofType)
	}
	return FromEnvelopeUnchecked(env)
}

// FromEnvelopeUnchecked decodes the proof from the envelope content
// without looking at the envelope tag. Callers relying on it must check
// the tag themselves.
func FromEnvelopeUnchecked(env *pb.Proof) (Proof, error) {
	var p Proof
	if err := p.UnmarshalBinary(env.GetContent()); err != nil {
		return Proof{}, err
	}
	return p, nil
}

// Marshal returns the protobuf wire form of the proof envelope.
func (p Proof) Marshal() ([]byte, error) {
	return pb.Marshal(p.Envelope())
}

// Unmarshal decodes a proof from the protobuf wire form of its envelope.
// The envelope must be tagged AuthorityRound.
func Unmarshal(b []byte) (Proof, error) {
	env, err := pb.Unmarshal(b)
	if err != nil {
		return Proof{}, err
	}
	return FromEnvelope(env)
}

// UnmarshalUnchecked is like Unmarshal but ignores the envelope tag.
func UnmarshalUnchecked(b []byte) (Proof, error) {
	env, err := pb.Unmarshal(b)
	if err != nil {
		return Proof{}, err
	}
	return FromEnvelopeUnchecked(env)
}

type proofJSON struct {
	Step      uint64     `json:"step"`
	Signature types.H520 `json:"signature"`
}

// MarshalJSON returns the JSON object {"step":n,"signature":"<hex>"}.
func (p Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(proofJSON{
		Step:      p.step,
		Signature: p.signature,
	})
}

// UnmarshalJSON sets the proof from its JSON object.
func (p *Proof) UnmarshalJSON(b []byte) error {
	var v proofJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.step = v.Step
	p.signature = v.Signature
	return nil
}
