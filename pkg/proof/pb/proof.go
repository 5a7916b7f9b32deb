// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pb

import (
	proto "github.com/gogo/protobuf/proto"
)

type ProofType int32

const (
	ProofType_AuthorityRound ProofType = 0
	ProofType_Raft           ProofType = 1
	ProofType_Bft            ProofType = 2
)

var ProofType_name = map[int32]string{
	0: "AuthorityRound",
	1: "Raft",
	2: "Bft",
}

var ProofType_value = map[string]int32{
	"AuthorityRound": 0,
	"Raft":           1,
	"Bft":            2,
}

func (x ProofType) String() string {
	return proto.EnumName(ProofType_name, int32(x))
}

// Proof is the typed envelope carrying an encoded consensus proof.
type Proof struct {
	Content []byte    `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Type    ProofType `protobuf:"varint,2,opt,name=type,proto3,enum=aurakit.ProofType" json:"type,omitempty"`
}

func (m *Proof) Reset()         { *m = Proof{} }
func (m *Proof) String() string { return proto.CompactTextString(m) }
func (*Proof) ProtoMessage()    {}

func (m *Proof) GetContent() []byte {
	if m != nil {
		return m.Content
	}
	return nil
}

func (m *Proof) SetContent(content []byte) {
	m.Content = content
}

func (m *Proof) GetType() ProofType {
	if m != nil {
		return m.Type
	}
	return ProofType_AuthorityRound
}

func (m *Proof) SetType(t ProofType) {
	m.Type = t
}

func init() {
	proto.RegisterEnum("aurakit.ProofType", ProofType_name, ProofType_value)
	proto.RegisterType((*Proof)(nil), "aurakit.Proof")
}
