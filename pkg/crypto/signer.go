// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"crypto/ecdsa"

	"github.com/btcsuite/btcd/btcec"
)

type Signer interface {
	// Sign signs a 32 byte digest.
	Sign(digest []byte) (Signature, error)
	PublicKey() (*ecdsa.PublicKey, error)
}

type Recoverer interface {
	Recover(signature Signature, digest []byte) (*ecdsa.PublicKey, error)
}

type SignRecoverer interface {
	Signer
	Recoverer
}

type defaultRecoverer struct{}

func (d defaultRecoverer) Recover(signature Signature, digest []byte) (*ecdsa.PublicKey, error) {
	p, _, err := btcec.RecoverCompact(btcec.S256(), signature.compact(), digest)
	return (*ecdsa.PublicKey)(p), err
}

// Recover recovers the public key that produced the signature over digest.
func Recover(signature Signature, digest []byte) (*ecdsa.PublicKey, error) {
	return defaultRecoverer{}.Recover(signature, digest)
}

type defaultSigner struct {
	key       *ecdsa.PrivateKey
	recoverer Recoverer
}

func NewDefaultSigner(key *ecdsa.PrivateKey) SignRecoverer {
	return &defaultSigner{
		key:       key,
		recoverer: defaultRecoverer{},
	}
}

func (d *defaultSigner) PublicKey() (*ecdsa.PublicKey, error) {
	return &d.key.PublicKey, nil
}

func (d *defaultSigner) Sign(digest []byte) (Signature, error) {
	c, err := btcec.SignCompact(btcec.S256(), (*btcec.PrivateKey)(d.key), digest, true)
	if err != nil {
		return Signature{}, err
	}
	return SignatureFromCompact(c)
}

func (d *defaultSigner) Recover(signature Signature, digest []byte) (*ecdsa.PublicKey, error) {
	return d.recoverer.Recover(signature, digest)
}
