// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ethersphere/aurakit/pkg/crypto"
	"github.com/ethersphere/aurakit/pkg/proof/authorityround"
	"github.com/ethersphere/aurakit/pkg/types"
)

func (c *command) initProofCmd() {
	cmd := &cobra.Command{
		Use:   "proof",
		Short: "Encode and decode authority round proofs",
	}

	c.initProofEncodeCmd(cmd)
	c.initProofDecodeCmd(cmd)

	c.root.AddCommand(cmd)
}

func (c *command) initProofEncodeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the hex encoded proof envelope",
		Long: `Print the hex encoded proof envelope for a step and a signature.

With --key instead of --signature the step is signed with the hex encoded
secp256k1 private key. The signed digest is the Keccak-256 hash of the step
as little endian uint64.`,
		Args:    cobra.NoArgs,
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			step := c.config.GetUint64(optionNameStep)

			var sig crypto.Signature
			switch signature, key := c.config.GetString(optionNameSignature), c.config.GetString(optionNameKey); {
			case signature != "" && key != "":
				return fmt.Errorf("only one of --%s and --%s can be set", optionNameSignature, optionNameKey)
			case signature != "":
				s, err := crypto.ParseHexSignature(signature)
				if err != nil {
					return fmt.Errorf("signature: %w", err)
				}
				sig = s
			case key != "":
				s, err := signStep(key, step)
				if err != nil {
					return err
				}
				sig = s
			default:
				return fmt.Errorf("one of --%s and --%s is required", optionNameSignature, optionNameKey)
			}

			p := authorityround.New(step, sig)
			b, err := p.Marshal()
			if err != nil {
				return fmt.Errorf("marshal envelope: %w", err)
			}
			c.logger.Debugf("proof: encoded %s", p)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(b))
			return nil
		},
	}

	cmd.Flags().Uint64(optionNameStep, 0, "consensus round step")
	cmd.Flags().String(optionNameSignature, "", "hex encoded 65 byte signature")
	cmd.Flags().String(optionNameKey, "", "hex encoded secp256k1 private key to sign the step with")

	parent.AddCommand(cmd)
}

func (c *command) initProofDecodeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "decode ENVELOPE",
		Short: "Print a hex encoded proof envelope",
		Long: `Print a hex encoded proof envelope.

The envelope must be tagged AuthorityRound unless --unchecked is set.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := types.DecodeHex(args[0])
			if err != nil {
				return fmt.Errorf("envelope: %w", err)
			}

			unmarshal := authorityround.Unmarshal
			if c.config.GetBool(optionNameUnchecked) {
				unmarshal = authorityround.UnmarshalUnchecked
			}
			p, err := unmarshal(b)
			if err != nil {
				return fmt.Errorf("decode proof: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().Bool(optionNameUnchecked, false, "ignore the envelope tag")

	parent.AddCommand(cmd)
}

var errInvalidKey = errors.New("invalid private key")

func signStep(keyHex string, step uint64) (crypto.Signature, error) {
	b, err := types.DecodeHex(keyHex)
	if err != nil {
		return crypto.Signature{}, fmt.Errorf("key: %v: %w", err, errInvalidKey)
	}
	key, err := crypto.DecodeSecp256k1PrivateKey(b)
	if err != nil {
		return crypto.Signature{}, fmt.Errorf("key: %v: %w", err, errInvalidKey)
	}
	digest := stepDigest(step)
	return crypto.NewDefaultSigner(key).Sign(digest[:])
}

// stepDigest is the Keccak-256 hash of the little endian step.
func stepDigest(step uint64) types.H256 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], step)
	return types.Keccak256(b[:])
}
