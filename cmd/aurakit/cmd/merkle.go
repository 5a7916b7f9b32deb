// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ethersphere/aurakit/pkg/merkle"
	"github.com/ethersphere/aurakit/pkg/types"
)

func (c *command) initMerkleCmd() {
	cmd := &cobra.Command{
		Use:   "merkle [leaf ...]",
		Short: "Print the complete merkle root of leaves",
		Long: `Print the complete merkle root of leaves.

Every argument is a leaf. Without arguments leaves are read from the
standard input, one per line. With --raw the leaves are hex encoded
Keccak-256 leaf hashes instead of leaf data.`,
		PreRunE: c.bindFlags,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var root types.H256
			switch raw := c.config.GetBool(optionNameRaw); {
			case raw && len(args) == 0:
				args, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
				fallthrough
			case raw:
				hashes, err := parseHashes(args)
				if err != nil {
					return err
				}
				c.logger.Debugf("merkle: root of %d leaf hashes", len(hashes))
				root = merkle.CompleteRootRaw(hashes)
			case len(args) == 0:
				c.logger.Debug("merkle: reading leaves from standard input")
				root, err = merkle.CompleteRootFromReader(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read leaves: %w", err)
				}
			default:
				leaves := make([][]byte, len(args))
				for i, a := range args {
					leaves[i] = []byte(a)
				}
				c.logger.Debugf("merkle: root of %d leaves", len(leaves))
				root = merkle.CompleteRoot(leaves)
			}
			fmt.Fprintln(cmd.OutOrStdout(), root)
			return nil
		},
	}

	cmd.Flags().Bool(optionNameRaw, false, "leaves are hex encoded leaf hashes")

	c.root.AddCommand(cmd)
}

// parseHashes decodes all hex hashes and reports every invalid one.
func parseHashes(ss []string) ([]types.H256, error) {
	var errs *multierror.Error
	hashes := make([]types.H256, 0, len(ss))
	for i, s := range ss {
		h, err := types.ParseHexH256(s)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("leaf hash %d %q: %w", i, s, err))
			continue
		}
		hashes = append(hashes, h)
	}
	return hashes, errs.ErrorOrNil()
}

// readLines returns the non empty trimmed lines of r.
func readLines(r io.Reader) (lines []string, err error) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if l := strings.TrimSpace(s.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read leaf hashes: %w", err)
	}
	return lines, nil
}
