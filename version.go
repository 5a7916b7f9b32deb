// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aurakit computes complete merkle roots over Keccak-256 leaf
// hashes and encodes authority round consensus proofs. The functionality
// lives in the pkg directory; this package only carries the version.
package aurakit

var (
	version    = "0.1.0" // manually set semantic version number
	commitHash string    // set at link time with -ldflags "-X github.com/ethersphere/aurakit.commitHash=..."

	// Version is the semantic version suffixed with the commit hash of the
	// build, or with "dev" for builds without one.
	Version = func() string {
		if commitHash != "" {
			return version + "-" + commitHash
		}
		return version + "-dev"
	}()
)
