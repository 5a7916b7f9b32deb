// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merkle computes the root of a complete binary merkle tree over
// an ordered sequence of leaves.
//
// Leaves are hashed with Keccak-256. Two nodes are combined by hashing the
// concatenation of their RLP string encodings (0xa0 prefix followed by the
// 32 bytes of each node), which is 66 bytes in total.
//
// The tree is complete: every level except the deepest is full and the
// deepest level is filled from the left. For N leaves and P the largest
// power of two not greater than N, only the first 2*(N-P) leaves sit on the
// deepest level. They are paired first and the remaining leaves join the
// resulting P nodes one level up. A naive pairwise reduction that promotes
// odd tails produces different roots whenever N is not a power of two.
//
// The root of an empty sequence is types.NullRLPHash.
//
// Two implementations are provided:
//
// CompleteRoot and CompleteRootRaw fold the tree in place over a single
// buffer with a doubling stride.
//
// reference.RefRoot allocates every level and is meant as a reference
// implementation that is simple to understand.
package merkle
