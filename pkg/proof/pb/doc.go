// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pb holds the typed proof envelope: an opaque content payload
// and a ProofType tag naming the consensus engine that produced it.
// The message layout is described in proof.proto; proof.go mirrors what
// protoc-gen-gogo emits for it and carries no further documentation.
package pb
