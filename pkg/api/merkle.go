// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"

	"github.com/ethersphere/aurakit/pkg/jsonhttp"
	"github.com/ethersphere/aurakit/pkg/merkle"
	"github.com/ethersphere/aurakit/pkg/types"
)

type merkleRootRequest struct {
	Leaves []string `json:"leaves"`
}

type merkleRootRawRequest struct {
	Hashes []string `json:"hashes"`
}

type merkleRootResponse struct {
	Root types.H256 `json:"root"`
}

func (s *server) merkleRootHandler(w http.ResponseWriter, r *http.Request) {
	var req merkleRootRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var errs *multierror.Error
	leaves := make([][]byte, 0, len(req.Leaves))
	for i, l := range req.Leaves {
		b, err := types.DecodeHex(l)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("leaf %d: %w", i, err))
			continue
		}
		leaves = append(leaves, b)
	}
	if errs != nil {
		s.Logger.Debugf("api: merkle root: %v", errs)
		jsonhttp.BadRequest(w, validationError(errs))
		return
	}

	root := merkle.CompleteRoot(leaves)
	s.metrics.MerkleRootCount.WithLabelValues("leaves").Inc()
	s.metrics.LeavesHashed.Add(float64(len(leaves)))

	jsonhttp.OK(w, merkleRootResponse{Root: root})
}

func (s *server) merkleRootRawHandler(w http.ResponseWriter, r *http.Request) {
	var req merkleRootRawRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	var errs *multierror.Error
	hashes := make([]types.H256, 0, len(req.Hashes))
	for i, h := range req.Hashes {
		v, err := types.ParseHexH256(h)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("hash %d: %w", i, err))
			continue
		}
		hashes = append(hashes, v)
	}
	if errs != nil {
		s.Logger.Debugf("api: merkle root raw: %v", errs)
		jsonhttp.BadRequest(w, validationError(errs))
		return
	}

	root := merkle.CompleteRootRaw(hashes)
	s.metrics.MerkleRootCount.WithLabelValues("hashes").Inc()
	s.metrics.LeavesHashed.Add(float64(len(hashes)))

	jsonhttp.OK(w, merkleRootResponse{Root: root})
}
