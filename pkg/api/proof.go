// Copyright 2022 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ethersphere/aurakit/pkg/crypto"
	"github.com/ethersphere/aurakit/pkg/jsonhttp"
	"github.com/ethersphere/aurakit/pkg/proof/authorityround"
	"github.com/ethersphere/aurakit/pkg/types"
)

type proofEncodeRequest struct {
	Step      *uint64 `json:"step"`
	Signature string  `json:"signature"`
}

type proofEncodeResponse struct {
	Envelope string `json:"envelope"`
	Content  string `json:"content"`
	Display  string `json:"display"`
}

type proofDecodeResponse struct {
	Step      uint64     `json:"step"`
	Signature types.H520 `json:"signature"`
	Display   string     `json:"display"`
}

func (s *server) proofEncodeHandler(w http.ResponseWriter, r *http.Request) {
	var req proofEncodeRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	if req.Step == nil {
		jsonhttp.BadRequest(w, "missing step")
		return
	}
	sig, err := crypto.ParseHexSignature(req.Signature)
	if err != nil {
		s.Logger.Debugf("api: proof encode: parse signature: %v", err)
		jsonhttp.BadRequest(w, "invalid signature")
		return
	}

	p := authorityround.New(*req.Step, sig)
	envelope, err := p.Marshal()
	if err != nil {
		s.Logger.Errorf("api: proof encode: marshal envelope: %v", err)
		jsonhttp.InternalServerError(w, nil)
		return
	}
	content, _ := p.MarshalBinary()
	s.metrics.ProofEncodeCount.Inc()

	jsonhttp.OK(w, proofEncodeResponse{
		Envelope: hex.EncodeToString(envelope),
		Content:  hex.EncodeToString(content),
		Display:  p.String(),
	})
}

// proofDecodeHandler decodes the hex envelope from the path. With the
// unchecked query parameter set the envelope tag is ignored.
func (s *server) proofDecodeHandler(w http.ResponseWriter, r *http.Request) {
	b, err := types.DecodeHex(mux.Vars(r)["envelope"])
	if err != nil {
		s.metrics.ProofDecodeFailures.WithLabelValues("hex").Inc()
		s.Logger.Debugf("api: proof decode: %v", err)
		jsonhttp.BadRequest(w, "invalid envelope")
		return
	}

	unmarshal := authorityround.Unmarshal
	if v := r.URL.Query().Get("unchecked"); v != "" {
		unchecked, err := strconv.ParseBool(v)
		if err != nil {
			jsonhttp.BadRequest(w, "invalid unchecked parameter")
			return
		}
		if unchecked {
			unmarshal = authorityround.UnmarshalUnchecked
		}
	}

	p, err := unmarshal(b)
	if err != nil {
		s.Logger.Debugf("api: proof decode: %v", err)
		switch {
		case errors.Is(err, authorityround.ErrUnexpectedProofType):
			s.metrics.ProofDecodeFailures.WithLabelValues("type").Inc()
			jsonhttp.BadRequest(w, "unexpected proof type")
		case errors.Is(err, authorityround.ErrMalformedProof):
			s.metrics.ProofDecodeFailures.WithLabelValues("content").Inc()
			jsonhttp.BadRequest(w, "malformed proof")
		default:
			s.metrics.ProofDecodeFailures.WithLabelValues("envelope").Inc()
			jsonhttp.BadRequest(w, "malformed envelope")
		}
		return
	}
	s.metrics.ProofDecodeCount.Inc()

	jsonhttp.OK(w, proofDecodeResponse{
		Step:      p.Step(),
		Signature: p.Signature(),
		Display:   p.String(),
	})
}
