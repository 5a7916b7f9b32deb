// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/ethersphere/aurakit"
	"github.com/ethersphere/aurakit/pkg/jsonhttp"
)

type healthStatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	jsonhttp.OK(w, healthStatusResponse{
		Status:  "ok",
		Version: aurakit.Version,
	})
}
