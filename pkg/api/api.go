// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api serves the merkle root builder and the authority round proof
// codec over HTTP with JSON bodies.
package api

import (
	"net/http"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ethersphere/aurakit/pkg/jsonhttp"
	"github.com/ethersphere/aurakit/pkg/logging"
)

// DefaultMaxBodySize limits request bodies when Options.MaxBodySize is not set.
const DefaultMaxBodySize = 1 << 20

type Service interface {
	http.Handler
	Metrics() (cs []prometheus.Collector)
}

type server struct {
	Options
	http.Handler
	metrics metrics
}

type Options struct {
	Logger logging.Logger
	// MetricsRegistry is served on /metrics when set.
	MetricsRegistry *prometheus.Registry
	MaxBodySize     int64
}

func New(o Options) Service {
	if o.MaxBodySize <= 0 {
		o.MaxBodySize = DefaultMaxBodySize
	}
	s := &server{
		Options: o,
		metrics: newMetrics(),
	}

	s.setupRouting()

	return s
}

// decodeBody reads the JSON request body into v and writes the error
// response if that fails.
func (s *server) decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) (ok bool) {
	if err := jsonhttp.DecodeBody(w, r, v); err != nil {
		s.Logger.Debugf("api: decode request body: %v", err)
		return false
	}
	return true
}

// validationError lists every collected error on a single line.
func validationError(err *multierror.Error) string {
	err.ErrorFormat = func(es []error) string {
		msgs := make([]string, 0, len(es))
		for _, e := range es {
			msgs = append(msgs, e.Error())
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}
