// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	m "github.com/ethersphere/aurakit/pkg/metrics"
)

type metrics struct {
	// all metrics fields must be exported
	// to be able to return them by Metrics()
	// using reflection
	RequestCount        prometheus.Counter
	ResponseDuration    prometheus.Histogram
	ResponseCodeCounts  *prometheus.CounterVec
	MerkleRootCount     *prometheus.CounterVec
	LeavesHashed        prometheus.Counter
	ProofEncodeCount    prometheus.Counter
	ProofDecodeCount    prometheus.Counter
	ProofDecodeFailures *prometheus.CounterVec
}

func newMetrics() metrics {
	subsystem := "api"

	return metrics{
		RequestCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of API requests.",
		}),
		ResponseDuration: m.NewHistogram(m.HistogramOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "response_duration_seconds",
			Help:      "Histogram of API response durations.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ResponseCodeCounts: m.NewCounterVec(
			m.CounterOpts{
				Namespace: m.Namespace,
				Subsystem: subsystem,
				Name:      "response_code_count",
				Help:      "Response count grouped by status code",
			},
			[]string{"code", "method"},
		),
		MerkleRootCount: m.NewCounterVec(
			m.CounterOpts{
				Namespace: m.Namespace,
				Subsystem: subsystem,
				Name:      "merkle_root_count",
				Help:      "Number of computed merkle roots grouped by input kind.",
			},
			[]string{"kind"},
		),
		LeavesHashed: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "merkle_leaves_count",
			Help:      "Number of leaves and leaf hashes merkle roots were built from.",
		}),
		ProofEncodeCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "proof_encode_count",
			Help:      "Number of encoded authority round proofs.",
		}),
		ProofDecodeCount: m.NewCounter(m.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "proof_decode_count",
			Help:      "Number of decoded authority round proofs.",
		}),
		ProofDecodeFailures: m.NewCounterVec(
			m.CounterOpts{
				Namespace: m.Namespace,
				Subsystem: subsystem,
				Name:      "proof_decode_failure_count",
				Help:      "Number of rejected authority round proofs grouped by reason.",
			},
			[]string{"reason"},
		),
	}
}

func (s *server) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}

func (s *server) pageviewMetricsHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.metrics.RequestCount.Inc()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		h.ServeHTTP(rw, r)
		s.metrics.ResponseDuration.Observe(time.Since(start).Seconds())
		s.metrics.ResponseCodeCounts.WithLabelValues(
			strconv.Itoa(rw.statusCode),
			r.Method,
		).Inc()
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.wroteHeader = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
