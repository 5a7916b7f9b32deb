// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"resenje.org/web"

	"github.com/ethersphere/aurakit/pkg/jsonhttp"
	"github.com/ethersphere/aurakit/pkg/logging"
	"github.com/ethersphere/aurakit/pkg/logging/httpaccess"
	m "github.com/ethersphere/aurakit/pkg/metrics"
)

func (s *server) setupRouting() {
	apiVersion := "v1" // only one api version exists, this should be configurable with more

	handle := func(router *mux.Router, path string, handler http.Handler) {
		router.Handle(path, handler)
		router.Handle("/"+apiVersion+path, handler)
	}

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(jsonhttp.NotFoundHandler)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Authority Round Kit")
	})

	router.Handle("/health", web.ChainHandlers(
		httpaccess.SetAccessLogLevelHandler(0),
		web.FinalHandler(jsonhttp.MethodHandler{
			"GET": http.HandlerFunc(s.healthHandler),
		}),
	))

	if s.MetricsRegistry != nil {
		router.Handle("/metrics", web.ChainHandlers(
			httpaccess.SetAccessLogLevelHandler(0),
			web.FinalHandler(m.Handler(s.MetricsRegistry)),
		))
	}

	handle(router, "/merkle/root", jsonhttp.MethodHandler{
		"POST": web.ChainHandlers(
			jsonhttp.NewMaxBodyBytesHandler(s.MaxBodySize),
			web.FinalHandlerFunc(s.merkleRootHandler),
		),
	})
	handle(router, "/merkle/root/raw", jsonhttp.MethodHandler{
		"POST": web.ChainHandlers(
			jsonhttp.NewMaxBodyBytesHandler(s.MaxBodySize),
			web.FinalHandlerFunc(s.merkleRootRawHandler),
		),
	})

	handle(router, "/proofs/authority-round", jsonhttp.MethodHandler{
		"POST": web.ChainHandlers(
			jsonhttp.NewMaxBodyBytesHandler(1024),
			web.FinalHandlerFunc(s.proofEncodeHandler),
		),
	})
	handle(router, "/proofs/authority-round/{envelope}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.proofDecodeHandler),
	})

	s.Handler = web.ChainHandlers(
		httpaccess.NewHTTPAccessLogHandler(s.Logger, logrus.InfoLevel, "api access"),
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(recoveryLogger{s.Logger}),
		),
		s.pageviewMetricsHandler,
		web.FinalHandler(router),
	)
}

// recoveryLogger reports recovered handler panics through the service
// logger.
type recoveryLogger struct {
	logger logging.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Errorf("api: panic: %s", fmt.Sprint(v...))
}
