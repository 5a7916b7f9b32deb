// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonhttp

import (
	"encoding/json"
	"errors"
	"net/http"

	"resenje.org/web"
)

var methodNotAllowedBody = `{"message":"` + http.StatusText(http.StatusMethodNotAllowed) + `","code":405}`

// MethodHandler routes requests to handlers by the request method. Other
// methods get a 405 JSON response and the Allow header.
type MethodHandler map[string]http.Handler

func (h MethodHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	web.HandleMethods(h, methodNotAllowedBody, DefaultContentTypeHeader, w, r)
}

// NotFoundHandler writes a 404 JSON response.
func NotFoundHandler(w http.ResponseWriter, _ *http.Request) {
	NotFound(w, nil)
}

// NewMaxBodyBytesHandler is an http middleware constructor that limits the
// maximal number of bytes that can be read from the request body. Requests
// that declare a larger body are rejected before the handler is called,
// others fail on read and can be answered with HandleBodyReadError.
func NewMaxBodyBytesHandler(limit int64) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				RequestEntityTooLarge(w, nil)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			h.ServeHTTP(w, r)
		})
	}
}

// HandleBodyReadError writes a 413 response if err is caused by a body
// exceeding the NewMaxBodyBytesHandler limit and reports whether it did.
func HandleBodyReadError(err error, w http.ResponseWriter) (responded bool) {
	if err == nil {
		return false
	}
	// http.MaxBytesReader returns an unexported error,
	// this is the only way to detect it
	if err.Error() == "http: request body too large" {
		RequestEntityTooLarge(w, nil)
		return true
	}
	return false
}

// ErrInvalidBody is returned by DecodeBody for bodies that are not a single
// JSON value.
var ErrInvalidBody = errors.New("invalid request body")

// DecodeBody decodes the JSON request body into v. On failure it writes
// the 413 or 400 response and returns the decoding error.
func DecodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if !HandleBodyReadError(err, w) {
			BadRequest(w, ErrInvalidBody)
		}
		return err
	}
	return nil
}
