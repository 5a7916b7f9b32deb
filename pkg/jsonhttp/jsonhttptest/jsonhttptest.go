// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonhttptest drives HTTP handlers from tests and checks their
// JSON responses.
package jsonhttptest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/ethersphere/aurakit/pkg/jsonhttp"
)

// Request sends a request to url and checks the response against the
// expectations set by opts. It returns the response headers.
func Request(t testing.TB, client *http.Client, method, url string, responseCode int, opts ...Option) http.Header {
	t.Helper()

	o := new(options)
	for _, opt := range opts {
		if err := opt.apply(o); err != nil {
			t.Fatal(err)
		}
	}

	req, err := http.NewRequest(method, url, o.requestBody)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != responseCode {
		t.Errorf("got response status %s, want %v %s", resp.Status, responseCode, http.StatusText(responseCode))
	}

	for key, want := range o.expectedResponseHeaders {
		if got := resp.Header.Get(key); got != want {
			t.Errorf("got header %s %q, want %q", key, got, want)
		}
	}

	got, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	switch {
	case o.expectedJSONResponse != nil:
		if v := resp.Header.Get("Content-Type"); v != jsonhttp.DefaultContentTypeHeader {
			t.Errorf("got content type %q, want %q", v, jsonhttp.DefaultContentTypeHeader)
		}
		want, err := json.Marshal(o.expectedJSONResponse)
		if err != nil {
			t.Fatal(err)
		}
		if got := bytes.TrimSpace(got); !bytes.Equal(got, want) {
			t.Errorf("got json response %q, want %q", string(got), string(want))
		}
	case o.unmarshalResponse != nil:
		if err := json.Unmarshal(got, o.unmarshalResponse); err != nil {
			t.Fatal(err)
		}
	case o.responseBody != nil:
		*o.responseBody = got
	case o.noResponseBody:
		if len(got) > 0 {
			t.Errorf("got response body %q, want none", string(got))
		}
	}
	return resp.Header
}

// WithRequestBody sets the raw request body.
func WithRequestBody(body io.Reader) Option {
	return optionFunc(func(o *options) error {
		o.requestBody = body
		return nil
	})
}

// WithJSONRequestBody sets the request body to the JSON encoding of r.
func WithJSONRequestBody(r interface{}) Option {
	return optionFunc(func(o *options) error {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("json encode request body: %w", err)
		}
		o.requestBody = bytes.NewReader(b)
		return nil
	})
}

func WithExpectedResponseHeader(key, value string) Option {
	return optionFunc(func(o *options) error {
		if o.expectedResponseHeaders == nil {
			o.expectedResponseHeaders = make(map[string]string)
		}
		o.expectedResponseHeaders[key] = value
		return nil
	})
}

// WithExpectedJSONResponse compares the trimmed response body with the JSON
// encoding of response.
func WithExpectedJSONResponse(response interface{}) Option {
	return optionFunc(func(o *options) error {
		o.expectedJSONResponse = response
		return nil
	})
}

// WithUnmarshalJSONResponse decodes the response body into response, which
// must be a pointer.
func WithUnmarshalJSONResponse(response interface{}) Option {
	return optionFunc(func(o *options) error {
		o.unmarshalResponse = response
		return nil
	})
}

func WithPutResponseBody(b *[]byte) Option {
	return optionFunc(func(o *options) error {
		o.responseBody = b
		return nil
	})
}

func WithNoResponseBody() Option {
	return optionFunc(func(o *options) error {
		o.noResponseBody = true
		return nil
	})
}

type options struct {
	requestBody             io.Reader
	expectedResponseHeaders map[string]string
	expectedJSONResponse    interface{}
	unmarshalResponse       interface{}
	responseBody            *[]byte
	noResponseBody          bool
}

type Option interface {
	apply(*options) error
}
type optionFunc func(*options) error

func (f optionFunc) apply(r *options) error { return f(r) }
