// Copyright 2020 The Swarm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics wraps the prometheus client so that services can declare
// their metrics as struct fields and expose them through a registry.
package metrics

import (
	"net/http"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is implemented by services exposing prometheus collectors.
type Collector interface {
	Metrics() []prometheus.Collector
}

func NewCounter(opts CounterOpts) Counter {
	return prometheus.NewCounter(opts)
}

func NewCounterVec(opts CounterOpts, names []string) *CounterVec {
	return prometheus.NewCounterVec(opts, names)
}

func NewHistogram(opts HistogramOpts) Histogram {
	return prometheus.NewHistogram(opts)
}

// NewRegistry returns a registry with the go runtime and process
// collectors already registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: Namespace,
		}),
	)
	return r
}

// Handler serves the registry in the prometheus exposition format.
func Handler(r *Registry) http.Handler {
	return promhttp.InstrumentMetricHandler(r, promhttp.HandlerFor(r, promhttp.HandlerOpts{}))
}

// PrometheusCollectorsFromFields returns all initialized exported fields of
// the struct i that implement prometheus.Collector.
func PrometheusCollectorsFromFields(i interface{}) (cs []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).CanInterface() {
			continue
		}
		if u, ok := v.Field(i).Interface().(prometheus.Collector); ok {
			cs = append(cs, u)
		}
	}
	return cs
}
