// Copyright (c) 2026 The OpenZipkin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uber/jaeger-lib/metrics"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"

	zipkinreport "github.com/openzipkin-contrib/zipkin-report-go"
)

// Option is a function that sets some option on the pipeline being built.
type Option func(o *Options)

// Options control behavior of the pipeline beyond what the Configuration
// struct carries.
type Options struct {
	logger         zipkinreport.Logger
	metricsFactory metrics.Factory
	handlers       []zipkinreport.SpanHandler
}

// Logger can be provided to log reporter errors, as well as to log spans if
// Configuration.LogSpans is set.
func Logger(logger zipkinreport.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// Metrics creates an Option that sets the metrics factory used to emit
// pipeline statistics.
func Metrics(factory metrics.Factory) Option {
	return func(o *Options) {
		o.metricsFactory = factory
	}
}

// PrometheusMetrics creates an Option that emits pipeline statistics to the
// given Prometheus registerer.
func PrometheusMetrics(registerer prometheus.Registerer) Option {
	return func(o *Options) {
		o.metricsFactory = jprom.New(jprom.WithRegisterer(registerer))
	}
}

// Handler creates an Option that registers a span handler. Handlers run in
// registration order.
func Handler(handler zipkinreport.SpanHandler) Option {
	return func(o *Options) {
		o.handlers = append(o.handlers, handler)
	}
}

func applyOptions(options []Option) Options {
	o := Options{}
	for _, option := range options {
		option(&o)
	}
	if o.logger == nil {
		o.logger = zipkinreport.NullLogger
	}
	if o.metricsFactory == nil {
		o.metricsFactory = metrics.NullFactory
	}
	return o
}
