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

package zipkinreport

import (
	"github.com/uber/jaeger-lib/metrics"
)

// Metrics is a container of all stats emitted by the export pipeline.
type Metrics struct {
	// Number of spans that passed the handler chain and were queued
	SpansQueued metrics.Counter `metric:"spans" tags:"state=queued"`

	// Number of spans dropped because a handler returned keep=false
	SpansDroppedByHandler metrics.Counter `metric:"spans" tags:"state=dropped,cause=handler"`

	// Number of spans dropped because the reporter queue was full
	SpansDroppedQueueFull metrics.Counter `metric:"spans" tags:"state=dropped,cause=queue-full"`

	// Number of spans successfully handed to the sender
	SpansExported metrics.Counter `metric:"spans" tags:"state=exported"`

	// Number of spans in batches the sender failed to deliver
	SpansFailed metrics.Counter `metric:"spans" tags:"state=failed"`

	// Number of spans that could not be encoded
	EncodingErrors metrics.Counter `metric:"encoding-errors"`

	// Number of batches delivered to the sender
	BatchesExported metrics.Counter `metric:"batches" tags:"result=ok"`

	// Number of batches the sender failed to deliver
	BatchesFailed metrics.Counter `metric:"batches" tags:"result=err"`

	// Number of handler invocations that panicked
	HandlerPanics metrics.Counter `metric:"handler-panics"`

	// Current number of spans in the reporter queue
	QueueLength metrics.Gauge `metric:"queue-length"`
}

// NewMetrics creates a new Metrics struct and initializes its fields using
// the metrics factory.
func NewMetrics(factory metrics.Factory, globalTags map[string]string) *Metrics {
	m := &Metrics{}
	metrics.MustInit(m, factory.Namespace(metrics.NSOptions{Name: "zipkinreport", Tags: nil}), globalTags)
	return m
}

// NewNullMetrics creates metrics that are not recorded anywhere.
func NewNullMetrics() *Metrics {
	return NewMetrics(metrics.NullFactory, nil)
}
