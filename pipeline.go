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

// PipelineOption is a function that sets some option on the pipeline.
type PipelineOption func(p *Pipeline)

// PipelineOptions is a factory for all available PipelineOption's.
var PipelineOptions pipelineOptions

type pipelineOptions struct{}

// Handlers creates a PipelineOption that appends span handlers to the
// chain. Registration order is execution order; the chain is fixed once the
// pipeline is constructed.
func (pipelineOptions) Handlers(handlers ...SpanHandler) PipelineOption {
	return func(p *Pipeline) {
		p.handlers = append(p.handlers, handlers...)
	}
}

// Logger creates a PipelineOption that gives the pipeline a logger for
// handler and delivery errors.
func (pipelineOptions) Logger(logger Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Metrics creates a PipelineOption that initializes the pipeline metrics.
func (pipelineOptions) Metrics(metrics *Metrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = metrics
	}
}

// Pipeline is the finished-span export pipeline: the handler chain runs
// synchronously on the goroutine that finished the span, and surviving
// spans are queued on the reporter for asynchronous delivery.
type Pipeline struct {
	handlers []SpanHandler
	logger   Logger
	metrics  *Metrics
	chain    *handlerChain
	reporter Reporter
}

// NewPipeline creates a pipeline delivering spans through the given
// reporter.
func NewPipeline(reporter Reporter, options ...PipelineOption) *Pipeline {
	p := &Pipeline{reporter: reporter}
	for _, option := range options {
		option(p)
	}
	if p.logger == nil {
		p.logger = NullLogger
	}
	if p.metrics == nil {
		p.metrics = NewNullMetrics()
	}
	p.chain = newHandlerChain(p.handlers, p.logger, p.metrics)
	return p
}

// OnSpanFinished is the entry point invoked by the tracing runtime once per
// completed span. It is fire-and-forget: errors never propagate to the
// caller, and the call returns as soon as the span is processed and queued.
func (p *Pipeline) OnSpanFinished(span *Span) {
	kept := p.chain.process(span)
	if kept == nil {
		return
	}
	p.metrics.SpansQueued.Inc(1)
	p.reporter.Report(kept)
}

// Close shuts the pipeline down, draining buffered spans and releasing the
// underlying transport.
func (p *Pipeline) Close() {
	p.reporter.Close()
}
