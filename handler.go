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

import "fmt"

// SpanHandler post-processes a finished span before it is queued for
// export. Handlers run synchronously on the goroutine that finished the
// span, so they must be cheap; long-running work belongs on the
// asynchronous path, offloaded by the handler itself.
type SpanHandler interface {
	// Handle may mutate the span. Returning false drops the span: it is
	// never exported and no later handler sees it.
	Handle(span *MutableSpan) bool
}

// SpanHandlerFunc is an adapter allowing a plain function as a SpanHandler.
type SpanHandlerFunc func(span *MutableSpan) bool

// Handle calls f(span).
func (f SpanHandlerFunc) Handle(span *MutableSpan) bool {
	return f(span)
}

// handlerChain runs handlers strictly in registration order. The chain is
// fixed after startup.
type handlerChain struct {
	handlers []SpanHandler
	logger   Logger
	metrics  *Metrics
}

func newHandlerChain(handlers []SpanHandler, logger Logger, metrics *Metrics) *handlerChain {
	return &handlerChain{
		handlers: append([]SpanHandler(nil), handlers...),
		logger:   logger,
		metrics:  metrics,
	}
}

// process runs the chain over a mutable copy of span and freezes the result.
// It returns nil when any handler dropped the span.
func (c *handlerChain) process(span *Span) *Span {
	if len(c.handlers) == 0 {
		return span
	}
	mutable := newMutableSpan(span)
	for _, handler := range c.handlers {
		if !c.invoke(handler, mutable) {
			c.metrics.SpansDroppedByHandler.Inc(1)
			return nil
		}
	}
	return mutable.freeze()
}

// invoke isolates a panicking handler: the span in progress is dropped and
// the chain stays healthy for the next span.
func (c *handlerChain) invoke(handler SpanHandler, span *MutableSpan) (keep bool) {
	defer func() {
		if r := recover(); r != nil {
			c.metrics.HandlerPanics.Inc(1)
			c.logger.Error(fmt.Sprintf("span handler panicked, dropping span %s: %v", span.ID(), r))
			keep = false
		}
	}()
	return handler.Handle(span)
}
