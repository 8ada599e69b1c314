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
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Reporter is called with every span that survived the handler chain, to
// deliver the span to the collector, possibly asynchronously and/or with
// buffering.
type Reporter interface {
	// Report submits a span for delivery. It must not block the caller.
	Report(span *Span)

	// Close does a clean shutdown of the reporter, flushing any spans that
	// may be buffered in memory and releasing the underlying transport.
	Close()
}

// ------------------------------

type noopReporter struct{}

// NewNoopReporter creates a reporter that ignores all reported spans.
func NewNoopReporter() Reporter {
	return &noopReporter{}
}

// Report implements Report() method of Reporter by doing nothing.
func (r *noopReporter) Report(span *Span) {
	// noop
}

// Close implements Close() method of Reporter by doing nothing.
func (r *noopReporter) Close() {
	// noop
}

// ------------------------------

type loggingReporter struct {
	logger Logger
}

// NewLoggingReporter creates a reporter that logs all reported spans to the
// provided logger.
func NewLoggingReporter(logger Logger) Reporter {
	return &loggingReporter{logger}
}

// Report implements Report() method of Reporter by logging the span to the logger.
func (r *loggingReporter) Report(span *Span) {
	r.logger.Infof("Reporting span %s:%s %q", span.TraceID, span.ID, span.Name)
}

// Close implements Close() method of Reporter by doing nothing.
func (r *loggingReporter) Close() {
	// noop
}

// ------------------------------

// InMemoryReporter is used for testing, and simply collects spans in memory.
type InMemoryReporter struct {
	spans []*Span
	lock  sync.Mutex
}

// NewInMemoryReporter creates a reporter that stores spans in memory.
func NewInMemoryReporter() *InMemoryReporter {
	return &InMemoryReporter{
		spans: make([]*Span, 0, 10),
	}
}

// Report implements Report() method of Reporter by storing the span in the buffer.
func (r *InMemoryReporter) Report(span *Span) {
	r.lock.Lock()
	r.spans = append(r.spans, span)
	r.lock.Unlock()
}

// Close implements Close() method of Reporter by doing nothing.
func (r *InMemoryReporter) Close() {
	// noop
}

// SpansSubmitted returns the number of spans accumulated in the buffer.
func (r *InMemoryReporter) SpansSubmitted() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.spans)
}

// GetSpans returns accumulated spans as a copy of the buffer.
func (r *InMemoryReporter) GetSpans() []*Span {
	r.lock.Lock()
	defer r.lock.Unlock()
	copied := make([]*Span, len(r.spans))
	copy(copied, r.spans)
	return copied
}

// ------------------------------

type compositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a reporter that delegates to a list of reporters.
func NewCompositeReporter(reporters ...Reporter) Reporter {
	return &compositeReporter{reporters: reporters}
}

// Report implements Report() method of Reporter by delegating to each underlying reporter.
func (r *compositeReporter) Report(span *Span) {
	for _, reporter := range r.reporters {
		reporter.Report(span)
	}
}

// Close implements Close() method of Reporter by closing each underlying reporter.
func (r *compositeReporter) Close() {
	for _, reporter := range r.reporters {
		reporter.Close()
	}
}

// ------------------------------

const (
	defaultQueueSize     = 1000
	defaultBatchSize     = 100
	defaultBatchInterval = time.Second
	defaultSendTimeout   = 5 * time.Second
)

// ReporterOptions control behavior of the remote reporter.
type ReporterOptions struct {
	// QueueSize is the size of the internal queue where reported spans are
	// stored before they are processed in the background. When the queue is
	// full new spans are dropped, never blocking the caller.
	QueueSize int

	// BatchSize is the number of spans that triggers a flush of the current
	// batch regardless of the timer.
	BatchSize int

	// BatchInterval is the longest a span waits in an unfilled batch,
	// measured from the first span placed in it.
	BatchInterval time.Duration

	// SendTimeout bounds one delivery attempt to the sender.
	SendTimeout time.Duration

	// Logger is used to log errors of span submissions.
	Logger Logger

	// Metrics is used to record runtime stats.
	Metrics *Metrics
}

// remoteReporter buffers spans into batches on a background goroutine and
// flushes them through the resolved sender, either when a batch fills up or
// when the oldest span in it has waited BatchInterval. Batches flush in
// formation order; within a batch spans keep enqueue order. A failed send
// is logged and counted, not retried.
type remoteReporter struct {
	ReporterOptions
	sender      Sender
	encoder     Encoder
	queue       chan *Span
	queueLength int64
	closed      int64
	done        chan struct{}
	drained     sync.WaitGroup
	flushSignal chan *sync.WaitGroup

	// batch is owned by the processQueue goroutine
	batch []*Span
}

// NewRemoteReporter creates a reporter that sends spans out of process
// through the given sender, encoded with the given encoder.
func NewRemoteReporter(sender Sender, encoder Encoder, options *ReporterOptions) Reporter {
	if options == nil {
		options = &ReporterOptions{}
	}
	if options.QueueSize <= 0 {
		options.QueueSize = defaultQueueSize
	}
	if options.BatchSize <= 0 {
		options.BatchSize = defaultBatchSize
	}
	if options.BatchInterval <= 0 {
		options.BatchInterval = defaultBatchInterval
	}
	if options.SendTimeout <= 0 {
		options.SendTimeout = defaultSendTimeout
	}
	if options.Logger == nil {
		options.Logger = NullLogger
	}
	if options.Metrics == nil {
		options.Metrics = NewNullMetrics()
	}

	reporter := &remoteReporter{
		ReporterOptions: *options,
		sender:          sender,
		encoder:         encoder,
		queue:           make(chan *Span, options.QueueSize),
		done:            make(chan struct{}),
		flushSignal:     make(chan *sync.WaitGroup),
		batch:           make([]*Span, 0, options.BatchSize),
	}
	reporter.drained.Add(1)
	go reporter.processQueue()
	return reporter
}

// Report implements Report() method of Reporter. It passes the span to a
// background goroutine for batching and submission. The enqueue path never
// blocks and never panics: when the queue is full, or the reporter is
// already closed, the span is dropped and counted.
func (r *remoteReporter) Report(span *Span) {
	if atomic.LoadInt64(&r.closed) == 1 {
		r.Metrics.SpansDroppedQueueFull.Inc(1)
		return
	}
	select {
	case r.queue <- span:
		atomic.AddInt64(&r.queueLength, 1)
	default:
		r.Metrics.SpansDroppedQueueFull.Inc(1)
	}
}

// Close implements Close() method of Reporter. It drains the queue,
// flushes the remaining batch and closes the sender. No delivery is
// guaranteed for spans reported after Close begins.
func (r *remoteReporter) Close() {
	if !atomic.CompareAndSwapInt64(&r.closed, 0, 1) {
		return
	}
	close(r.done)
	r.drained.Wait()
	if err := r.sender.Close(); err != nil {
		r.Logger.Error(errors.Wrap(err, "failed to close sender").Error())
	}
}

// processQueue is the single writer to the sender: it accumulates spans
// into the current batch and flushes on size, on the linger timer armed
// when the batch receives its first span, or on shutdown.
func (r *remoteReporter) processQueue() {
	defer r.drained.Done()

	linger := time.NewTimer(r.BatchInterval)
	if !linger.Stop() {
		<-linger.C
	}
	lingerArmed := false

	disarm := func() {
		if lingerArmed && !linger.Stop() {
			<-linger.C
		}
		lingerArmed = false
	}

	for {
		select {
		case span := <-r.queue:
			atomic.AddInt64(&r.queueLength, -1)
			if len(r.batch) == 0 {
				linger.Reset(r.BatchInterval)
				lingerArmed = true
			}
			r.batch = append(r.batch, span)
			if len(r.batch) >= r.BatchSize {
				disarm()
				r.flush()
			}
		case <-linger.C:
			lingerArmed = false
			r.flush()
		case wg := <-r.flushSignal: // for testing
			disarm()
			r.flush()
			wg.Done()
		case <-r.done:
			disarm()
			r.drainQueue()
			r.flush()
			return
		}
	}
}

// drainQueue moves whatever is already enqueued into the batch, flushing
// full batches along the way.
func (r *remoteReporter) drainQueue() {
	for {
		select {
		case span := <-r.queue:
			atomic.AddInt64(&r.queueLength, -1)
			r.batch = append(r.batch, span)
			if len(r.batch) >= r.BatchSize {
				r.flush()
			}
		default:
			return
		}
	}
}

// flush encodes and sends the current batch. Ownership of the encoded
// bytes transfers to the sender.
func (r *remoteReporter) flush() {
	if len(r.batch) == 0 {
		return
	}
	spans := r.batch
	r.batch = make([]*Span, 0, r.BatchSize)

	encoded := make([][]byte, 0, len(spans))
	for _, span := range spans {
		data, err := r.encoder.Encode(span)
		if err != nil {
			r.Metrics.EncodingErrors.Inc(1)
			r.Logger.Error(errors.Wrapf(err, "failed to encode span %s", span.ID).Error())
			continue
		}
		encoded = append(encoded, data)
	}
	if len(encoded) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.SendTimeout)
	defer cancel()
	if err := r.sender.Send(ctx, encoded); err != nil {
		r.Metrics.BatchesFailed.Inc(1)
		r.Metrics.SpansFailed.Inc(int64(len(encoded)))
		r.Logger.Error(errors.Wrap(err, "failed to send span batch").Error())
	} else {
		r.Metrics.BatchesExported.Inc(1)
		r.Metrics.SpansExported.Inc(int64(len(encoded)))
	}
	r.Metrics.QueueLength.Update(atomic.LoadInt64(&r.queueLength))
}
