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
	"fmt"
	"net"
	"time"
)

// TraceID is a 128-bit trace identifier, rendered as 16 or 32 lower-hex
// characters depending on whether the high bits are set.
type TraceID struct {
	High uint64
	Low  uint64
}

func (t TraceID) String() string {
	if t.High == 0 {
		return fmt.Sprintf("%016x", t.Low)
	}
	return fmt.Sprintf("%016x%016x", t.High, t.Low)
}

// IsValid reports whether the trace ID has at least one non-zero bit.
func (t TraceID) IsValid() bool {
	return t.High != 0 || t.Low != 0
}

// ID is a 64-bit span identifier.
type ID uint64

func (i ID) String() string {
	return fmt.Sprintf("%016x", uint64(i))
}

// Kind clarifies the relationship between the local and remote endpoint of
// a span, using the Zipkin span kind vocabulary.
type Kind string

// Available span kinds.
const (
	KindClient   Kind = "CLIENT"
	KindServer   Kind = "SERVER"
	KindProducer Kind = "PRODUCER"
	KindConsumer Kind = "CONSUMER"
)

// Endpoint describes the network context of a service involved in a span.
type Endpoint struct {
	ServiceName string
	IPv4        net.IP
	IPv6        net.IP
	Port        uint16
}

// Annotation is a timed event explaining latency within a span.
type Annotation struct {
	Timestamp time.Time
	Value     string
}

// Span is a finished unit of work produced by the tracing runtime. Once a
// span reaches the pipeline it is treated as immutable: handlers work on a
// MutableSpan copy and the original is never written to.
type Span struct {
	TraceID        TraceID
	ID             ID
	ParentID       ID
	Name           string
	Kind           Kind
	Timestamp      time.Time
	Duration       time.Duration
	LocalEndpoint  *Endpoint
	RemoteEndpoint *Endpoint
	Tags           map[string]string
	Annotations    []Annotation
	Debug          bool

	// Shared marks a server span that reuses the ids of its client span.
	Shared bool
}

// MutableSpan is the working view of a span during one handler-chain pass.
// It starts as a deep copy of the finished span, so handler mutations stay
// invisible unless the chain keeps the span. A MutableSpan is owned by the
// chain and must not be retained after the handler returns.
type MutableSpan struct {
	span Span
}

func newMutableSpan(span *Span) *MutableSpan {
	m := &MutableSpan{span: *span}
	m.span.Tags = make(map[string]string, len(span.Tags))
	for k, v := range span.Tags {
		m.span.Tags[k] = v
	}
	m.span.Annotations = append([]Annotation(nil), span.Annotations...)
	return m
}

// Name returns the current span name.
func (m *MutableSpan) Name() string {
	return m.span.Name
}

// SetName replaces the span name.
func (m *MutableSpan) SetName(name string) {
	m.span.Name = name
}

// Tag returns the value of the named tag, or "" when absent.
func (m *MutableSpan) Tag(key string) string {
	return m.span.Tags[key]
}

// SetTag adds or replaces a tag.
func (m *MutableSpan) SetTag(key, value string) {
	m.span.Tags[key] = value
}

// DeleteTag removes a tag if present.
func (m *MutableSpan) DeleteTag(key string) {
	delete(m.span.Tags, key)
}

// Annotate appends a timed event to the span.
func (m *MutableSpan) Annotate(t time.Time, value string) {
	m.span.Annotations = append(m.span.Annotations, Annotation{Timestamp: t, Value: value})
}

// TraceID returns the trace identifier. Identity fields are read-only:
// handlers may rewrite what a span says, never which trace it belongs to.
func (m *MutableSpan) TraceID() TraceID {
	return m.span.TraceID
}

// ID returns the span identifier.
func (m *MutableSpan) ID() ID {
	return m.span.ID
}

// freeze returns the immutable form of the mutated span.
func (m *MutableSpan) freeze() *Span {
	frozen := m.span
	return &frozen
}
