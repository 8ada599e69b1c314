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
	"encoding/json"
	"sort"
	"time"
)

// Zipkin V1 core annotation values.
const (
	clientSend     = "cs"
	clientRecv     = "cr"
	serverSend     = "ss"
	serverRecv     = "sr"
	messageSend    = "ms"
	messageRecv    = "mr"
	localComponent = "lc"
)

type v1Endpoint struct {
	ServiceName string `json:"serviceName"`
	IPv4        string `json:"ipv4,omitempty"`
	IPv6        string `json:"ipv6,omitempty"`
	Port        uint16 `json:"port,omitempty"`
}

type v1Annotation struct {
	Timestamp int64       `json:"timestamp"`
	Value     string      `json:"value"`
	Endpoint  *v1Endpoint `json:"endpoint,omitempty"`
}

type v1BinaryAnnotation struct {
	Key      string      `json:"key"`
	Value    string      `json:"value"`
	Endpoint *v1Endpoint `json:"endpoint,omitempty"`
}

type v1Span struct {
	TraceID  string `json:"traceId"`
	ID       string `json:"id"`
	ParentID string `json:"parentId,omitempty"`
	Name     string `json:"name"`
	// Timestamp and Duration are epoch microseconds, the V1 convention.
	Timestamp         int64                `json:"timestamp,omitempty"`
	Duration          int64                `json:"duration,omitempty"`
	Debug             bool                 `json:"debug,omitempty"`
	Annotations       []v1Annotation       `json:"annotations"`
	BinaryAnnotations []v1BinaryAnnotation `json:"binaryAnnotations"`
}

// jsonV1Encoder writes spans in the legacy Zipkin V1 JSON format, where the
// endpoint rides on every annotation and tags become binaryAnnotations.
type jsonV1Encoder struct {
	localEndpoint *Endpoint
}

func (e *jsonV1Encoder) Encode(span *Span) ([]byte, error) {
	return json.Marshal(e.buildV1Span(span))
}

func (e *jsonV1Encoder) buildV1Span(span *Span) *v1Span {
	host := buildV1Endpoint(span.LocalEndpoint)
	if host == nil {
		host = buildV1Endpoint(e.localEndpoint)
	}

	v1 := &v1Span{
		TraceID:           span.TraceID.String(),
		ID:                span.ID.String(),
		Name:              span.Name,
		Timestamp:         timeToMicros(span.Timestamp),
		Duration:          span.Duration.Microseconds(),
		Debug:             span.Debug,
		Annotations:       buildV1Annotations(span, host),
		BinaryAnnotations: buildV1BinaryAnnotations(span, host),
	}
	if span.ParentID != 0 {
		v1.ParentID = span.ParentID.String()
	}
	return v1
}

// buildV1Annotations derives the core cs/cr, sr/ss, ms, mr annotations from
// the span kind and appends the user annotations, all carrying the host
// endpoint.
func buildV1Annotations(span *Span, host *v1Endpoint) []v1Annotation {
	annotations := make([]v1Annotation, 0, 2+len(span.Annotations))

	start, end := coreAnnotationValues(span.Kind)
	if start != "" && !span.Timestamp.IsZero() {
		annotations = append(annotations, v1Annotation{
			Timestamp: timeToMicros(span.Timestamp),
			Value:     start,
			Endpoint:  host,
		})
	}
	if end != "" && !span.Timestamp.IsZero() && span.Duration > 0 {
		annotations = append(annotations, v1Annotation{
			Timestamp: timeToMicros(span.Timestamp.Add(span.Duration)),
			Value:     end,
			Endpoint:  host,
		})
	}
	for _, a := range span.Annotations {
		annotations = append(annotations, v1Annotation{
			Timestamp: timeToMicros(a.Timestamp),
			Value:     a.Value,
			Endpoint:  host,
		})
	}
	return annotations
}

func coreAnnotationValues(kind Kind) (start, end string) {
	switch kind {
	case KindClient:
		return clientSend, clientRecv
	case KindServer:
		return serverRecv, serverSend
	case KindProducer:
		return messageSend, ""
	case KindConsumer:
		return messageRecv, ""
	}
	return "", ""
}

func buildV1BinaryAnnotations(span *Span, host *v1Endpoint) []v1BinaryAnnotation {
	binary := make([]v1BinaryAnnotation, 0, len(span.Tags)+1)
	for _, key := range sortedTagKeys(span.Tags) {
		binary = append(binary, v1BinaryAnnotation{
			Key:      key,
			Value:    span.Tags[key],
			Endpoint: host,
		})
	}
	// A span with no kind and no tags would otherwise carry no endpoint at
	// all; the V1 convention is an "lc" binary annotation.
	if len(binary) == 0 && span.Kind == "" && host != nil {
		binary = append(binary, v1BinaryAnnotation{Key: localComponent, Value: "", Endpoint: host})
	}
	return binary
}

// sortedTagKeys keeps V1 output deterministic; map iteration order is not.
func sortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func buildV1Endpoint(endpoint *Endpoint) *v1Endpoint {
	if endpoint == nil {
		return nil
	}
	ep := &v1Endpoint{
		ServiceName: endpoint.ServiceName,
		Port:        endpoint.Port,
	}
	if endpoint.IPv4 != nil {
		ep.IPv4 = endpoint.IPv4.String()
	}
	if endpoint.IPv6 != nil {
		ep.IPv6 = endpoint.IPv6.String()
	}
	return ep
}

func timeToMicros(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Microsecond)
}
