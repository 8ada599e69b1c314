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

	zipkinmodel "github.com/openzipkin/zipkin-go/model"
)

// jsonV2Encoder writes spans in the structured Zipkin V2 JSON format by
// converting to the zipkin-go span model, which owns the wire representation.
type jsonV2Encoder struct {
	localEndpoint *Endpoint
}

func (e *jsonV2Encoder) Encode(span *Span) ([]byte, error) {
	return json.Marshal(e.buildV2Span(span))
}

func (e *jsonV2Encoder) buildV2Span(span *Span) *zipkinmodel.SpanModel {
	parentID := zipkinmodel.ID(span.ParentID)
	var ptrParentID *zipkinmodel.ID
	if parentID != 0 {
		ptrParentID = &parentID
	}

	local := span.LocalEndpoint
	if local == nil {
		local = e.localEndpoint
	}

	tags := make(map[string]string, len(span.Tags))
	for k, v := range span.Tags {
		tags[k] = v
	}

	return &zipkinmodel.SpanModel{
		SpanContext: zipkinmodel.SpanContext{
			TraceID: zipkinmodel.TraceID{
				High: span.TraceID.High,
				Low:  span.TraceID.Low,
			},
			ID:       zipkinmodel.ID(span.ID),
			ParentID: ptrParentID,
			Debug:    span.Debug,
		},
		Name:           span.Name,
		Kind:           zipkinmodel.Kind(span.Kind),
		Timestamp:      span.Timestamp,
		Duration:       span.Duration,
		Shared:         span.Shared,
		LocalEndpoint:  buildV2Endpoint(local),
		RemoteEndpoint: buildV2Endpoint(span.RemoteEndpoint),
		Annotations:    buildV2Annotations(span),
		Tags:           tags,
	}
}

func buildV2Annotations(span *Span) []zipkinmodel.Annotation {
	annotations := make([]zipkinmodel.Annotation, 0, len(span.Annotations))
	for _, a := range span.Annotations {
		annotations = append(annotations, zipkinmodel.Annotation{
			Timestamp: a.Timestamp,
			Value:     a.Value,
		})
	}
	return annotations
}

func buildV2Endpoint(endpoint *Endpoint) *zipkinmodel.Endpoint {
	if endpoint == nil {
		return nil
	}
	return &zipkinmodel.Endpoint{
		ServiceName: endpoint.ServiceName,
		IPv4:        endpoint.IPv4,
		IPv6:        endpoint.IPv6,
		Port:        endpoint.Port,
	}
}
