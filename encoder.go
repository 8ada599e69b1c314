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
	"bytes"
	"strings"
)

// EncoderVersion is the wire serialization format for spans. It is selected
// once at startup and shared read-only for the process lifetime.
type EncoderVersion int

const (
	// JSONV1 is the legacy Zipkin format: flat annotations plus
	// binaryAnnotations carrying the tags and the endpoint.
	JSONV1 EncoderVersion = iota + 1

	// JSONV2 is the structured Zipkin format with an explicit localEndpoint
	// and a tag map. This is the default.
	JSONV2
)

func (v EncoderVersion) String() string {
	switch v {
	case JSONV1:
		return "JSON_V1"
	case JSONV2:
		return "JSON_V2"
	}
	return "UNKNOWN"
}

// Path returns the collector path segment HTTP-style transports POST to for
// this encoding.
func (v EncoderVersion) Path() string {
	if v == JSONV1 {
		return "/api/v1/spans"
	}
	return "/api/v2/spans"
}

// SelectEncoderVersion maps the configured encoder property value to an
// EncoderVersion. The empty value defaults to JSONV2, matching is
// case-insensitive, and an unrecognized value is a ConfigurationError so
// that a typo never silently changes the wire format.
func SelectEncoderVersion(value string) (EncoderVersion, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "":
		return JSONV2, nil
	case "JSON_V1":
		return JSONV1, nil
	case "JSON_V2":
		return JSONV2, nil
	}
	return 0, NewConfigurationError("unknown encoder version %q", value)
}

// Encoder serializes a single span into the selected wire format.
type Encoder interface {
	Encode(span *Span) ([]byte, error)
}

// NewEncoder creates the encoder for the given version. localEndpoint
// describes the reporting process and is stamped on spans that do not carry
// their own local endpoint.
func NewEncoder(version EncoderVersion, localEndpoint *Endpoint) (Encoder, error) {
	switch version {
	case JSONV1:
		return &jsonV1Encoder{localEndpoint: localEndpoint}, nil
	case JSONV2:
		return &jsonV2Encoder{localEndpoint: localEndpoint}, nil
	}
	return nil, NewConfigurationError("unknown encoder version %q", version)
}

// EncodeList concatenates individually encoded spans into the JSON list body
// Zipkin collectors consume, regardless of which transport carries it.
func EncodeList(spans [][]byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, span := range spans {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(span)
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
