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

// Package web delivers span batches directly to a Zipkin-compatible
// collector over HTTP. The collector path segment depends on the encoder
// version: /api/v1/spans for JSON_V1 bodies, /api/v2/spans for JSON_V2.
package web

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	zipkinreport "github.com/openzipkin-contrib/zipkin-report-go"
)

const defaultHTTPTimeout = 5 * time.Second

// Sender POSTs encoded span batches to the collector.
type Sender struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option sets a parameter for the sender.
type Option func(s *Sender)

// HTTPClient sets a custom http.Client to use.
func HTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

// HTTPTimeout sets the timeout used by the http client.
func HTTPTimeout(duration time.Duration) Option {
	return func(s *Sender) {
		s.timeout = duration
	}
}

// NewSender creates a sender posting to baseURL joined with the path for
// the given encoder version. A malformed base URL is reported here, at
// startup, not at first send.
func NewSender(baseURL string, version zipkinreport.EncoderVersion, options ...Option) (*Sender, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("invalid base URL %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.Errorf("invalid base URL %q: missing host", baseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + version.Path()

	sender := &Sender{
		url:     u.String(),
		timeout: defaultHTTPTimeout,
	}
	for _, option := range options {
		option(sender)
	}
	if sender.client == nil {
		sender.client = &http.Client{Timeout: sender.timeout}
	}
	return sender, nil
}

// URL returns the full collector URL the sender posts to.
func (s *Sender) URL() string {
	return s.url
}

// Send implements Send() method of zipkinreport.Sender. Any response status
// outside the 2xx range is an error; the batch is not retried here.
func (s *Sender) Send(ctx context.Context, encodedSpans [][]byte) error {
	if len(encodedSpans) == 0 {
		return nil
	}
	body := zipkinreport.EncodeList(encodedSpans)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building collector request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting span batch")
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("collector returned status %d", resp.StatusCode)
	}
	return nil
}

// Close implements Close() method of zipkinreport.Sender.
func (s *Sender) Close() error {
	s.client.CloseIdleConnections()
	return nil
}
