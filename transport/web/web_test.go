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

package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zipkinreport "github.com/openzipkin-contrib/zipkin-report-go"
)

type recordedRequest struct {
	path        string
	contentType string
	body        string
}

type collector struct {
	server *httptest.Server
	status int

	lock     sync.Mutex
	requests []recordedRequest
}

func newCollector(status int) *collector {
	c := &collector{status: status}
	c.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c.lock.Lock()
		c.requests = append(c.requests, recordedRequest{
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		})
		c.lock.Unlock()
		w.WriteHeader(c.status)
	}))
	return c
}

func (c *collector) Requests() []recordedRequest {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]recordedRequest(nil), c.requests...)
}

func TestSendPostsToVersionedPath(t *testing.T) {
	c := newCollector(http.StatusAccepted)
	defer c.server.Close()

	for _, test := range []struct {
		version zipkinreport.EncoderVersion
		path    string
	}{
		{zipkinreport.JSONV1, "/api/v1/spans"},
		{zipkinreport.JSONV2, "/api/v2/spans"},
	} {
		sender, err := NewSender(c.server.URL, test.version)
		require.NoError(t, err)

		err = sender.Send(context.Background(), [][]byte{[]byte(`{"name":"a"}`), []byte(`{"name":"b"}`)})
		require.NoError(t, err)
		require.NoError(t, sender.Close())
	}

	requests := c.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "/api/v1/spans", requests[0].path)
	assert.Equal(t, "/api/v2/spans", requests[1].path)
	assert.Equal(t, "application/json", requests[0].contentType)
	assert.Equal(t, `[{"name":"a"},{"name":"b"}]`, requests[0].body)
}

func TestSendJoinsBasePathWithTrailingSlash(t *testing.T) {
	sender, err := NewSender("http://zipkin.example.com:9411/", zipkinreport.JSONV2)
	require.NoError(t, err)
	assert.Equal(t, "http://zipkin.example.com:9411/api/v2/spans", sender.URL())

	sender, err = NewSender("http://zipkin.example.com:9411/proxy", zipkinreport.JSONV1)
	require.NoError(t, err)
	assert.Equal(t, "http://zipkin.example.com:9411/proxy/api/v1/spans", sender.URL())
}

func TestNewSenderRejectsMalformedURL(t *testing.T) {
	for _, baseURL := range []string{"://nope", "ftp://zipkin:9411", "just-a-host"} {
		_, err := NewSender(baseURL, zipkinreport.JSONV2)
		assert.Error(t, err, baseURL)
	}
}

func TestSendReportsCollectorError(t *testing.T) {
	c := newCollector(http.StatusInternalServerError)
	defer c.server.Close()

	sender, err := NewSender(c.server.URL, zipkinreport.JSONV2)
	require.NoError(t, err)
	defer sender.Close()

	err = sender.Send(context.Background(), [][]byte{[]byte(`{}`)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestSendEmptyBatchIsNoop(t *testing.T) {
	c := newCollector(http.StatusAccepted)
	defer c.server.Close()

	sender, err := NewSender(c.server.URL, zipkinreport.JSONV2)
	require.NoError(t, err)
	defer sender.Close()

	require.NoError(t, sender.Send(context.Background(), nil))
	assert.Empty(t, c.Requests())
}

func TestSendHonorsContext(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	sender, err := NewSender(server.URL, zipkinreport.JSONV2, HTTPTimeout(time.Minute))
	require.NoError(t, err)
	defer sender.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = sender.Send(ctx, [][]byte{[]byte(`{}`)})
	assert.Error(t, err)
}
