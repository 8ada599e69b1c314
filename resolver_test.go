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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedSender struct {
	name string
}

func (s *namedSender) Send(ctx context.Context, encodedSpans [][]byte) error { return nil }
func (s *namedSender) Close() error                                          { return nil }

// testCandidate returns a candidate whose build is counted, so tests can
// assert that losing candidates are never instantiated.
func testCandidate(name string, eligible bool, builds *int) Candidate {
	return Candidate{
		Name:     name,
		Eligible: func() bool { return eligible },
		Build: func() (Sender, error) {
			*builds++
			return &namedSender{name: name}, nil
		},
	}
}

func TestResolvePrecedenceOrder(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", true, &builds),
		testCandidate("kafka", true, &builds),
		testCandidate("web", true, &builds),
	}

	sender, err := ResolveSender("", candidates)
	require.NoError(t, err)
	assert.Equal(t, "rabbit", sender.(*namedSender).name)
	assert.Equal(t, 1, builds, "only the winning candidate must be built")
}

func TestResolveSkipsIneligible(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", false, &builds),
		testCandidate("kafka", false, &builds),
		testCandidate("web", true, &builds),
	}

	sender, err := ResolveSender("", candidates)
	require.NoError(t, err)
	assert.Equal(t, "web", sender.(*namedSender).name)
}

func TestResolveBrokerWinsOverWeb(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", false, &builds),
		testCandidate("kafka", true, &builds),
		testCandidate("web", true, &builds),
	}

	sender, err := ResolveSender("", candidates)
	require.NoError(t, err)
	assert.Equal(t, "kafka", sender.(*namedSender).name)
}

func TestResolveOverrideBeatsPrecedence(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", true, &builds),
		testCandidate("kafka", true, &builds),
		testCandidate("web", true, &builds),
	}

	sender, err := ResolveSender("web", candidates)
	require.NoError(t, err)
	assert.Equal(t, "web", sender.(*namedSender).name)
	assert.Equal(t, 1, builds)
}

func TestResolveOverrideCaseInsensitive(t *testing.T) {
	for _, override := range []string{"web", "WEB", "Web"} {
		var builds int
		candidates := []Candidate{
			testCandidate("rabbit", true, &builds),
			testCandidate("web", true, &builds),
		}
		sender, err := ResolveSender(override, candidates)
		require.NoError(t, err, override)
		assert.Equal(t, "web", sender.(*namedSender).name, override)
	}
}

func TestResolveOverrideIneligible(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", true, &builds),
		testCandidate("web", false, &builds),
	}

	_, err := ResolveSender("web", candidates)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), `requested transport "web" unavailable`)
	assert.Equal(t, 0, builds)
}

func TestResolveOverrideUnknownCandidate(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", true, &builds),
	}

	_, err := ResolveSender("carrier-pigeon", candidates)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, 0, builds)
}

func TestResolveNoEligibleCandidate(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("rabbit", false, &builds),
		testCandidate("kafka", false, &builds),
		testCandidate("web", false, &builds),
	}

	_, err := ResolveSender("", candidates)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "no transport resolvable")
}

func TestResolveBuildFailureIsConfigurationError(t *testing.T) {
	boom := errors.New("malformed endpoint")
	candidates := []Candidate{
		{
			Name:     "web",
			Eligible: func() bool { return true },
			Build:    func() (Sender, error) { return nil, boom },
		},
	}

	_, err := ResolveSender("", candidates)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.True(t, errors.Is(err, boom))
}

func TestResolveDuplicateCandidateName(t *testing.T) {
	var builds int
	candidates := []Candidate{
		testCandidate("web", true, &builds),
		testCandidate("WEB", true, &builds),
	}

	_, err := ResolveSender("", candidates)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "duplicate transport candidate")
}
