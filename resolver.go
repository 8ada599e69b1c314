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

import "strings"

// Candidate is one transport the process could use to deliver spans. The
// slice passed to ResolveSender is the precedence list: broker-backed
// transports are conventionally declared before the direct HTTP one so a
// configured broker wins automatically, and among equally eligible
// candidates the first declared wins.
type Candidate struct {
	// Name identifies the transport for the sender-type override. Names
	// must be unique within one resolution.
	Name string

	// Eligible reports whether the configuration required by this
	// transport is present. It must not dial anything.
	Eligible func() bool

	// Build constructs the sender. It is called at most once per process,
	// and only for the candidate that won resolution.
	Build func() (Sender, error)
}

// ResolveSender chooses exactly one transport candidate and builds its
// sender.
//
// When override is non-empty it names the candidate to use,
// case-insensitively; an override naming an ineligible or unknown candidate
// is a ConfigurationError rather than a silent fallback. Without an
// override the first eligible candidate in declaration order wins. No
// eligible candidate at all is a ConfigurationError: this is a
// startup-fatal condition, never retried.
func ResolveSender(override string, candidates []Candidate) (Sender, error) {
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		name := strings.ToLower(c.Name)
		if _, ok := seen[name]; ok {
			return nil, NewConfigurationError("duplicate transport candidate %q", c.Name)
		}
		seen[name] = struct{}{}
	}

	if override = strings.TrimSpace(override); override != "" {
		for _, c := range candidates {
			if !strings.EqualFold(c.Name, override) {
				continue
			}
			if !c.Eligible() {
				return nil, NewConfigurationError("requested transport %q unavailable: required configuration missing", override)
			}
			return buildSender(c)
		}
		return nil, NewConfigurationError("requested transport %q unavailable: no such candidate", override)
	}

	for _, c := range candidates {
		if c.Eligible() {
			return buildSender(c)
		}
	}
	return nil, NewConfigurationError("no transport resolvable: no eligible sender candidate")
}

func buildSender(c Candidate) (Sender, error) {
	sender, err := c.Build()
	if err != nil {
		return nil, wrapConfigurationError(err, "building %s sender", c.Name)
	}
	return sender, nil
}
