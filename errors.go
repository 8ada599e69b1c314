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

	"github.com/pkg/errors"
)

// ConfigurationError reports unresolved or contradictory startup
// configuration, such as an unknown encoder version or a transport override
// naming an unavailable candidate. It is fatal: callers are expected to
// abort initialization rather than fall back to a default.
type ConfigurationError struct {
	reason string
	cause  error
}

func (e *ConfigurationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("zipkinreport: %s: %v", e.reason, e.cause)
	}
	return "zipkinreport: " + e.reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.cause
}

// NewConfigurationError creates a ConfigurationError with a formatted
// reason.
func NewConfigurationError(format string, args ...interface{}) error {
	return &ConfigurationError{reason: fmt.Sprintf(format, args...)}
}

func wrapConfigurationError(cause error, format string, args ...interface{}) error {
	return &ConfigurationError{reason: fmt.Sprintf(format, args...), cause: cause}
}

// IsConfigurationError reports whether err, or any error it wraps, is a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
