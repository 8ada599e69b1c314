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
	"io"
)

// Sender abstracts the transport used to deliver encoded span batches out
// of process (direct HTTP, Kafka, RabbitMQ, ...). Exactly one Sender exists
// per process after resolution; it is created once at startup and closed on
// shutdown.
//
// A failed Send is reported by the caller and not retried here; transports
// with their own retry semantics implement them behind this interface.
type Sender interface {
	// Send delivers one batch of individually encoded spans. Spans in the
	// batch are already serialized in the wire format the sender was built
	// for. Ownership of the batch transfers to the sender.
	Send(ctx context.Context, encodedSpans [][]byte) error

	io.Closer
}
