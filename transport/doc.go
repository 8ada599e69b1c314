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

// Package transport groups the sender implementations that can deliver
// encoded span batches out of process: direct HTTP to a collector (web),
// Kafka and RabbitMQ. Each subpackage provides one zipkinreport.Sender and
// is registered as a transport candidate by the config package.
//
// Implementations are not required to serialize concurrent Sends
// themselves; the remote reporter flushes batches from a single goroutine.
package transport
