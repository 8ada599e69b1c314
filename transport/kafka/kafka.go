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

// Package kafka delivers span batches to a Kafka topic consumed by the
// Zipkin collector. One batch becomes one message whose value is the JSON
// list body.
package kafka

import (
	"context"
	"sync"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	zipkinreport "github.com/openzipkin-contrib/zipkin-report-go"
)

// DefaultTopic is the topic the Zipkin collector consumes by default.
const DefaultTopic = "zipkin"

// Sender publishes encoded span batches to Kafka. The producer connection
// is established lazily on the first Send, so constructing the sender at
// startup does not require the brokers to be reachable yet.
type Sender struct {
	brokers []string
	topic   string
	config  *sarama.Config

	mu       sync.Mutex
	producer sarama.SyncProducer
}

// Option sets a parameter for the sender.
type Option func(s *Sender)

// Topic sets the destination topic. Defaults to DefaultTopic.
func Topic(topic string) Option {
	return func(s *Sender) {
		s.topic = topic
	}
}

// Config sets a custom sarama configuration for the producer.
func Config(config *sarama.Config) Option {
	return func(s *Sender) {
		s.config = config
	}
}

// NewSender creates a Kafka sender for the given broker addresses.
func NewSender(brokers []string, options ...Option) (*Sender, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no Kafka brokers configured")
	}
	sender := &Sender{
		brokers: brokers,
		topic:   DefaultTopic,
	}
	for _, option := range options {
		option(sender)
	}
	if sender.config == nil {
		config := sarama.NewConfig()
		config.Producer.RequiredAcks = sarama.WaitForLocal
		config.Producer.Return.Successes = true // required by SyncProducer
		sender.config = config
	}
	if err := sender.config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid Kafka producer configuration")
	}
	return sender, nil
}

// NewSenderFromProducer creates a sender around an existing producer. Used
// by tests with a mock producer.
func NewSenderFromProducer(producer sarama.SyncProducer, topic string) *Sender {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Sender{producer: producer, topic: topic}
}

// Topic returns the destination topic.
func (s *Sender) Topic() string {
	return s.topic
}

func (s *Sender) getProducer() (sarama.SyncProducer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.producer != nil {
		return s.producer, nil
	}
	producer, err := sarama.NewSyncProducer(s.brokers, s.config)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to Kafka brokers")
	}
	s.producer = producer
	return producer, nil
}

// Send implements Send() method of zipkinreport.Sender. sarama does not
// take a context; cancellation is bounded by the producer timeouts instead.
func (s *Sender) Send(ctx context.Context, encodedSpans [][]byte) error {
	if len(encodedSpans) == 0 {
		return nil
	}
	producer, err := s.getProducer()
	if err != nil {
		return err
	}
	message := &sarama.ProducerMessage{
		Topic: s.topic,
		Value: sarama.ByteEncoder(zipkinreport.EncodeList(encodedSpans)),
	}
	if _, _, err := producer.SendMessage(message); err != nil {
		return errors.Wrapf(err, "publishing span batch to Kafka topic %q", s.topic)
	}
	return nil
}

// Close implements Close() method of zipkinreport.Sender.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.producer == nil {
		return nil
	}
	err := s.producer.Close()
	s.producer = nil
	return err
}
