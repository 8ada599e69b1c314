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

package kafka

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSenderRequiresBrokers(t *testing.T) {
	_, err := NewSender(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Kafka brokers")
}

func TestNewSenderDefaults(t *testing.T) {
	sender, err := NewSender([]string{"broker-1:9092"})
	require.NoError(t, err)
	assert.Equal(t, DefaultTopic, sender.Topic())
	// no connection was made; closing an unconnected sender is a no-op
	require.NoError(t, sender.Close())
}

func TestNewSenderTopicOption(t *testing.T) {
	sender, err := NewSender([]string{"broker-1:9092"}, Topic("zipkin2"))
	require.NoError(t, err)
	assert.Equal(t, "zipkin2", sender.Topic())
}

func TestNewSenderRejectsInvalidConfig(t *testing.T) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.MaxMessageBytes = -1
	_, err := NewSender([]string{"broker-1:9092"}, Config(config))
	assert.Error(t, err)
}

func TestSendPublishesOneMessagePerBatch(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		if string(value) != `[{"name":"a"},{"name":"b"}]` {
			return errors.Errorf("unexpected message value %q", value)
		}
		return nil
	})

	sender := NewSenderFromProducer(producer, "zipkin2")
	assert.Equal(t, "zipkin2", sender.Topic())

	err := sender.Send(context.Background(), [][]byte{[]byte(`{"name":"a"}`), []byte(`{"name":"b"}`)})
	require.NoError(t, err)
	require.NoError(t, sender.Close())
}

func TestSendReportsProducerError(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	sender := NewSenderFromProducer(producer, "")
	assert.Equal(t, DefaultTopic, sender.Topic())

	err := sender.Send(context.Background(), [][]byte{[]byte(`{}`)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	require.NoError(t, sender.Close())
}

func TestSendEmptyBatchIsNoop(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	sender := NewSenderFromProducer(producer, DefaultTopic)
	require.NoError(t, sender.Send(context.Background(), nil))
	require.NoError(t, sender.Close())
}
