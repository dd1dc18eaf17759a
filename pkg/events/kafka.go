package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Sokol111/s3-listener/pkg/core/logger"
	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/producer"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Envelope is the Kafka message value of a forwarded signal.
type Envelope struct {
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// KafkaForwarder publishes signals to a Kafka topic, one message per signal, keyed by name.
type KafkaForwarder struct {
	producer producer.Producer
	topic    string
	source   string
	newID    func() string
	now      func() time.Time
}

func NewKafkaForwarder(p producer.Producer, topic, source string) *KafkaForwarder {
	return &KafkaForwarder{
		producer: p,
		topic:    topic,
		source:   source,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// Subscribe registers the forwarder on b for every name.
func (f *KafkaForwarder) Subscribe(b *Bus, names ...string) {
	for _, name := range names {
		b.On(name, f.Forward)
	}
}

// Forward is a Subscriber. It returns once the broker acknowledged the message.
func (f *KafkaForwarder) Forward(ctx context.Context, name string) error {
	envelope := Envelope{
		EventID:   f.newID(),
		Name:      name,
		Source:    f.source,
		CreatedAt: f.now().UTC(),
	}
	if id, ok := logger.SessionID(ctx); ok {
		envelope.SessionID = id
	}

	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", name, err)
	}

	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &f.topic, Partition: kafka.PartitionAny},
		Key:            []byte(name),
		Value:          value,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(envelope.EventID)},
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
	if err := f.producer.Deliver(ctx, msg); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("event forwarded to kafka",
		zap.String("event", name),
		zap.String("topic", f.topic),
		zap.String("event_id", envelope.EventID),
	)
	return nil
}
