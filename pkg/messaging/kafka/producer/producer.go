package producer

import (
	"context"
	"fmt"
	"time"

	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/config"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

const defaultDeliveryTimeout = 10 * time.Second

type Producer interface {
	Produce(message *kafka.Message, deliveryChan chan kafka.Event) error
	// Deliver produces message and blocks until the broker acknowledges it, the delivery
	// timeout passes or ctx is done.
	Deliver(ctx context.Context, message *kafka.Message) error
	// Flush waits for outstanding messages and returns how many are still queued.
	Flush(timeout time.Duration) int
	Close()
}

// kafkaProducer is the subset of *kafka.Producer the wrapper needs.
type kafkaProducer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

type producer struct {
	producer        kafkaProducer
	log             *zap.Logger
	deliveryTimeout time.Duration
}

func newKafkaProducer(conf config.Config) (*kafka.Producer, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": conf.Brokers,
		"client.id":         conf.ProducerConfig.ClientID,
		"acks":              conf.ProducerConfig.Acks,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return p, nil
}

func newProducer(kp kafkaProducer, log *zap.Logger) *producer {
	return &producer{producer: kp, log: log, deliveryTimeout: defaultDeliveryTimeout}
}

func (p *producer) Produce(message *kafka.Message, deliveryChan chan kafka.Event) error {
	err := p.producer.Produce(message, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", message.TopicPartition, err)
	}
	return nil
}

func (p *producer) Deliver(ctx context.Context, message *kafka.Message) error {
	if p.deliveryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.deliveryTimeout)
		defer cancel()
	}

	delivery := make(chan kafka.Event, 1)
	if err := p.Produce(message, delivery); err != nil {
		return err
	}

	select {
	case ev := <-delivery:
		m, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery report: %v", ev)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("failed to deliver message to topic %s: %w", m.TopicPartition, m.TopicPartition.Error)
		}
		p.log.Debug("message delivered", zap.Stringer("partition", m.TopicPartition))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("delivery to topic %s not confirmed: %w", message.TopicPartition, ctx.Err())
	}
}

func (p *producer) Flush(timeout time.Duration) int {
	return p.producer.Flush(int(timeout.Milliseconds()))
}

func (p *producer) Close() {
	p.producer.Close()
}
