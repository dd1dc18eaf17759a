package producer

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"go.uber.org/zap"
)

const metadataTimeoutMs = 5000

var errNoBrokers = errors.New("metadata lists no brokers")

// metadataProvider is the interface for getting Kafka metadata.
type metadataProvider interface {
	GetMetadata(topic *string, allTopics bool, timeoutMs int) (*kafka.Metadata, error)
}

func waitForBrokers(ctx context.Context, p metadataProvider, log *zap.Logger, timeoutSec int, failOnError bool) error {
	log.Info("waiting for kafka brokers", zap.Int("timeout_seconds", timeoutSec))

	if timeoutSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSec)*time.Second)
		defer cancel()
	}

	if err := pollBrokers(ctx, p); err != nil {
		if failOnError {
			return err
		}
		log.Warn("brokers not ready, continuing", zap.Error(err))
	}

	log.Info("producer ready")
	return nil
}

// pollBrokers retries until metadata lists at least one broker. Only ctx ends the wait.
func pollBrokers(ctx context.Context, p metadataProvider) error {
	return backoff.Retry(func() error {
		meta, err := p.GetMetadata(nil, false, metadataTimeoutMs)
		if err != nil {
			return err
		}
		if len(meta.Brokers) == 0 {
			return errNoBrokers
		}
		return nil
	}, backoff.WithContext(newBrokerBackOff(), ctx))
}

func newBrokerBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 0
	return b
}
