package producer

import (
	"context"

	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewProducerModule provides Producer. Brokers are awaited on start and outstanding
// messages flushed on stop.
func NewProducerModule() fx.Option {
	return fx.Provide(
		provideProducer,
	)
}

func provideProducer(lc fx.Lifecycle, log *zap.Logger, conf config.Config) (Producer, error) {
	log = log.With(zap.String("component", "producer"))

	kp, err := newKafkaProducer(conf)
	if err != nil {
		return nil, err
	}

	p := newProducer(kp, log)
	p.deliveryTimeout = conf.ProducerConfig.DeliveryTimeout

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return waitForBrokers(ctx, kp, log,
				conf.ProducerConfig.ReadinessTimeoutSeconds,
				conf.ProducerConfig.FailOnBrokerError,
			)
		},
		OnStop: func(ctx context.Context) error {
			if left := p.Flush(conf.ProducerConfig.FlushTimeout); left > 0 {
				log.Warn("messages left unflushed", zap.Int("count", left))
			}
			p.Close()
			return nil
		},
	})

	return p, nil
}
