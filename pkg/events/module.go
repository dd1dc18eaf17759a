package events

import (
	appconfig "github.com/Sokol111/s3-listener/pkg/core/config"
	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/producer"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewBusModule provides the in-process *Bus.
func NewBusModule() fx.Option {
	return fx.Module("events",
		fx.Provide(NewBus),
	)
}

// NewKafkaForwardingModule subscribes a KafkaForwarder to the bus. It needs producer.Producer.
func NewKafkaForwardingModule() fx.Option {
	return fx.Module("events-kafka",
		fx.Provide(loadKafkaConfig, provideForwarder),
		fx.Invoke(subscribeForwarder),
	)
}

func provideForwarder(p producer.Producer, appCfg appconfig.AppConfig, cfg KafkaConfig) *KafkaForwarder {
	return NewKafkaForwarder(p, cfg.Topic, appCfg.ServiceName)
}

func subscribeForwarder(bus *Bus, f *KafkaForwarder, cfg KafkaConfig, log *zap.Logger) {
	f.Subscribe(bus, cfg.Events...)
	log.Info("forwarding events to kafka", zap.String("topic", cfg.Topic), zap.Strings("events", cfg.Events))
}
