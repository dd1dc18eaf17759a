package modules

import (
	"github.com/Sokol111/s3-listener/pkg/events"
	"github.com/Sokol111/s3-listener/pkg/listener"
	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/config"
	"github.com/Sokol111/s3-listener/pkg/messaging/kafka/producer"
	"go.uber.org/fx"
)

// NewEventsModule provides the event bus as the dispatcher's listener.Emitter
func NewEventsModule() fx.Option {
	return fx.Options(
		events.NewBusModule(),
		fx.Provide(func(bus *events.Bus) listener.Emitter { return bus }),
	)
}

// NewKafkaEventsModule forwards bus events to kafka: config, producer, forwarder
func NewKafkaEventsModule() fx.Option {
	return fx.Options(
		config.NewKafkaConfigModule(),
		producer.NewProducerModule(),
		events.NewKafkaForwardingModule(),
	)
}
