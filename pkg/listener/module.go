package listener

import (
	"github.com/Sokol111/s3-listener/pkg/core/logger"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type dispatcherParams struct {
	fx.In
	Log            *zap.Logger
	Session        *logger.Session
	Throttler      *logger.LogThrottler
	Emitter        Emitter              `optional:"true"`
	TracerProvider trace.TracerProvider `optional:"true"`
	MeterProvider  metric.MeterProvider `optional:"true"`
}

// NewListenerModule provides *Dispatcher. The Emitter is optional, without one the ended
// signal goes nowhere.
func NewListenerModule() fx.Option {
	return fx.Module("listener",
		fx.Provide(newDispatcher),
	)
}

func newDispatcher(p dispatcherParams) *Dispatcher {
	opts := []Option{
		WithLogger(p.Log.Named("listener")),
		WithLogThrottler(p.Throttler),
		WithEmitter(p.Emitter),
		WithTracerProvider(p.TracerProvider),
		WithMeterProvider(p.MeterProvider),
	}
	if p.Session != nil {
		opts = append(opts, WithStarter(p.Session))
	}
	return NewDispatcher(opts...)
}
