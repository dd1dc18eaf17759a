package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sokol111/s3-listener/pkg/core"
	"github.com/Sokol111/s3-listener/pkg/listener"
	"github.com/Sokol111/s3-listener/pkg/modules"
	"github.com/Sokol111/s3-listener/pkg/observability"
	"github.com/Sokol111/s3-listener/pkg/storage"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// service is what a command needs from the started fx app.
type service struct {
	app        *fx.App
	dispatcher *listener.Dispatcher
	accessor   *storage.Accessor
	tracer     trace.TracerProvider
	meter      metric.MeterProvider
	log        *zap.Logger
}

func appOptions(flags *rootFlags, extra ...fx.Option) []fx.Option {
	opts := []fx.Option{
		modules.NewCoreModule(core.WithConfigFile(flags.configFile)),
		modules.NewObservabilityModule(),
		modules.NewStorageModule(),
		modules.NewEventsModule(),
		modules.NewListenerModule(),
	}
	if flags.kafka {
		opts = append(opts, modules.NewKafkaEventsModule())
	}
	return append(opts, extra...)
}

func startService(ctx context.Context, flags *rootFlags) (*service, error) {
	svc := &service{}
	svc.app = fx.New(appOptions(flags,
		fx.Populate(&svc.dispatcher, &svc.accessor, &svc.tracer, &svc.meter, &svc.log),
	)...)

	if err := svc.app.Err(); err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	if err := svc.app.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start application: %w", err)
	}
	return svc, nil
}

// flush pushes buffered spans and metrics before the execution environment freezes.
func (svc *service) flush(ctx context.Context) {
	if err := observability.Flush(ctx, svc.tracer, svc.meter); err != nil {
		svc.log.Warn("failed to flush telemetry", zap.Error(err))
	}
}

func (svc *service) stop(ctx context.Context) error {
	if err := svc.app.Stop(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return nil
}

// handle dispatches raw with the built-in handler and flushes telemetry afterwards.
func (svc *service) handle(ctx context.Context, raw []byte) error {
	defer svc.flush(ctx)
	return svc.dispatcher.Handle(ctx, objectLoggerFactory(svc.accessor), raw)
}
