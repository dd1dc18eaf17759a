// Package observability wires OpenTelemetry tracing and metrics.
//
//	// Loads the "observability" section from viper
//	observability.NewObservabilityModule()
//
//	// Tests
//	observability.NewObservabilityModule(
//	    observability.WithoutTracing(),
//	    observability.WithoutMetrics(),
//	)
package observability

import (
	"github.com/Sokol111/s3-listener/pkg/observability/config"
	"github.com/Sokol111/s3-listener/pkg/observability/metrics"
	"github.com/Sokol111/s3-listener/pkg/observability/tracing"
	"go.uber.org/fx"
)

type observabilityOptions struct {
	config         *config.Config
	disableTracing bool
	disableMetrics bool
}

// Option configures the observability module.
type Option func(*observabilityOptions)

// WithConfig provides a static Config instead of reading viper.
func WithConfig(cfg config.Config) Option {
	return func(opts *observabilityOptions) {
		opts.config = &cfg
	}
}

// WithoutTracing disables tracing regardless of configuration.
func WithoutTracing() Option {
	return func(opts *observabilityOptions) {
		opts.disableTracing = true
	}
}

// WithoutMetrics disables metrics regardless of configuration.
func WithoutMetrics() Option {
	return func(opts *observabilityOptions) {
		opts.disableMetrics = true
	}
}

// NewObservabilityModule provides trace.TracerProvider and metric.MeterProvider.
func NewObservabilityModule(opts ...Option) fx.Option {
	options := &observabilityOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return fx.Options(
		configModule(options),
		tracing.NewTracingModule(),
		metrics.NewMetricsModule(),
	)
}

func configModule(opts *observabilityOptions) fx.Option {
	var configOpts []config.Option
	if opts.config != nil {
		configOpts = append(configOpts, config.WithConfig(*opts.config))
	}
	if opts.disableTracing {
		configOpts = append(configOpts, config.WithDisableTracing())
	}
	if opts.disableMetrics {
		configOpts = append(configOpts, config.WithDisableMetrics())
	}
	return config.NewObservabilityConfigModule(configOpts...)
}
