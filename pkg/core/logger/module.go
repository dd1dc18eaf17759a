package logger

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type moduleOptions struct {
	config *Config
}

// Option configures the logging module.
type Option func(*moduleOptions)

// WithLoggerConfig uses cfg instead of reading the "logger" section (useful for tests).
func WithLoggerConfig(cfg Config) Option {
	return func(opts *moduleOptions) {
		opts.config = &cfg
	}
}

// NewZapLoggingModule provides *zap.Logger, the log *Session started on every dispatch and a
// shared *LogThrottler. The logger is synced on stop.
func NewZapLoggingModule(opts ...Option) fx.Option {
	options := &moduleOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return fx.Module("logger",
		fx.Supply(options),
		fx.Provide(
			provideConfig,
			provideLogger,
			NewSession,
			func(log *zap.Logger) *LogThrottler {
				return NewLogThrottler(log, 0)
			},
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx").WithOptions(zap.IncreaseLevel(zap.WarnLevel))}
		}),
	)
}

func provideConfig(opts *moduleOptions, v *viper.Viper) (Config, error) {
	if opts.config != nil {
		return *opts.config, nil
	}
	return newConfig(v)
}

func provideLogger(lc fx.Lifecycle, conf Config) (*zap.Logger, error) {
	logger, _, err := newLogger(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return ignoreSyncErr(logger.Sync())
		},
	})

	return logger, nil
}

// ignoreSyncErr drops the error returned when syncing stderr/stdout, which are not
// syncable on Linux.
func ignoreSyncErr(err error) error {
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
