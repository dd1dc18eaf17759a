package core

import (
	"time"

	"github.com/Sokol111/s3-listener/pkg/core/config"
	"github.com/Sokol111/s3-listener/pkg/core/logger"
	"go.uber.org/fx"
)

type coreOptions struct {
	appConfig     *config.AppConfig
	loggerConfig  *logger.Config
	configPath    string
	disableDotEnv bool
	disableConfig bool
}

// Option configures the core module.
type Option func(*coreOptions)

// WithAppConfig provides a static AppConfig (useful for tests).
func WithAppConfig(cfg config.AppConfig) Option {
	return func(opts *coreOptions) {
		opts.appConfig = &cfg
	}
}

// WithLoggerConfig provides a static logger Config (useful for tests).
func WithLoggerConfig(cfg logger.Config) Option {
	return func(opts *coreOptions) {
		opts.loggerConfig = &cfg
	}
}

// WithConfigFile reads path instead of CONFIG_FILE.
func WithConfigFile(path string) Option {
	return func(opts *coreOptions) {
		opts.configPath = path
	}
}

// WithoutEnvFile disables loading of the .env file.
func WithoutEnvFile() Option {
	return func(opts *coreOptions) {
		opts.disableDotEnv = true
	}
}

// WithoutConfigFile keeps configuration environment only.
func WithoutConfigFile() Option {
	return func(opts *coreOptions) {
		opts.disableConfig = true
	}
}

// NewCoreModule provides configuration, app identity and logging.
// Lifecycle timeouts stay short: a Lambda init phase is capped at ten seconds.
//
//	core.NewCoreModule(
//	    core.WithAppConfig(config.AppConfig{ServiceName: "test"}),
//	    core.WithLoggerConfig(logger.Config{Level: zapcore.DebugLevel}),
//	    core.WithoutEnvFile(),
//	    core.WithoutConfigFile(),
//	)
func NewCoreModule(opts ...Option) fx.Option {
	cfg := &coreOptions{}
	for _, opt := range opts {
		opt(cfg)
	}

	return fx.Options(
		fx.StartTimeout(8*time.Second),
		fx.StopTimeout(2*time.Second),

		dotEnvModule(cfg),
		viperModule(cfg),
		appConfigModule(cfg),
		loggerModule(cfg),
	)
}

func dotEnvModule(cfg *coreOptions) fx.Option {
	if cfg.disableDotEnv {
		return fx.Options()
	}
	return config.NewDotEnvModule()
}

func viperModule(cfg *coreOptions) fx.Option {
	if cfg.disableConfig {
		return config.NewViperModule(config.WithoutConfigFile())
	}
	return config.NewViperModule(config.WithConfigPath(cfg.configPath))
}

func appConfigModule(cfg *coreOptions) fx.Option {
	if cfg.appConfig != nil {
		return config.NewAppConfigModule(config.WithAppConfig(*cfg.appConfig))
	}
	return config.NewAppConfigModule()
}

func loggerModule(cfg *coreOptions) fx.Option {
	if cfg.loggerConfig != nil {
		return logger.NewZapLoggingModule(logger.WithLoggerConfig(*cfg.loggerConfig))
	}
	return logger.NewZapLoggingModule()
}
