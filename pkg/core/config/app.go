package config

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	envAppEnv            = "APP_ENV"
	envAppServiceName    = "APP_SERVICE_NAME"
	envAppServiceVersion = "APP_SERVICE_VERSION"

	// Set by the Lambda runtime.
	envLambdaFunctionName    = "AWS_LAMBDA_FUNCTION_NAME"
	envLambdaFunctionVersion = "AWS_LAMBDA_FUNCTION_VERSION"
	envAWSRegion             = "AWS_REGION"
)

const (
	DefaultServiceName    = "s3-listener"
	DefaultServiceVersion = "dev"
	DefaultEnvironment    = "local"
)

// AppConfig identifies the running listener. It names the OpenTelemetry resource and
// becomes the source of the signals the listener publishes.
type AppConfig struct {
	ServiceName    string
	ServiceVersion string
	// Environment is the deployment environment (e.g. "local", "staging", "pro").
	Environment string
	// Region is the AWS region the function runs in, empty outside AWS.
	Region string
}

type appConfigOptions struct {
	config *AppConfig
}

// AppConfigOption configures the app config module.
type AppConfigOption func(*appConfigOptions)

// WithAppConfig supplies a static AppConfig instead of reading the environment.
func WithAppConfig(cfg AppConfig) AppConfigOption {
	return func(opts *appConfigOptions) {
		opts.config = &cfg
	}
}

// NewAppConfigModule provides AppConfig.
//
// Resolution order per field:
//   - service name: APP_SERVICE_NAME, AWS_LAMBDA_FUNCTION_NAME, "s3-listener"
//   - service version: APP_SERVICE_VERSION, AWS_LAMBDA_FUNCTION_VERSION, "dev"
//   - environment: APP_ENV, "local"
//   - region: AWS_REGION
func NewAppConfigModule(opts ...AppConfigOption) fx.Option {
	options := &appConfigOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return fx.Module("appconfig",
		fx.Provide(func() AppConfig {
			if options.config != nil {
				return *options.config
			}
			return newAppConfig()
		}),
		fx.Invoke(func(logger *zap.Logger, conf AppConfig) {
			logger.Info("loaded application configuration",
				zap.String("service", conf.ServiceName),
				zap.String("version", conf.ServiceVersion),
				zap.String("environment", conf.Environment),
				zap.String("region", conf.Region),
			)
		}),
	)
}

func newAppConfig() AppConfig {
	return AppConfig{
		ServiceName:    firstEnv(DefaultServiceName, envAppServiceName, envLambdaFunctionName),
		ServiceVersion: firstEnv(DefaultServiceVersion, envAppServiceVersion, envLambdaFunctionVersion),
		Environment:    firstEnv(DefaultEnvironment, envAppEnv),
		Region:         os.Getenv(envAWSRegion),
	}
}

// firstEnv returns the first non-empty variable among names, or fallback.
func firstEnv(fallback string, names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return fallback
}
