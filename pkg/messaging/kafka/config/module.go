package config

import (
	"fmt"

	appconfig "github.com/Sokol111/s3-listener/pkg/core/config"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewKafkaConfigModule provides Config loaded from the "kafka" section.
func NewKafkaConfigModule() fx.Option {
	return fx.Provide(
		newConfig,
	)
}

func newConfig(v *viper.Viper, logger *zap.Logger, appCfg appconfig.AppConfig) (Config, error) {
	cfg, err := loadConfig(v, appCfg.ServiceName)
	if err != nil {
		return cfg, err
	}

	logger.Info("loaded kafka config", zap.Any("config", cfg))
	return cfg, nil
}

func loadConfig(v *viper.Viper, serviceName string) (Config, error) {
	var cfg Config

	sub := v.Sub("kafka")
	if sub == nil {
		return cfg, fmt.Errorf("failed to load kafka config: section 'kafka' is missing")
	}
	if err := sub.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to load kafka config: %w", err)
	}

	applyDefaults(&cfg, serviceName)

	if err := validateConfig(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid kafka config: %w", err)
	}
	return cfg, nil
}
