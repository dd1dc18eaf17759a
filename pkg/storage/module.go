package storage

import (
	"context"

	appconfig "github.com/Sokol111/s3-listener/pkg/core/config"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewStorageModule provides ObjectGetter backed by S3 and the *Accessor handlers read through.
func NewStorageModule() fx.Option {
	return fx.Module("storage",
		fx.Provide(
			provideConfig,
			provideGetter,
			NewAccessor,
		),
	)
}

func provideConfig(v *viper.Viper, appCfg appconfig.AppConfig) (S3Config, error) {
	return loadS3Config(v, appCfg.Region)
}

func provideGetter(cfg S3Config, log *zap.Logger) (ObjectGetter, error) {
	getter, err := NewS3Getter(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	log.Info("s3 storage initialized",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.Endpoint),
		zap.Bool("pathStyle", cfg.UsePathStyle),
	)
	return getter, nil
}
