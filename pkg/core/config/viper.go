package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const envConfigFile = "CONFIG_FILE"

type viperOptions struct {
	configPath   string
	noConfigFile bool
}

// ViperOption configures the viper module.
type ViperOption func(*viperOptions)

// WithConfigPath reads path instead of CONFIG_FILE. An empty path is ignored.
func WithConfigPath(path string) ViperOption {
	return func(opts *viperOptions) {
		opts.configPath = path
	}
}

// WithoutConfigFile keeps viper backed by the environment only.
func WithoutConfigFile() ViperOption {
	return func(opts *viperOptions) {
		opts.noConfigFile = true
	}
}

// FilePath is the resolved configuration file, empty when none is loaded.
type FilePath string

// NewViperModule provides *viper.Viper. Keys can always be overridden from the environment:
// "storage.s3.region" is read from STORAGE_S3_REGION, dashes become underscores too.
// A Lambda is usually configured through the environment alone, so a missing CONFIG_FILE
// is not an error.
func NewViperModule(opts ...ViperOption) fx.Option {
	options := &viperOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return fx.Module("viper",
		fx.Supply(resolveConfigPath(options)),
		fx.Provide(newViper),
		fx.Invoke(func(logger *zap.Logger, v *viper.Viper) {
			logger.Debug("configuration loaded",
				zap.String("configFile", v.ConfigFileUsed()),
				zap.Strings("configKeys", v.AllKeys()),
			)
		}),
	)
}

func resolveConfigPath(opts *viperOptions) FilePath {
	switch {
	case opts.noConfigFile:
		return ""
	case opts.configPath != "":
		return FilePath(opts.configPath)
	default:
		return FilePath(os.Getenv(envConfigFile))
	}
}

func newViper(configFile FilePath) (*viper.Viper, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configFile == "" {
		return v, nil
	}

	v.SetConfigFile(string(configFile))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file [%s]: %w", configFile, err)
	}

	return v, nil
}
