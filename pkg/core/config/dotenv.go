package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type dotEnvOptions struct {
	paths []string
}

// DotEnvOption configures the dotenv module.
type DotEnvOption func(*dotEnvOptions)

// WithDotEnvPath loads path instead of ".env". May be repeated; earlier files win.
func WithDotEnvPath(path string) DotEnvOption {
	return func(opts *dotEnvOptions) {
		opts.paths = append(opts.paths, path)
	}
}

// NewDotEnvModule loads .env files into the process environment. Loading happens when the
// module is built, before any provider reads the environment. Variables already set are
// never overridden.
func NewDotEnvModule(opts ...DotEnvOption) fx.Option {
	options := &dotEnvOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if len(options.paths) == 0 {
		options.paths = []string{".env"}
	}

	loaded, err := loadDotEnv(options.paths)

	return fx.Module("dotenv",
		fx.Invoke(func(logger *zap.Logger) error {
			if err != nil {
				return err
			}
			if len(loaded) == 0 {
				logger.Debug("no .env file loaded", zap.Strings("paths", options.paths))
				return nil
			}
			logger.Info("loaded .env files", zap.Strings("paths", loaded))
			return nil
		}),
	)
}

// loadDotEnv loads every existing file of paths and returns the ones it read.
// Missing files are skipped, malformed ones are an error.
func loadDotEnv(paths []string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("failed to load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
