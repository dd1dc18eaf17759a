package storage

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultRegion        = "us-east-1"
	defaultMaxObjectSize = 64 << 20
)

// S3Config is read from "storage.s3". Every field is optional inside a Lambda, where the
// region and credentials come from the environment.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access-key-id"`
	SecretAccessKey string `mapstructure:"secret-access-key"`
	UsePathStyle    bool   `mapstructure:"use-path-style"` // Required for MinIO
	MaxObjectSize   int64  `mapstructure:"max-object-size"`
}

func (c S3Config) Validate() error {
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("access-key-id and secret-access-key must be set together")
	}
	if c.MaxObjectSize < 0 {
		return fmt.Errorf("max-object-size cannot be negative, got: %d", c.MaxObjectSize)
	}
	return nil
}

func loadS3Config(v *viper.Viper, region string) (S3Config, error) {
	var cfg S3Config

	if sub := v.Sub("storage.s3"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load storage config: %w", err)
		}
	}

	if cfg.Region == "" {
		cfg.Region = region
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	if cfg.MaxObjectSize == 0 {
		cfg.MaxObjectSize = defaultMaxObjectSize
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid storage config: %w", err)
	}
	return cfg, nil
}
