package logger

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config is read from the "logger" section.
type Config struct {
	// Level is the minimum enabled level. Defaults to info.
	Level zapcore.Level

	// Development switches to console encoding. JSON otherwise, which is what Lambda log
	// ingestion expects.
	Development bool

	// OutputPaths defaults to stderr when empty.
	OutputPaths []string

	// StacktraceLevel defaults to error.
	StacktraceLevel zapcore.Level

	// Fields are attached to every entry, e.g. the function name.
	Fields map[string]string
}

type rawConfig struct {
	Level           string            `mapstructure:"level"`
	Development     bool              `mapstructure:"development"`
	OutputPaths     []string          `mapstructure:"output-paths"`
	StacktraceLevel string            `mapstructure:"stacktrace-level"`
	Fields          map[string]string `mapstructure:"fields"`
}

func defaultConfig() Config {
	return Config{
		Level:           zapcore.InfoLevel,
		StacktraceLevel: zapcore.ErrorLevel,
	}
}

func (c Config) Validate() error {
	for i, path := range c.OutputPaths {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("output-paths[%d] cannot be empty or whitespace", i)
		}
	}
	for key := range c.Fields {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("fields cannot contain an empty key")
		}
	}
	return nil
}

func newConfig(v *viper.Viper) (Config, error) {
	cfg := defaultConfig()

	sub := v.Sub("logger")
	if sub == nil {
		return cfg, nil
	}

	var raw rawConfig
	if err := sub.Unmarshal(&raw); err != nil {
		return Config{}, fmt.Errorf("failed to load logger config: %w", err)
	}

	var err error
	if cfg.Level, err = parseLevel(raw.Level, cfg.Level); err != nil {
		return Config{}, fmt.Errorf("invalid log level '%s': %w", raw.Level, err)
	}
	if cfg.StacktraceLevel, err = parseLevel(raw.StacktraceLevel, cfg.StacktraceLevel); err != nil {
		return Config{}, fmt.Errorf("invalid stacktrace level '%s': %w", raw.StacktraceLevel, err)
	}

	cfg.Development = raw.Development
	cfg.OutputPaths = raw.OutputPaths
	cfg.Fields = raw.Fields

	return cfg, nil
}

func parseLevel(s string, fallback zapcore.Level) (zapcore.Level, error) {
	if s == "" {
		return fallback, nil
	}
	return zapcore.ParseLevel(s)
}
