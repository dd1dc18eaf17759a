package config

import "time"

const (
	DefaultMetricsInterval      = 10 * time.Second
	DefaultShutdownTimeout      = 2 * time.Second
	DefaultRuntimeStatsInterval = time.Second
	DefaultSampleRatio          = 1.0
)

// Config is read from the "observability" section.
type Config struct {
	// OtelCollectorEndpoint is the OTLP gRPC endpoint (host:port). With tracing enabled and
	// no endpoint, spans are kept in process.
	OtelCollectorEndpoint string        `mapstructure:"otel-collector-endpoint"`
	Tracing               TracingConfig `mapstructure:"tracing"`
	Metrics               MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// SampleRatio is the share of root dispatches traced, in (0, 1].
	SampleRatio float64 `mapstructure:"sample-ratio"`
}

type MetricsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}
