package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Brokers: "localhost:9092",
		ProducerConfig: ProducerConfig{
			ClientID:                "s3-listener",
			Acks:                    "all",
			DeliveryTimeout:         10 * time.Second,
			FlushTimeout:            5 * time.Second,
			ReadinessTimeoutSeconds: 30,
		},
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "multiple brokers", mutate: func(cfg *Config) { cfg.Brokers = "a:9092,b:9092" }},
		{name: "acks zero", mutate: func(cfg *Config) { cfg.ProducerConfig.Acks = "0" }},
		{name: "no readiness timeout", mutate: func(cfg *Config) { cfg.ProducerConfig.ReadinessTimeoutSeconds = 0 }},
		{
			name:    "empty brokers",
			mutate:  func(cfg *Config) { cfg.Brokers = "" },
			wantErr: "kafka brokers cannot be empty",
		},
		{
			name:    "empty broker in list",
			mutate:  func(cfg *Config) { cfg.Brokers = "a:9092,,b:9092" },
			wantErr: "empty address",
		},
		{
			name:    "unknown acks",
			mutate:  func(cfg *Config) { cfg.ProducerConfig.Acks = "2" },
			wantErr: "producer acks must be one of",
		},
		{
			name:    "delivery timeout too short",
			mutate:  func(cfg *Config) { cfg.ProducerConfig.DeliveryTimeout = time.Millisecond },
			wantErr: "producer delivery timeout must be between",
		},
		{
			name:    "delivery timeout too long",
			mutate:  func(cfg *Config) { cfg.ProducerConfig.DeliveryTimeout = time.Hour },
			wantErr: "producer delivery timeout must be between",
		},
		{
			name:    "negative flush timeout",
			mutate:  func(cfg *Config) { cfg.ProducerConfig.FlushTimeout = -time.Second },
			wantErr: "producer flush timeout cannot be negative",
		},
		{
			name:    "readiness timeout too long",
			mutate:  func(cfg *Config) { cfg.ProducerConfig.ReadinessTimeoutSeconds = 601 },
			wantErr: "producer readiness timeout must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			cfg := validConfig()
			tt.mutate(&cfg)

			// When
			err := validateConfig(&cfg)

			// Then
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{ProducerConfig: ProducerConfig{
		ClientID:        "custom",
		Acks:            "1",
		DeliveryTimeout: time.Second,
	}}

	applyDefaults(&cfg, "s3-listener")

	assert.Equal(t, "custom", cfg.ProducerConfig.ClientID)
	assert.Equal(t, "1", cfg.ProducerConfig.Acks)
	assert.Equal(t, time.Second, cfg.ProducerConfig.DeliveryTimeout)
	assert.Equal(t, defaultFlushTimeout, cfg.ProducerConfig.FlushTimeout)
}
