package config

import "time"

// Config represents the Kafka configuration used to forward listener events.
type Config struct {
	Brokers        string         `mapstructure:"brokers"`         // Comma-separated list of Kafka broker addresses (e.g., "localhost:9092,localhost:9093")
	ProducerConfig ProducerConfig `mapstructure:"producer-config"` // Producer-specific configuration
}

// ProducerConfig represents configuration for Kafka producer.
type ProducerConfig struct {
	ClientID                string        `mapstructure:"client-id"`                 // client.id reported to brokers (defaults to the service name)
	Acks                    string        `mapstructure:"acks"`                      // Required acknowledgements: "0", "1" or "all" (default "all")
	DeliveryTimeout         time.Duration `mapstructure:"delivery-timeout"`          // Time to wait for a delivery report (100ms-5m, default 10s)
	FlushTimeout            time.Duration `mapstructure:"flush-timeout"`             // Time to wait for outstanding messages on shutdown (default 5s)
	ReadinessTimeoutSeconds int           `mapstructure:"readiness-timeout-seconds"` // Timeout in seconds for waiting brokers readiness (0 = no timeout, max 600s, default 30s)
	FailOnBrokerError       bool          `mapstructure:"fail-on-broker-error"`      // Whether to fail application startup if brokers are not available (default false)
}
