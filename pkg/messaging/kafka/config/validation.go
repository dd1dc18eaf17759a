package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// validateConfig validates the entire Kafka configuration
func validateConfig(cfg *Config) error {
	if err := validateBrokers(cfg); err != nil {
		return err
	}
	return validateProducerConfig(&cfg.ProducerConfig)
}

// validateBrokers validates Kafka brokers configuration
func validateBrokers(cfg *Config) error {
	if strings.TrimSpace(cfg.Brokers) == "" {
		return fmt.Errorf("kafka brokers cannot be empty")
	}
	for _, broker := range strings.Split(cfg.Brokers, ",") {
		if strings.TrimSpace(broker) == "" {
			return fmt.Errorf("kafka brokers contain an empty address: %q", cfg.Brokers)
		}
	}
	return nil
}

// validateProducerConfig validates producer configuration
func validateProducerConfig(cfg *ProducerConfig) error {
	if !lo.Contains(validAcks, cfg.Acks) {
		return fmt.Errorf("producer acks must be one of %v, got: %s", validAcks, cfg.Acks)
	}
	if cfg.DeliveryTimeout < minDeliveryTimeout || cfg.DeliveryTimeout > maxDeliveryTimeout {
		return fmt.Errorf("producer delivery timeout must be between %v and %v, got: %v",
			minDeliveryTimeout, maxDeliveryTimeout, cfg.DeliveryTimeout)
	}
	if cfg.FlushTimeout < 0 {
		return fmt.Errorf("producer flush timeout cannot be negative, got: %v", cfg.FlushTimeout)
	}
	if cfg.ReadinessTimeoutSeconds < 0 || cfg.ReadinessTimeoutSeconds > maxReadinessTimeout {
		return fmt.Errorf("producer readiness timeout must be between 0 and %d seconds, got: %d",
			maxReadinessTimeout, cfg.ReadinessTimeoutSeconds)
	}
	return nil
}
