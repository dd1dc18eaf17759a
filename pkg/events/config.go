package events

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultTopic = "s3-listener.events"

// KafkaConfig selects where forwarded signals go. It is read from "events.kafka".
type KafkaConfig struct {
	Topic string `mapstructure:"topic"`
	// Events lists the signal names to forward. Empty means EventEnded only.
	Events []string `mapstructure:"events"`
}

func loadKafkaConfig(v *viper.Viper) (KafkaConfig, error) {
	cfg := KafkaConfig{}

	if sub := v.Sub("events.kafka"); sub != nil {
		if err := sub.Unmarshal(&cfg); err != nil {
			return cfg, fmt.Errorf("failed to load events kafka config: %w", err)
		}
	}

	if strings.TrimSpace(cfg.Topic) == "" {
		cfg.Topic = defaultTopic
	}
	if len(cfg.Events) == 0 {
		cfg.Events = []string{EventEnded}
	}
	return cfg, nil
}
