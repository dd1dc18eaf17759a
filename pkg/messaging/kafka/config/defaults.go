package config

// applyDefaults applies default values to the configuration
func applyDefaults(cfg *Config, serviceName string) {
	p := &cfg.ProducerConfig

	if p.ClientID == "" {
		p.ClientID = serviceName
	}
	if p.Acks == "" {
		p.Acks = defaultAcks
	}
	if p.DeliveryTimeout == 0 {
		p.DeliveryTimeout = defaultDeliveryTimeout
	}
	if p.FlushTimeout == 0 {
		p.FlushTimeout = defaultFlushTimeout
	}
	if p.ReadinessTimeoutSeconds == 0 {
		p.ReadinessTimeoutSeconds = defaultProducerReadinessTimeout
	}
}
