package config

import "time"

const (
	// Default values.
	defaultAcks                     = "all"
	defaultDeliveryTimeout          = 10 * time.Second
	defaultFlushTimeout             = 5 * time.Second
	defaultProducerReadinessTimeout = 30

	// Validation bounds.
	minDeliveryTimeout  = 100 * time.Millisecond
	maxDeliveryTimeout  = 5 * time.Minute
	maxReadinessTimeout = 600 // 10 minutes in seconds
)

var validAcks = []string{"0", "1", "all", "-1"}
