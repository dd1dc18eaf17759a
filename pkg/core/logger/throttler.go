package logger

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultThrottleInterval = 5 * time.Minute

// LogThrottler demotes repeated warnings to debug: per key, one WARN entry goes out per
// interval. A warm Lambda container that keeps failing to emit the same signal would
// otherwise flood the log stream.
type LogThrottler struct {
	log      *zap.Logger
	interval time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLogThrottler returns a throttler allowing one WARN per key per interval.
// A zero interval means five minutes.
func NewLogThrottler(log *zap.Logger, interval time.Duration) *LogThrottler {
	if interval <= 0 {
		interval = defaultThrottleInterval
	}
	return &LogThrottler{
		log:      log,
		interval: interval,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Warn logs at WARN when the key's budget allows it and at DEBUG otherwise.
func (t *LogThrottler) Warn(key string, msg string, fields ...zap.Field) {
	t.WarnWith(t.log, key, msg, fields...)
}

// WarnWith is Warn writing through log instead of the throttler's own logger.
// The budget is still shared per key.
func (t *LogThrottler) WarnWith(log *zap.Logger, key string, msg string, fields ...zap.Field) {
	if t.limiter(key).Allow() {
		log.Warn(msg, fields...)
		return
	}
	log.Debug(msg, fields...)
}

func (t *LogThrottler) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Every(t.interval), 1)
		t.limiters[key] = l
	}
	return l
}
