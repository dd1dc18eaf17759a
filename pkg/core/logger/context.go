package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey int

const (
	loggerKey contextKey = iota
	sessionKey
)

// FromContext returns the logger attached to ctx, or the global logger.
// Safe to call with a nil context.
func FromContext(ctx context.Context) *zap.Logger {
	l, _ := fromContext(ctx)
	return l
}

func fromContext(ctx context.Context) (*zap.Logger, bool) {
	if ctx == nil {
		return zap.L(), false
	}
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l, true
	}
	return zap.L(), false
}

// WithLogger attaches log to ctx.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, log)
}

// SessionID returns the id of the log session started on ctx, if any.
func SessionID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok && id != ""
}
