package observability

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

type flusher interface {
	ForceFlush(ctx context.Context) error
}

// Flush exports what the SDK providers buffered. A Lambda execution environment may be
// frozen right after an invocation returns, so this runs at the end of each one.
// No-op providers are skipped.
func Flush(ctx context.Context, tp trace.TracerProvider, mp metric.MeterProvider) error {
	var errs []error
	for _, p := range []any{tp, mp} {
		if f, ok := p.(flusher); ok {
			if err := f.ForceFlush(ctx); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
