package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// GetTraceIDAndSpanID extracts both ids from ctx, empty strings without a valid span.
func GetTraceIDAndSpanID(ctx context.Context) (string, string) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", ""
	}
	return sc.TraceID().String(), sc.SpanID().String()
}

// LogFields returns trace_id and span_id fields for the span in ctx, nil without one.
func LogFields(ctx context.Context) []zap.Field {
	traceID, spanID := GetTraceIDAndSpanID(ctx)
	if traceID == "" {
		return nil
	}
	return []zap.Field{zap.String("trace_id", traceID), zap.String("span_id", spanID)}
}
