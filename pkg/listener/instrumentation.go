package listener

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/Sokol111/s3-listener/pkg/listener"

const (
	spanDispatch     = "s3listener.dispatch"
	metricDispatches = "s3listener.dispatch.total"
	metricDuration   = "s3listener.process.duration"

	outcomeSucceeded = "succeeded"
)

var (
	attrBucket    = attribute.Key("s3.bucket.name")
	attrKey       = attribute.Key("s3.object.key")
	attrSize      = attribute.Key("s3.object.size")
	attrOutcome   = attribute.Key("outcome")
	attrErrorCode = attribute.Key("s3listener.error.code")
)

type instruments struct {
	tracer     trace.Tracer
	dispatches metric.Int64Counter
	duration   metric.Float64Histogram
}

func newInstruments(tp trace.TracerProvider, mp metric.MeterProvider, log *zap.Logger) instruments {
	inst, err := buildInstruments(tp, mp)
	if err != nil {
		log.Warn("failed to create listener metrics, recording disabled", zap.Error(err))
		inst, _ = buildInstruments(tp, metricnoop.NewMeterProvider())
	}
	return inst
}

func buildInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (instruments, error) {
	meter := mp.Meter(instrumentationName)

	dispatches, err := meter.Int64Counter(metricDispatches,
		metric.WithDescription("S3 notifications dispatched, by outcome"),
		metric.WithUnit("{dispatch}"),
	)
	if err != nil {
		return instruments{}, err
	}

	duration, err := meter.Float64Histogram(metricDuration,
		metric.WithDescription("Time spent in the handler Process method"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return instruments{}, err
	}

	return instruments{
		tracer:     tp.Tracer(instrumentationName),
		dispatches: dispatches,
		duration:   duration,
	}, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return outcomeSucceeded
	}
	if code, ok := CodeOf(err); ok {
		return code.String()
	}
	return CodeInternalError.String()
}
