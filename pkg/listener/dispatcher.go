// Package listener dispatches S3 "object created" notifications to handlers.
//
// A dispatch validates the raw notification, normalizes its first record into an
// s3event.Event, builds the handler through a Factory, opens a log session, runs
// Process and finally emits events.EventEnded, whatever Process returned.
//
//	err := listener.Handle(ctx, func(e s3event.Event) listener.Processor {
//	    return &thumbnailer{Listener: listener.NewListener(e, accessor)}
//	}, raw)
package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sokol111/s3-listener/pkg/core/logger"
	"github.com/Sokol111/s3-listener/pkg/events"
	"github.com/Sokol111/s3-listener/pkg/observability/tracing"
	"github.com/Sokol111/s3-listener/pkg/s3event"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// Dispatcher holds only immutable collaborators and is safe for concurrent use. Every
// Handle call owns its event and processor.
type Dispatcher struct {
	log            *zap.Logger
	starter        Starter
	emitter        Emitter
	throttler      *logger.LogThrottler
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	inst           instruments
}

// Option configures a Dispatcher. Nil values are ignored.
type Option func(*Dispatcher)

func WithLogger(log *zap.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithStarter sets the log session collaborator.
func WithStarter(s Starter) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.starter = s
		}
	}
}

// WithEmitter sets where the ended signal goes.
func WithEmitter(e Emitter) Option {
	return func(d *Dispatcher) {
		if e != nil {
			d.emitter = e
		}
	}
}

// WithLogThrottler shares a throttler for emit failure warnings.
func WithLogThrottler(t *logger.LogThrottler) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.throttler = t
		}
	}
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Dispatcher) {
		if tp != nil {
			d.tracerProvider = tp
		}
	}
}

func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(d *Dispatcher) {
		if mp != nil {
			d.meterProvider = mp
		}
	}
}

// NewDispatcher returns a Dispatcher. Without options it logs through the global zap logger,
// opens no log session, emits nowhere and records no telemetry.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		log:            zap.L(),
		starter:        noopStarter{},
		emitter:        noopEmitter{},
		tracerProvider: tracenoop.NewTracerProvider(),
		meterProvider:  metricnoop.NewMeterProvider(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.throttler == nil {
		d.throttler = logger.NewLogThrottler(d.log, 0)
	}
	d.inst = newInstruments(d.tracerProvider, d.meterProvider, d.log)
	return d
}

// Handle dispatches one raw notification. It returns nil or an *Error:
//   - CodeInvalidEvent, CodeInvalidRecords, CodeInvalidS3Record when validation fails;
//   - CodeProcessNotFound when the factory yields no processor;
//   - CodeInternalError when Process fails or panics, with the failure as Cause.
//
// The log session is started and the ended signal emitted only once a processor exists.
// The signal is emitted exactly once per processed notification and a failure to emit it
// is logged, never returned.
func (d *Dispatcher) Handle(ctx context.Context, factory Factory, raw []byte) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := d.inst.tracer.Start(ctx, spanDispatch, trace.WithSpanKind(trace.SpanKindConsumer))
	started := time.Now()
	defer func() {
		d.finish(ctx, span, started, err)
	}()

	event, verr := s3event.Parse(raw)
	if verr != nil {
		return fromValidation(verr)
	}
	span.SetAttributes(
		attrBucket.String(event.BucketName),
		attrKey.String(event.FileKey),
		attrSize.Int64(event.Filesize),
	)

	log := d.log.With(zap.String("bucket", event.BucketName), zap.String("key", event.FileKey))
	log = log.With(tracing.LogFields(ctx)...)
	ctx = logger.WithLogger(ctx, log)

	processor, err := construct(factory, event)
	if err != nil {
		return err
	}

	ctx = d.starter.Start(ctx)
	logger.FromContext(ctx).Debug("processing s3 object",
		zap.String("extension", event.FileExtension),
		zap.Int64("size", event.Filesize),
	)

	processErr := d.process(ctx, processor)
	d.emitEnded(ctx)

	if processErr != nil {
		return internalError(processErr)
	}
	return nil
}

// HandleFunc adapts the dispatcher to the aws-lambda-go handler signature.
func (d *Dispatcher) HandleFunc(factory Factory) func(ctx context.Context, raw json.RawMessage) error {
	return func(ctx context.Context, raw json.RawMessage) error {
		return d.Handle(ctx, factory, raw)
	}
}

// Handle dispatches raw with a Dispatcher built from the defaults.
func Handle(ctx context.Context, factory Factory, raw []byte) error {
	return NewDispatcher().Handle(ctx, factory, raw)
}

func construct(factory Factory, event s3event.Event) (p Processor, err error) {
	if factory == nil {
		return nil, newError(ErrProcessNotFound, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			p, err = nil, internalError(panicError(r))
		}
	}()

	p = factory(event)
	if isNil(p) {
		return nil, newError(ErrProcessNotFound, nil)
	}
	return p, nil
}

func (d *Dispatcher) process(ctx context.Context, p Processor) (err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = panicError(r)
			logger.FromContext(ctx).Error("listener panicked", zap.Any("panic", r), zap.Stack("stack"))
		}
		d.inst.duration.Record(ctx, time.Since(started).Seconds())
	}()

	return p.Process(ctx)
}

func (d *Dispatcher) emitEnded(ctx context.Context) {
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			d.throttler.WarnWith(log, events.EventEnded, "emitter panicked", zap.String("event", events.EventEnded), zap.Any("panic", r))
		}
	}()

	if err := d.emitter.Emit(ctx, events.EventEnded); err != nil {
		d.throttler.WarnWith(log, events.EventEnded, "failed to emit event", zap.String("event", events.EventEnded), zap.Error(err))
	}
}

func (d *Dispatcher) finish(ctx context.Context, span trace.Span, started time.Time, err error) {
	outcome := outcomeOf(err)

	if err != nil {
		code, _ := CodeOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attrErrorCode.Int(int(code)))
		d.log.Warn("s3 event dispatch failed",
			zap.String("outcome", outcome),
			zap.Duration("duration", time.Since(started)),
			zap.Error(err),
		)
	} else {
		span.SetStatus(codes.Ok, "")
		d.log.Debug("s3 event dispatched", zap.Duration("duration", time.Since(started)))
	}

	d.inst.dispatches.Add(ctx, 1, metric.WithAttributes(attrOutcome.String(outcome)))
	span.End()
}
