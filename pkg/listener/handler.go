package listener

import (
	"context"
	"reflect"

	"github.com/Sokol111/s3-listener/pkg/s3event"
)

// Processor does the domain work for one stored object.
type Processor interface {
	Process(ctx context.Context) error
}

// ProcessFunc adapts a function to Processor.
type ProcessFunc func(ctx context.Context) error

func (f ProcessFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Factory builds the Processor for a normalized event. Returning nil, or a typed nil
// pointer, makes the dispatch fail with CodeProcessNotFound.
type Factory func(event s3event.Event) Processor

// Dynamic adapts a constructor whose result is only known at runtime, e.g. one looked up
// in a registry by prefix. Values that do not implement Processor make the dispatch fail
// with CodeProcessNotFound.
func Dynamic(build func(event s3event.Event) any) Factory {
	if build == nil {
		return nil
	}
	return func(event s3event.Event) Processor {
		p, _ := build(event).(Processor)
		return p
	}
}

// Starter opens the log session of a dispatch. The returned context is the one Process
// receives.
type Starter interface {
	Start(ctx context.Context) context.Context
}

// Emitter publishes named signals.
type Emitter interface {
	Emit(ctx context.Context, name string) error
}

type noopStarter struct{}

func (noopStarter) Start(ctx context.Context) context.Context { return ctx }

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, string) error { return nil }

func isNil(p Processor) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
