package listener

import (
	"context"
	"errors"

	"github.com/Sokol111/s3-listener/pkg/s3event"
)

// ErrNoAccessor is returned by Listener data methods when no accessor was given.
var ErrNoAccessor = errors.New("listener has no object accessor")

// DataAccessor reads stored objects. storage.Accessor implements it.
type DataAccessor interface {
	Data(ctx context.Context, event s3event.Event) (any, error)
	Fetch(ctx context.Context, bucket, key string) ([]byte, error)
}

// Listener is meant to be embedded by handlers. It exposes the event fields and reads
// the object the notification points at; the embedding type adds Process.
//
//	type resizer struct{ listener.Listener }
//
//	func (r *resizer) Process(ctx context.Context) error {
//	    body, err := r.RawData(ctx)
//	    ...
//	}
type Listener struct {
	event    s3event.Event
	accessor DataAccessor
}

func NewListener(event s3event.Event, accessor DataAccessor) Listener {
	return Listener{event: event, accessor: accessor}
}

func (l Listener) Event() s3event.Event { return l.event }

func (l Listener) BucketName() string { return l.event.BucketName }

func (l Listener) FileKey() string { return l.event.FileKey }

func (l Listener) FilePrefix() string { return l.event.FilePrefix }

func (l Listener) Filename() string { return l.event.Filename }

func (l Listener) FileExtension() string { return l.event.FileExtension }

func (l Listener) Filesize() int64 { return l.event.Filesize }

func (l Listener) FileTag() string { return l.event.FileTag }

// Data returns the object decoded as JSON when its extension is json, the raw bytes otherwise.
func (l Listener) Data(ctx context.Context) (any, error) {
	if l.accessor == nil {
		return nil, ErrNoAccessor
	}
	return l.accessor.Data(ctx, l.event)
}

// RawData returns the object bytes as stored.
func (l Listener) RawData(ctx context.Context) ([]byte, error) {
	if l.accessor == nil {
		return nil, ErrNoAccessor
	}
	return l.accessor.Fetch(ctx, l.event.BucketName, l.event.FileKey)
}
