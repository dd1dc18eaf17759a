// Package storage reads the objects notifications point at.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sokol111/s3-listener/pkg/s3event"
)

var (
	// ErrObjectNotFound is returned when the bucket has no object under the key.
	ErrObjectNotFound = errors.New("object not found")
	// ErrObjectTooLarge is returned when an object exceeds the configured read limit.
	ErrObjectTooLarge = errors.New("object exceeds read limit")
	// ErrDecodeJSON is returned when a json object does not hold valid JSON.
	ErrDecodeJSON = errors.New("failed to decode object as json")
)

// ObjectGetter reads a whole object.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

type Accessor struct {
	getter ObjectGetter
}

func NewAccessor(getter ObjectGetter) *Accessor {
	return &Accessor{getter: getter}
}

// Fetch returns the object bytes as stored.
func (a *Accessor) Fetch(ctx context.Context, bucket, key string) ([]byte, error) {
	body, err := a.getter.GetObject(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", bucket, key, err)
	}
	return body, nil
}

// Data fetches the object of event. Objects with the json extension are decoded into
// map[string]any, []any or a scalar; any other object is returned as []byte.
func (a *Accessor) Data(ctx context.Context, event s3event.Event) (any, error) {
	body, err := a.Fetch(ctx, event.BucketName, event.FileKey)
	if err != nil {
		return nil, err
	}
	if !event.IsJSON() {
		return body, nil
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: s3://%s/%s: %w", ErrDecodeJSON, event.BucketName, event.FileKey, err)
	}
	return data, nil
}
