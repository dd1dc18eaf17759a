package s3event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-faster/jx"
)

var (
	// ErrInvalidEvent is returned when the notification is not a non-empty JSON object.
	ErrInvalidEvent = errors.New("event cannot be empty and must be an object")

	// ErrInvalidRecords is returned when Records is missing, not an array or empty.
	ErrInvalidRecords = errors.New("event records cannot be empty and must be an array")

	// ErrInvalidS3Record is returned when the first record has no usable s3.bucket / s3.object.
	ErrInvalidS3Record = errors.New("cannot get the s3 event from records")
)

const (
	fieldRecords = "Records"
	fieldS3      = "s3"
	fieldBucket  = "bucket"
	fieldObject  = "object"
)

// Validate runs the structural checks on a raw notification and returns the s3 section
// of its first record. Checks run in order and the first failure wins.
// Records after the first one are ignored.
func Validate(raw []byte) (Entity, error) {
	envelope, err := objectFields(raw)
	if err != nil || len(envelope) == 0 {
		return Entity{}, wrap(ErrInvalidEvent, err)
	}

	first, err := firstRecord(envelope[fieldRecords])
	if err != nil {
		return Entity{}, wrap(ErrInvalidRecords, err)
	}

	s3, err := s3Section(first)
	if err != nil {
		return Entity{}, wrap(ErrInvalidS3Record, err)
	}

	var entity Entity
	if err := json.Unmarshal(s3, &entity); err != nil {
		return Entity{}, wrap(ErrInvalidS3Record, err)
	}

	return entity, nil
}

// Parse validates raw and normalizes the result.
func Parse(raw []byte) (Event, error) {
	entity, err := Validate(raw)
	if err != nil {
		return Event{}, err
	}
	return Normalize(entity), nil
}

func firstRecord(records jx.Raw) (jx.Raw, error) {
	if typeOf(records) != jx.Array {
		return nil, errors.New("records is not an array")
	}

	var (
		first jx.Raw
		count int
	)
	err := jx.DecodeBytes(records).Arr(func(d *jx.Decoder) error {
		count++
		if count > 1 {
			return d.Skip()
		}
		v, err := d.Raw()
		if err != nil {
			return err
		}
		first = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.New("records is empty")
	}

	return first, nil
}

func s3Section(record jx.Raw) (jx.Raw, error) {
	fields, err := objectFields(record)
	if err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}

	s3 := fields[fieldS3]
	s3Fields, err := objectFields(s3)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fieldS3, err)
	}

	for _, name := range []string{fieldBucket, fieldObject} {
		if typeOf(s3Fields[name]) != jx.Object {
			return nil, fmt.Errorf("%s.%s is not an object", fieldS3, name)
		}
	}

	return s3, nil
}

// objectFields decodes the top level keys of a JSON object without decoding the values.
func objectFields(raw []byte) (map[string]jx.Raw, error) {
	if typeOf(raw) != jx.Object {
		return nil, errors.New("not an object")
	}

	fields := make(map[string]jx.Raw)
	err := jx.DecodeBytes(raw).ObjBytes(func(d *jx.Decoder, key []byte) error {
		v, err := d.Raw()
		if err != nil {
			return err
		}
		fields[string(key)] = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fields, nil
}

func typeOf(raw []byte) jx.Type {
	if len(raw) == 0 {
		return jx.Invalid
	}
	return jx.DecodeBytes(raw).Next()
}

func wrap(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}
