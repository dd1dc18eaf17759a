package listener

import (
	"errors"
	"fmt"

	"github.com/Sokol111/s3-listener/pkg/s3event"
)

// Code identifies the kind of a dispatch failure. Values are stable and part of the
// contract with callers.
type Code int

const (
	CodeInvalidEvent Code = iota + 1
	CodeInvalidRecords
	CodeInvalidS3Record
	CodeProcessNotFound
	CodeInternalError
)

func (c Code) String() string {
	switch c {
	case CodeInvalidEvent:
		return "invalid_event"
	case CodeInvalidRecords:
		return "invalid_records"
	case CodeInvalidS3Record:
		return "invalid_s3_record"
	case CodeProcessNotFound:
		return "process_not_found"
	case CodeInternalError:
		return "internal_error"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error is the only error type Handle returns.
type Error struct {
	Code    Code
	Message string
	// Cause is the underlying failure. For CodeInternalError it is whatever Process returned.
	Cause error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code, so errors.Is(err, ErrInvalidRecords) works
// whatever the message or cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrInvalidEvent    = &Error{Code: CodeInvalidEvent, Message: "Event cannot be empty and must be an object"}
	ErrInvalidRecords  = &Error{Code: CodeInvalidRecords, Message: "Event Records cannot be empty and must be an array"}
	ErrInvalidS3Record = &Error{Code: CodeInvalidS3Record, Message: "Cannot get the S3 event from Records"}
	ErrProcessNotFound = &Error{Code: CodeProcessNotFound, Message: "Process method is required and must be a function"}
	// ErrInternal only serves as an errors.Is target, returned errors carry the cause's message.
	ErrInternal = &Error{Code: CodeInternalError, Message: "internal error"}
)

// ErrPanic is wrapped by the cause of an InternalError raised by a panicking handler.
var ErrPanic = errors.New("listener panicked")

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Code, true
}

func newError(sentinel *Error, cause error) *Error {
	return &Error{Code: sentinel.Code, Message: sentinel.Message, Cause: cause}
}

// fromValidation maps the s3event sentinels to their codes.
func fromValidation(err error) *Error {
	switch {
	case errors.Is(err, s3event.ErrInvalidEvent):
		return newError(ErrInvalidEvent, err)
	case errors.Is(err, s3event.ErrInvalidRecords):
		return newError(ErrInvalidRecords, err)
	case errors.Is(err, s3event.ErrInvalidS3Record):
		return newError(ErrInvalidS3Record, err)
	default:
		return internalError(err)
	}
}

// internalError reports a handler failure. The message is the cause's own message.
func internalError(cause error) *Error {
	return &Error{Code: CodeInternalError, Message: cause.Error(), Cause: cause}
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}
