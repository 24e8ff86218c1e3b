package event

import (
	"context"
	"errors"
)

var (
	ErrMissingStart   = errors.New("start is required")
	ErrMissingEnd     = errors.New("end is required")
	ErrMissingEventID = errors.New("event id is required")
)

// ErrorKind classifies a failure so the delivery layer can pick a status code.
type ErrorKind string

const (
	KindInput         ErrorKind = "input"
	KindConfiguration ErrorKind = "configuration"
	KindRemote        ErrorKind = "remote"
	KindTimeout       ErrorKind = "timeout"
)

// Error is a classified use case failure. Its message is the underlying error's text.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind. Deadline errors are always classified as KindTimeout.
func NewError(kind ErrorKind, op string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, or KindRemote for unclassified errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindRemote
}
