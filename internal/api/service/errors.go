package service

import (
	"errors"
)

// ErrorKind classifies a failure so handlers can map it to a status code.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindParse      ErrorKind = "parse"
	KindUpstream   ErrorKind = "upstream"
	KindInternal   ErrorKind = "internal"
)

// Error is a classified service failure. Its message is the underlying
// error text.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of err, internal when err is not classified.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
