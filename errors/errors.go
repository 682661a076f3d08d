// Package errors provides constant string errors that can carry a wrapped cause.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSeparator separates an error's message from the message of its cause.
const ErrSeparator = " -- "

// Error is a string based error type allowing packages to declare const errors.
type Error string

var _ error = Error("")

func (s Error) Error() string {
	return string(s)
}

// Is reports whether target is s, or s wrapping some cause.
func (s Error) Is(target error) bool {
	if target == nil {
		return false
	}
	msg := target.Error()
	return msg == string(s) || strings.HasPrefix(msg, string(s)+ErrSeparator)
}

// Wrap returns an error matching s that carries err as its cause.
func (s Error) Wrap(err error) error {
	return wrappedError{msg: string(s), cause: err}
}

// Wrapf is Wrap with a formatted cause.
func (s Error) Wrapf(format string, args ...any) error {
	return s.Wrap(fmt.Errorf(format, args...))
}

type wrappedError struct {
	msg   string
	cause error
}

func (w wrappedError) Error() string {
	if w.cause == nil {
		return w.msg
	}
	return w.msg + ErrSeparator + w.cause.Error()
}

func (w wrappedError) Is(target error) bool {
	return Error(w.msg).Is(target)
}

func (w wrappedError) As(target any) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	*t = Error(w.msg)
	return true
}

func (w wrappedError) Unwrap() error {
	return w.cause
}

// The below wrap the standard library as this package takes its namespace.

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns a new error with the specified message.
func New(message string) error {
	return errors.New(message)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
