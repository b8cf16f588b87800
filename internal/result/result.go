// Package result implements the outcome type returned by every remote
// call: exactly one of success, failure or loading is active at a time,
// and failures always carry a human-readable message.
package result

import "fmt"

type state int

const (
	stateLoading state = iota
	stateSuccess
	stateFailure
)

// Error is a failed remote operation as a plain Go error. Code holds
// the HTTP status when the server answered, 0 otherwise.
type Error struct {
	Message string
	Code    int
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
	}
	return e.Message
}

// Result holds the outcome of a single remote operation.
type Result[T any] struct {
	state   state
	value   T
	message string
	code    int
}

// OK wraps a successful value.
func OK[T any](value T) Result[T] {
	return Result[T]{state: stateSuccess, value: value}
}

// Err wraps a failure without an HTTP status code.
func Err[T any](message string) Result[T] {
	return Result[T]{state: stateFailure, message: message}
}

// ErrCode wraps a failure carrying the HTTP status code.
func ErrCode[T any](message string, code int) Result[T] {
	return Result[T]{state: stateFailure, message: message, code: code}
}

// Pending is the in-flight marker. It never crosses the store boundary;
// callers of the store only ever see success or failure.
func Pending[T any]() Result[T] {
	return Result[T]{state: stateLoading}
}

func (r Result[T]) IsSuccess() bool { return r.state == stateSuccess }
func (r Result[T]) IsError() bool   { return r.state == stateFailure }
func (r Result[T]) IsLoading() bool { return r.state == stateLoading }

// Value returns the wrapped value; the zero value unless IsSuccess.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message, "" unless IsError.
func (r Result[T]) Message() string { return r.message }

// Code returns the HTTP status of a failure, false when none was
// available (transport faults, not-found fallbacks).
func (r Result[T]) Code() (int, bool) { return r.code, r.code != 0 }

// Err converts a failure into an error, nil for any other state.
func (r Result[T]) Err() error {
	if r.state != stateFailure {
		return nil
	}
	return &Error{Message: r.message, Code: r.code}
}

// GetOrDefault returns the value on success, def otherwise.
func (r Result[T]) GetOrDefault(def T) T {
	if r.state == stateSuccess {
		return r.value
	}
	return def
}

// Map applies transform to a successful value, carrying failure and
// loading states through untouched.
func Map[T, R any](r Result[T], transform func(T) R) Result[R] {
	switch r.state {
	case stateSuccess:
		return OK(transform(r.value))
	case stateFailure:
		return Result[R]{state: stateFailure, message: r.message, code: r.code}
	default:
		return Pending[R]()
	}
}
