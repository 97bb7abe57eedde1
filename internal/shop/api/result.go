package api

import "strings"

// APIError is the normalized error payload produced for every failed
// operation, regardless of whether the failure happened locally, in the
// backend, or on the wire.
type APIError struct {
	// Message is the human readable summary.
	Message string
	// FieldErrors, when present, is a non-empty ordered list of
	// "<field>: <reason>" lines in validation input order.
	FieldErrors []string
	// Status carries the HTTP status code when a response was received,
	// or 0 for network level failures. Local validation errors leave it 0.
	Status int
}

// NewError constructs an APIError with the provided summary.
func NewError(message string, status int) *APIError {
	return &APIError{Message: message, Status: status}
}

// NewValidationError constructs an APIError carrying field level detail.
// An empty fieldErrors slice is normalised to nil so that consumers can rely
// on "absent or non-empty".
func NewValidationError(message string, fieldErrors []string) *APIError {
	e := &APIError{Message: message}
	if len(fieldErrors) > 0 {
		e.FieldErrors = fieldErrors
	}
	return e
}

// Error renders the single-string form: the summary joined with each field
// line by newlines. Structured consumers read Message and FieldErrors
// directly; both forms derive from the same value without loss.
func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.FieldErrors) == 0 {
		return e.Message
	}
	return e.Message + "\n" + strings.Join(e.FieldErrors, "\n")
}

// Result is the discriminated outcome of an operation that can fail: either
// a success value or an APIError, never both. Construct via Ok or Err.
type Result[T any] struct {
	value T
	err   *APIError
	ok    bool
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err wraps a failure.
func Err[T any](err *APIError) Result[T] {
	if err == nil {
		err = NewError("unknown error", 0)
	}
	return Result[T]{err: err}
}

// OK reports whether the result holds a success value.
func (r Result[T]) OK() bool { return r.ok }

// Value returns the success payload; the zero value when the result failed.
func (r Result[T]) Value() T { return r.value }

// Err returns the failure; nil when the result succeeded.
func (r Result[T]) Err() *APIError {
	if r.ok {
		return nil
	}
	return r.err
}
