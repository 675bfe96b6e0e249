package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Validation messages shared by entity validators.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")

	// ErrEngineFailure marks an unexpected error returned by the storage engine.
	ErrEngineFailure = errors.New("storage engine failure")

	// ErrFieldDecode marks a stored record that could not be decoded. It is a
	// data-corruption class error and is never retried.
	ErrFieldDecode = errors.New("malformed stored record")
)

// Specific causes. Each one also matches its broader class via errors.Is.
var (
	// ErrEmptyTitle is the cause attached to a ValidationError when a todo
	// title is empty after normalisation.
	ErrEmptyTitle = errors.New("todo title is empty")

	// ErrTimeout is returned when a caller stops waiting for a command
	// response. It wraps ErrUnavailable and is safe to retry.
	ErrTimeout = fmt.Errorf("%w: timed out waiting for response", ErrUnavailable)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details. Cause, when set, is matched by
// errors.Is as well (e.g. ErrEmptyTitle).
type ValidationError struct {
	Fields map[string]string
	Cause  error
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValidation, e.Cause}
	}
	return []error{ErrValidation}
}

// IsRetryable reports whether err is transient and the same request may
// succeed if repeated (unavailable engine, timed-out wait).
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsCallerError reports whether err was caused by the request itself
// (invalid input or a missing entity) rather than by the service.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}
