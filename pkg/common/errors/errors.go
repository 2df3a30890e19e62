// Package errors defines the error types shared across the go-governor
// library. Governors never surface runtime errors (invalid inputs are
// coerced, not rejected); these types are returned only by the strict
// NewSafe/NewCron constructors.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration indicates invalid configuration parameters.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ValidationError describes a rejected configuration value.
type ValidationError struct {
	Module string // component reporting the error, e.g. "throttle"
	Field  string // offending field, e.g. "threshold"
	Value  any    // the rejected value
	Reason string // why the value was rejected
	Hint   string // optional suggestion for the caller
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a suggestion to the error and returns the same instance
// for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) to match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// OperationError describes a failed operation with its underlying cause.
type OperationError struct {
	Module    string // component reporting the error
	Operation string // operation that failed, e.g. "ParseSchedule"
	Cause     error  // underlying error
	Context   string // optional extra context
}

// NewOperationError creates an OperationError for the given module and operation.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches extra context to the error and returns the same
// instance for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
