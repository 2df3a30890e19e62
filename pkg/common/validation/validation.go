// Package validation provides common validation utilities for the
// go-governor library.
package validation

import (
	"time"

	gverrors "github.com/petsel/go-governor/pkg/common/errors"
)

// NormalizeDuration applies the coercion policy for governor durations:
// a non-positive duration is never an error, it is silently replaced by
// the component's documented fallback.
func NormalizeDuration(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// ValidatePositiveDuration validates that a duration is positive (> 0).
// Returns a ValidationError if it is not.
func ValidatePositiveDuration(module, field string, value time.Duration) error {
	if value <= 0 {
		return gverrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}

// ValidateNotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func ValidateNotEmpty(module, field string, value string) error {
	if value == "" {
		return gverrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}
