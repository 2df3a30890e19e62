// Package validation provides common validation utilities for configuration
// parameters across the go-governor library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in constructors.
// It also carries the coercion policy for governor durations: invalid
// durations are never an error, they are normalized to documented defaults.
package validation
