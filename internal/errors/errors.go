package errors

import (
	"errors"
	"fmt"
)

// Common error types for the API client
var (
	// Authentication errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
	ErrNoCredential   = errors.New("no credential")

	// Response errors
	ErrInvalidResponse = errors.New("invalid response")
	ErrNotFound        = errors.New("not found")

	// Store errors
	ErrNoActiveTimer  = errors.New("no active timer")
	ErrEmptySelection = errors.New("no files selected")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
