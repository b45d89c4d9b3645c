// Package errors provides error types and utilities for urlsummary.
// It extends the standard errors package with additional context and wrapping capabilities.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrParse indicates a URL could not be split into its generic components
	ErrParse = errors.New("url parse failed")

	// ErrInvalidConfig indicates a configuration value is out of range or unknown
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedFormat indicates an unknown output format was requested
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

// Error implements the error interface
func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the underlying error
func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
//
// Example:
//
//	if err := render(w, result); err != nil {
//	    return errors.Wrap(err, "failed to render summary")
//	}
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   msg,
		cause: err,
	}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors.
// Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}

// IsParse reports whether the error is a URL parse error
func IsParse(err error) bool {
	return Is(err, ErrParse)
}

// IsInvalidConfig reports whether the error is a configuration error
func IsInvalidConfig(err error) bool {
	return Is(err, ErrInvalidConfig)
}

// IsUnsupportedFormat reports whether the error is an unknown output format error
func IsUnsupportedFormat(err error) bool {
	return Is(err, ErrUnsupportedFormat)
}
