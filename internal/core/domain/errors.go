// internal/core/domain/errors.go
package domain

import (
	"fmt"

	"urlsummary/internal/platform/errors"
)

// ParseError reports a URL that could not be split into its generic components.
type ParseError struct {
	URL      string
	Position int // 0-based index in the input sequence
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("url #%d %q: %v", e.Position, e.URL, e.Err)
}

// Unwrap exposes the cause, which wraps errors.ErrParse.
func (e *ParseError) Unwrap() error {
	if e.Err == nil {
		return errors.ErrParse
	}
	return e.Err
}

// ConfigError reports an option outside its accepted range.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%v %s", errors.ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Unwrap returns errors.ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return errors.ErrInvalidConfig
}
