package core

import (
	"errors"
	"fmt"
)

// ErrZeroVector is returned when a direction is required but the vector has no length.
var ErrZeroVector = errors.New("core: zero-length direction vector")

// ConfigurationError reports an invalid setup detected while constructing the
// simulation: an unknown enum value, a bad tuning number, a zero direction.
// It is fatal; callers are expected to abort rather than retry.
type ConfigurationError struct {
	Field  string // Offending setting or argument (e.g. "archetypes[2].targeting")
	Reason string
	Err    error // Optional underlying cause
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConfigErrorf builds a ConfigurationError with a formatted reason.
func ConfigErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
