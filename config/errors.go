package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every ValidationError
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError describes a rejected configuration value or flag combination
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match both ErrInvalidConfig and the underlying cause
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidConfig, e.Err}
	}
	return []error{ErrInvalidConfig}
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
