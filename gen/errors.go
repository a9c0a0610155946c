// Package gen generates Go model code from a database ER model.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidModel indicates an ER model that cannot be generated from.
	ErrInvalidModel = errors.New("draft: invalid model")
	// ErrMissingConfig indicates a generator configuration error.
	ErrMissingConfig = errors.New("draft: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("draft: code generation failed")
)

// ModelError represents an ER model error found during generation.
type ModelError struct {
	Entity  string // entity name
	Field   string // field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ModelError) Error() string {
	var b strings.Builder
	b.WriteString("draft: model error")
	if e.Entity != "" {
		b.WriteString(" on entity ")
		b.WriteString(e.Entity)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Is reports whether the target error matches ErrInvalidModel.
func (e *ModelError) Is(err error) bool {
	return err == ErrInvalidModel
}

// Unwrap returns the underlying cause, if any.
func (e *ModelError) Unwrap() error { return e.Cause }

// ConfigError represents a generator configuration error.
type ConfigError struct {
	Name    string // option name
	Value   any    // rejected value
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("draft: config error on %s (%v): %s", e.Name, e.Value, e.Message)
	}
	return fmt.Sprintf("draft: config error on %s: %s", e.Name, e.Message)
}

// Is reports whether the target error matches ErrMissingConfig.
func (e *ConfigError) Is(err error) bool {
	return err == ErrMissingConfig
}

// NewConfigError returns a new ConfigError.
func NewConfigError(name string, value any, message string) *ConfigError {
	return &ConfigError{Name: name, Value: value, Message: message}
}
