// Package errors provides structured error types for the forge CLI with
// error categories, stable codes, and cause chains.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeResource   ErrorType = "resource"
	ErrorTypeRender     ErrorType = "render"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// ForgeError is a structured error type with context.
type ForgeError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Path        string
	Recoverable bool
}

// Error implements the error interface.
func (e *ForgeError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ForgeError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison on (type, code).
func (e *ForgeError) Is(target error) bool {
	var t *ForgeError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithPath attaches the filesystem path the error relates to.
func (e *ForgeError) WithPath(path string) *ForgeError {
	e.Path = path

	return e
}

// Error creation functions

// NewValidationError creates a validation error. Validation errors are
// recoverable: the prompt layer re-asks instead of aborting.
func NewValidationError(code, message string) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewResourceError creates a resource-unavailable error. These are soft
// outcomes: the run reports false instead of failing.
func NewResourceError(code, message string) *ForgeError {
	return &ForgeError{
		Type:        ErrorTypeResource,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewRenderError creates a template rendering error.
func NewRenderError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:    ErrorTypeRender,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ForgeError {
	return &ForgeError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ForgeError {
	return &ForgeError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsResourceUnavailable reports whether err is a resource-unavailable error,
// the one error class the generation driver turns into a clean false result
// rather than a failure.
func IsResourceUnavailable(err error) bool {
	var fe *ForgeError

	return errors.As(err, &fe) && fe.Type == ErrorTypeResource
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var fe *ForgeError
	if errors.As(err, &fe) {
		return fe.Recoverable
	}

	return false
}
