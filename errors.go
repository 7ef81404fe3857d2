package oxbridge

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by how they should be handled.
type ErrorCategory string

const (
	// ErrorConfiguration indicates missing credentials or an unreachable
	// remote service at startup. Fatal; surfaced immediately.
	ErrorConfiguration ErrorCategory = "configuration"

	// ErrorValidation indicates invalid local input, such as a missing
	// caller identity at tool-call time. Fatal per call; never retried.
	ErrorValidation ErrorCategory = "validation"

	// ErrorRemote indicates the remote service reported a business-logic
	// failure (success flag false). Surfaced with the remote message.
	ErrorRemote ErrorCategory = "remote"
)

// CategorizedError is an error that reports how it should be handled.
type CategorizedError interface {
	error
	Category() ErrorCategory
}

// Error is a categorized error with an optional underlying cause.
type Error struct {
	Msg   string
	Cat   ErrorCategory
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// NewConfigurationError creates a fatal startup configuration error.
func NewConfigurationError(msg string, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorConfiguration, Cause: cause}
}

// NewValidationError creates a local input validation error.
func NewValidationError(msg string) *Error {
	return &Error{Msg: msg, Cat: ErrorValidation}
}

// NewRemoteError creates an error carrying a remote-supplied failure message.
func NewRemoteError(msg string, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorRemote, Cause: cause}
}

// IsConfiguration returns true if the error is a configuration error.
func IsConfiguration(err error) bool {
	return categoryOf(err) == ErrorConfiguration
}

// IsValidation returns true if the error is a local validation error.
func IsValidation(err error) bool {
	return categoryOf(err) == ErrorValidation
}

// IsRemote returns true if the error carries a remote failure.
func IsRemote(err error) bool {
	return categoryOf(err) == ErrorRemote
}

func categoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}
