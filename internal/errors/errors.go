package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrUI     = "UI"
	ErrExec   = "EXEC"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrUI code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrUI,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInvalidPattern creates an error for a field pattern that won't compile.
func NewInvalidPattern(field string, cause error) *Error {
	return &Error{
		Code:       ErrConfig,
		Message:    fmt.Sprintf("The %s pattern isn't a valid regular expression", field),
		Suggestion: fmt.Sprintf("Fix %s.pattern in simplelogin.yaml, or remove it to accept any input.", field),
		Cause:      cause,
	}
}

// NewNoTerminal creates an error for starting the full-screen form without a TTY.
func NewNoTerminal() *Error {
	return &Error{
		Code:       ErrUI,
		Message:    "The login screen needs an interactive terminal",
		Suggestion: "Run 'simplelogin login --accessible' for line-based prompts.",
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var slErr *Error
	if errors.As(err, &slErr) {
		return slErr.Code == code
	}
	return false
}
