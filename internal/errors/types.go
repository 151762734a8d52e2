// Package errors provides the structured error infrastructure for the
// mirror toolchain: coded errors with model-file locations and fix
// suggestions, surfaced to users through the CLI diagnostic reporter.
package errors

import "fmt"

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota

	// Model loading error types
	SyntaxErrorCode
	ValidationErrorCode
	RegistrationErrorCode
	ResolutionErrorCode

	// Generation error types
	GenerationErrorCode
	FileSystemErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case ValidationErrorCode:
		return "ValidationError"
	case RegistrationErrorCode:
		return "RegistrationError"
	case ResolutionErrorCode:
		return "ResolutionError"
	case GenerationErrorCode:
		return "GenerationError"
	case FileSystemErrorCode:
		return "FileSystemError"
	default:
		return "UnknownError"
	}
}

// SourceLocation represents where an error occurred in a model file
type SourceLocation struct {
	File string // model file path
	Line int    // line number (1-based), 0 when unknown
}

// String returns a formatted string representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	if s.Line == 0 {
		return s.File
	}
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}

// IsEmpty returns true if the location has no useful information
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// Error is a coded error with optional location, cause and fix suggestions
type Error struct {
	Code    ErrorCode
	Message string
	Loc     SourceLocation
	Cause   error
	Hints   []string // suggestions for fixing the error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Loc.IsEmpty() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Loc.String(), e.Message)
}

// Unwrap returns the underlying cause for error chain inspection
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithLocation adds location information to the error
func (e *Error) WithLocation(loc SourceLocation) *Error {
	e.Loc = loc
	return e
}

// WithCause adds an underlying error cause
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// New creates a new Error with the specified code and message
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new Error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf creates a new Error that wraps another error with a formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...interface{}) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}
