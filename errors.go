package main

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable error category shared by every tool.
type ErrorCode string

// Error codes.
const (
	// Input validation errors, raised before a transform runs
	ErrCodeInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrCodeOutOfRange     ErrorCode = "OUT_OF_RANGE"
	ErrCodeInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Transform-time errors
	ErrCodeParseFailed ErrorCode = "PARSE_FAILED"
	ErrCodeUnsupported ErrorCode = "UNSUPPORTED"

	// Placeholder tools that compute nothing
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Lookup errors
	ErrCodeUnknownTool   ErrorCode = "UNKNOWN_TOOL"
	ErrCodeUnknownOption ErrorCode = "UNKNOWN_OPTION"
	ErrCodeUnknownWidget ErrorCode = "UNKNOWN_WIDGET"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error is a structured error with a code, a human-readable message and an
// optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// newError creates an Error with the given code and formatted message.
func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// wrapError creates an Error around an existing error, typically a parser's.
func wrapError(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// isCode reports whether err carries the given code anywhere in its chain.
func isCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// errorCode extracts the code from err. Errors that did not originate here are
// reported as internal errors.
func errorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}

// errNotImplemented is returned by placeholder tools.
func errNotImplemented(tool string) *Error {
	return newError(ErrCodeNotImplemented, "%s is not implemented", tool)
}
