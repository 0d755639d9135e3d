// Package errors provides structured errors with stable codes for the
// rendering pipeline. Codes let callers (and tests) branch on error
// categories without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Render-time errors
	ErrValuesExhausted  ErrorCode = "VALUES_EXHAUSTED"
	ErrMalformedGroup   ErrorCode = "MALFORMED_GROUP"
	ErrUnsupportedType  ErrorCode = "UNSUPPORTED_OBJECT_TYPE"
	ErrInvalidColor     ErrorCode = "INVALID_COLOR"
	ErrMacroNotFound    ErrorCode = "MACRO_NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// FdlError represents a structured error with code and details
type FdlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FdlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FdlError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FdlError) Is(target error) bool {
	var targetErr *FdlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FdlError with the given code and message
func New(code ErrorCode, message string) *FdlError {
	return &FdlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FdlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FdlError {
	return &FdlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an FdlError
func Wrap(err error, code ErrorCode, message string) *FdlError {
	if err == nil {
		return nil
	}
	return &FdlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FdlError {
	if err == nil {
		return nil
	}
	return &FdlError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FdlError) WithDetail(key string, value interface{}) *FdlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fdlErr *FdlError
	if errors.As(err, &fdlErr) {
		return fdlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an FdlError
func GetErrorCode(err error) ErrorCode {
	var fdlErr *FdlError
	if errors.As(err, &fdlErr) {
		return fdlErr.Code
	}
	return ErrUnknown
}
