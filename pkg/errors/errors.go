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

	// Conversion errors
	ErrBelowAbsoluteZero ErrorCode = "BELOW_ABSOLUTE_ZERO"
	ErrNegativeValue     ErrorCode = "NEGATIVE_VALUE"
	ErrUnknownConversion ErrorCode = "UNKNOWN_CONVERSION"
	ErrNotANumber        ErrorCode = "NOT_A_NUMBER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// UnitError represents a structured error with code and details
type UnitError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnitError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnitError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UnitError) Is(target error) bool {
	var targetErr *UnitError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnitError with the given code and message
func New(code ErrorCode, message string) *UnitError {
	return &UnitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnitError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnitError {
	return &UnitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UnitError
func Wrap(err error, code ErrorCode, message string) *UnitError {
	if err == nil {
		return nil
	}
	return &UnitError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnitError {
	if err == nil {
		return nil
	}
	return &UnitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnitError) WithDetail(key string, value interface{}) *UnitError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		return unitErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a UnitError
func GetErrorCode(err error) ErrorCode {
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		return unitErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a UnitError
func GetErrorDetails(err error) map[string]interface{} {
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		return unitErr.Details
	}
	return nil
}

// Message returns the human readable message of the outermost UnitError in
// the chain, without the code prefix. Other errors return err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var unitErr *UnitError
	if errors.As(err, &unitErr) {
		return unitErr.Message
	}
	return err.Error()
}
