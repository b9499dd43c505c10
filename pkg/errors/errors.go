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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Template I/O errors
	ErrFileOpen  ErrorCode = "FILE_OPEN"
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrFileClose ErrorCode = "FILE_CLOSE"

	// Working buffer errors
	ErrBufferOverflow   ErrorCode = "BUFFER_OVERFLOW"
	ErrTemplateTooLarge ErrorCode = "TEMPLATE_TOO_LARGE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Platform errors
	ErrHostDetect ErrorCode = "HOST_DETECT"
)

// BsconfError represents a structured error with code and details
type BsconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BsconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BsconfError) Unwrap() error {
	return e.Wrapped
}

// Is matches another BsconfError by code
func (e *BsconfError) Is(target error) bool {
	var targetErr *BsconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BsconfError with the given code and message
func New(code ErrorCode, message string) *BsconfError {
	return &BsconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BsconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BsconfError {
	return &BsconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BsconfError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *BsconfError {
	if err == nil {
		return nil
	}
	return &BsconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BsconfError {
	if err == nil {
		return nil
	}
	return &BsconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BsconfError) WithDetail(key string, value interface{}) *BsconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bsErr *BsconfError
	if errors.As(err, &bsErr) {
		return bsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BsconfError
func GetErrorCode(err error) ErrorCode {
	var bsErr *BsconfError
	if errors.As(err, &bsErr) {
		return bsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BsconfError
func GetErrorDetails(err error) map[string]interface{} {
	var bsErr *BsconfError
	if errors.As(err, &bsErr) {
		return bsErr.Details
	}
	return nil
}

// AddDetail records a detail on the BsconfError in err's chain, if there is
// one, and returns err unchanged.
func AddDetail(err error, key string, value interface{}) error {
	var bsErr *BsconfError
	if errors.As(err, &bsErr) {
		bsErr.WithDetail(key, value)
	}
	return err
}
