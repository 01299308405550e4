package errors

import (
	"errors"
	"fmt"
)

// AppError represents an application-specific error with a stable code
// the transport layer can map to an HTTP status.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails adds additional details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// Common error codes
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeValidationError = "VALIDATION_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// NotFound signals a lookup miss. It is distinct from a zero-valued record:
// callers receive no record at all, and handlers translate it to a 404.
func NotFound(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Cause: cause}
}

// InvalidInput signals a malformed request from the caller.
func InvalidInput(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message, Cause: cause}
}

// ValidationError signals a request that parsed but failed validation.
func ValidationError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeValidationError, Message: message, Cause: cause}
}

// InternalError signals an unexpected failure inside the service layer.
func InternalError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeInternalError, Message: message, Cause: cause}
}

// IsNotFound reports whether err is (or wraps) a NOT_FOUND AppError.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}
