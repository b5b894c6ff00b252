// Package errors defines the application error taxonomy shared by the
// ingestion pipeline and the HTTP API. Errors carry a code so the outermost
// handler can translate them to status codes in exactly one place.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a resource (job, push, dataset) was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique constraint violation).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeMalformed indicates an unparseable job payload.
	ErrCodeMalformed ErrorCode = "malformed"
	// ErrCodeMissingField indicates a required payload path was absent.
	ErrCodeMissingField ErrorCode = "missing_field"
	// ErrCodeInvalidState indicates an unrecognized job state value.
	ErrCodeInvalidState ErrorCode = "invalid_state"
	// ErrCodeForeignKey indicates a foreign key constraint violation.
	ErrCodeForeignKey ErrorCode = "foreign_key"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: fmt.Sprintf(format, args...)}
}

// Malformed creates a new Malformed error for unparseable payloads.
func Malformed(message string) *AppError {
	return &AppError{Code: ErrCodeMalformed, Message: message}
}

// Malformedf creates a new Malformed error with formatted message.
func Malformedf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeMalformed, Message: fmt.Sprintf(format, args...)}
}

// MissingField creates a new MissingField error for an absent payload path.
func MissingField(message string) *AppError {
	return &AppError{Code: ErrCodeMissingField, Message: message}
}

// InvalidState creates a new InvalidState error for an unrecognized job state.
func InvalidState(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: message}
}

// InvalidStatef creates a new InvalidState error with formatted message.
func InvalidStatef(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool {
	return isCode(err, ErrCodeConflict)
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsMalformed checks if an error is a Malformed error.
func IsMalformed(err error) bool {
	return isCode(err, ErrCodeMalformed)
}

// IsMissingField checks if an error is a MissingField error.
func IsMissingField(err error) bool {
	return isCode(err, ErrCodeMissingField)
}

// IsInvalidState checks if an error is an InvalidState error.
func IsInvalidState(err error) bool {
	return isCode(err, ErrCodeInvalidState)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}
