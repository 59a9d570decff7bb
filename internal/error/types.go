package error

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation_error"
	ErrorTypeState      ErrorType = "state_error"
	ErrorTypeInput      ErrorType = "input_error"
	ErrorTypeConfig     ErrorType = "config_error"
	ErrorTypeInternal   ErrorType = "internal_error"
)

// AppError represents a structured application error.
// Message is safe to show to the player as-is.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// ------------------------------------------------------------------------------------------------------
// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// ------------------------------------------------------------------------------------------------------
func (e *AppError) Unwrap() error {
	return e.Err
}

// ------------------------------------------------------------------------------------------------------
// NewValidationError creates an error for rejected user input
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Err:     err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewStateError creates an error for an operation the current state does not allow
func NewStateError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeState,
		Message: message,
		Err:     err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewInputError creates an error for a failing or closed input stream
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewConfigError creates a configuration error
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// ------------------------------------------------------------------------------------------------------
// NewInternalError creates an internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// ------------------------------------------------------------------------------------------------------
// TypeOf returns the category of err, or ErrorTypeInternal for foreign errors
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// ------------------------------------------------------------------------------------------------------
// IsValidation reports whether err is a rejected-input error
func IsValidation(err error) bool {
	return err != nil && TypeOf(err) == ErrorTypeValidation
}

// ------------------------------------------------------------------------------------------------------
// Message returns the player-facing text of err
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
