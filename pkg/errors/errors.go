// pkg/errors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error types
const (
	ErrValidation          = "VALIDATION_ERROR"
	ErrNotFound            = "NOT_FOUND"
	ErrAssetNotFound       = "ASSET_NOT_FOUND"
	ErrUserNotFound        = "USER_NOT_FOUND"
	ErrInsufficientCredits = "INSUFFICIENT_CREDITS"
	ErrGenerationFailure   = "GENERATION_FAILURE"
	ErrInternalServer      = "INTERNAL_SERVER_ERROR"
	ErrBadRequest          = "BAD_REQUEST"
)

// AppError represents a custom application error
type AppError struct {
	Type       string `json:"type"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`

	cause error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s - %s", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// NewAppError creates a new AppError
func NewAppError(errorType string, statusCode int, message string, details ...string) *AppError {
	var detail string
	if len(details) > 0 {
		detail = details[0]
	}

	return &AppError{
		Type:       errorType,
		StatusCode: statusCode,
		Message:    message,
		Details:    detail,
	}
}

// Wrap creates an AppError that keeps err as its cause and uses its text as details.
func Wrap(err error, errorType string, statusCode int, message string) *AppError {
	appErr := NewAppError(errorType, statusCode, message, err.Error())
	appErr.cause = err
	return appErr
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// GetErrorType extracts the error type from an error
func GetErrorType(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// GetStatusCode extracts the status code from an error
func GetStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Helper functions to create common errors
func NewValidationError(details string) *AppError {
	return NewAppError(ErrValidation, http.StatusUnprocessableEntity, "validation failed", details)
}

func NewAssetNotFoundError() *AppError {
	return NewAppError(ErrAssetNotFound, http.StatusNotFound, "Asset not found")
}

func NewUserNotFoundError() *AppError {
	return NewAppError(ErrUserNotFound, http.StatusNotFound, "User not found")
}

func NewInsufficientCreditsError() *AppError {
	return NewAppError(ErrInsufficientCredits, http.StatusPaymentRequired, "Insufficient credits")
}

func NewGenerationFailureError(err error) *AppError {
	return Wrap(err, ErrGenerationFailure, http.StatusInternalServerError, "AI generation failed")
}

func NewInternalError(err error) *AppError {
	return Wrap(err, ErrInternalServer, http.StatusInternalServerError, "internal server error")
}
