// Package errors provides custom error types for the Spendly API.
// Service-layer errors use AppError so handlers can render a consistent
// `{"error": ..., "code": ...}` body with the right status code.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil && e.StatusCode >= http.StatusInternalServerError {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target is an AppError with the same code, so wrapped
// copies of a sentinel still match it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Detail returns the message exposed to API clients. Server-side failures
// carry the underlying error text for diagnostics.
func (e *AppError) Detail() string {
	if e.Internal != nil && e.StatusCode >= http.StatusInternalServerError {
		return e.Internal.Error()
	}
	return e.Message
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized  = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden     = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Configuration errors. These surface lazily, on first use of the
// component that needs the missing setting.
var (
	ErrDatabaseNotConfigured  = &AppError{Code: "DATABASE_NOT_CONFIGURED", Message: "DATABASE_URL is not configured", StatusCode: http.StatusInternalServerError}
	ErrAssistantNotConfigured = &AppError{Code: "ASSISTANT_NOT_CONFIGURED", Message: "AI assistant is not configured", StatusCode: http.StatusServiceUnavailable}
	ErrAdminNotConfigured     = &AppError{Code: "ADMIN_NOT_CONFIGURED", Message: "Admin endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
)

// Sync errors.
var (
	ErrUserIDRequired = &AppError{Code: "USER_ID_REQUIRED", Message: "User ID is required", StatusCode: http.StatusBadRequest}
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
)

// Assistant errors.
var (
	ErrMessageRequired = &AppError{Code: "MESSAGE_REQUIRED", Message: "Message is required", StatusCode: http.StatusBadRequest}
	ErrAssistantFailed = &AppError{Code: "ASSISTANT_FAILED", Message: "AI assistant request failed", StatusCode: http.StatusBadGateway}
)
