package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	// Upstream carries the raw backend response body when the error
	// originated from a backend call, so callers can surface it.
	Upstream string `json:"upstream,omitempty"`

	// remote marks errors translated from a backend response, so
	// classification does not depend on the body being non-empty.
	remote bool
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrUnauthorized   = &AppError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrForbidden      = &AppError{Code: http.StatusForbidden, Message: "Forbidden"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrNoSession      = &AppError{Code: http.StatusUnauthorized, Message: "No active terminal session"}
	ErrReportAccess   = &AppError{Code: http.StatusForbidden, Message: "Counter report access required"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewDuplicateError creates a conflict error for unique-constraint violations
func NewDuplicateError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewUpstreamError wraps a non-2xx backend response, preserving its status
// code and raw body for the caller.
func NewUpstreamError(status int, body string) *AppError {
	msg := "Backend request failed"
	if status == http.StatusNotFound {
		msg = "Backend resource not found"
	}
	return &AppError{
		Code:     status,
		Message:  msg,
		Upstream: body,
		remote:   true,
	}
}

// NewNetworkError wraps a transport-level failure (no HTTP response at all).
func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:     http.StatusBadGateway,
		Message:  "Backend unreachable",
		Upstream: err.Error(),
		remote:   true,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsDuplicate reports whether the error is a duplicate/conflict, either a
// client-side pre-check or a backend 400/409 unique-constraint response.
func IsDuplicate(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == http.StatusConflict ||
		(appErr.Code == http.StatusBadRequest && appErr.remote)
}

// IsUpstreamNotFound reports whether the error is a backend 404.
func IsUpstreamNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == http.StatusNotFound && appErr.remote
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
