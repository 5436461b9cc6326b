package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Stable machine-readable error kinds surfaced to API clients
const (
	KindNotFound            = "not_found"
	KindInvalidAmount       = "invalid_amount"
	KindInsufficientBalance = "insufficient_balance"
	KindConflict            = "conflict"
	KindValidation          = "validation"
	KindUnauthorized        = "unauthorized"
	KindForbidden           = "forbidden"
	KindInternal            = "internal"
)

// AppError represents an application error with an HTTP status and a
// stable kind string clients can switch on
type AppError struct {
	Code    int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, KindNotFound, message, nil)
}

// InvalidAmountError creates a 422 error for amounts below the minimum
// or otherwise malformed
func InvalidAmountError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, KindInvalidAmount, message, nil)
}

// InsufficientBalanceError creates a 422 error for payout requests that
// exceed the available balance
func InsufficientBalanceError(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, KindInsufficientBalance, message, nil)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, KindConflict, message, err)
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, KindValidation, message, err)
}

// UnauthorizedError creates a 401 Unauthorized error
func UnauthorizedError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, KindUnauthorized, message, err)
}

// ForbiddenError creates a 403 Forbidden error
func ForbiddenError(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, KindForbidden, message, err)
}

// GetAppError returns the AppError if the error wraps one
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsKind checks whether an error carries the given kind
func IsKind(err error, kind string) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind == kind
	}
	return false
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
