package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidMonth indicates that a month token is not in YYYY-MM form.
var ErrInvalidMonth = errors.New("invalid month")

// ErrChargeNotFound indicates that a payment referenced a lease charge that does not exist.
var ErrChargeNotFound = errors.New("lease charge not found")

// ErrPaymentExceedsBalance indicates that a payment is larger than the charge's remaining balance.
var ErrPaymentExceedsBalance = errors.New("payment exceeds balance remaining")

// ErrStoreUnavailable indicates that the record store could not serve a read.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrStoreOperationFailed indicates that the record store rejected a create or update.
var ErrStoreOperationFailed = errors.New("record store operation failed")

// ErrMissingWorkspaceContext indicates that a call was made without workspace scoping.
var ErrMissingWorkspaceContext = errors.New("workspace context is required for property-management queries")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
