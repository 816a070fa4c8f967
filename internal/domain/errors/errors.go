package errors

import (
	"net/http"

	"linkvault/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so values
// produced by WithDetails still satisfy errors.Is against the predefined ones.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Wallet and account errors
	ErrWalletNotConnected = NewBaseError(
		http.StatusUnauthorized,
		"WALLET_NOT_CONNECTED",
		"Please connect your wallet first",
		"",
	)

	ErrInsufficientBalance = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_BALANCE",
		"Insufficient balance to store this profile",
		"",
	)

	// Write flow errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Profile upload failed, please try again",
		"",
	)

	// Read flow errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found or could not be loaded",
		"",
	)

	ErrUsernameNotFound = NewBaseError(
		http.StatusNotFound,
		"USERNAME_NOT_FOUND",
		"Username not found",
		"",
	)

	// Validation errors
	ErrInvalidUsername = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USERNAME",
		"Username can only contain lowercase letters, numbers, and hyphens",
		"",
	)

	ErrMissingRequiredField = NewBaseError(
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELD",
		"A required field is missing",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transport errors
	ErrNetworkError = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"The storage network could not be reached",
		"",
	)

	// Access errors
	ErrPasswordRequired = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_REQUIRED",
		"This profile is password protected",
		"",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Incorrect password",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)
