package errors

import (
	"net/http"

	"folio/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
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

// Predefined error types. The messages double as the wire-level "error" field,
// so they match the contract the frontend already depends on.
var (
	// ErrEmailPasswordRequired rejects signup/login payloads missing credentials.
	ErrEmailPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_PASSWORD_REQUIRED",
		"Email and password required.",
	)

	// ErrEmailAlreadyRegistered rejects duplicate signups.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"Email already registered.",
	)

	// ErrInvalidCredentials covers both unknown email and wrong password with
	// one indistinguishable message, so the endpoint cannot be used to probe
	// which addresses have accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials.",
	)

	// ErrNoToken rejects protected requests without a bearer token.
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"No token provided.",
	)

	// ErrInvalidToken covers expired, tampered and malformed access tokens.
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token.",
	)

	// ErrNoRefreshToken rejects refresh calls without the cookie.
	ErrNoRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_REFRESH_TOKEN",
		"No refresh token",
	)

	// ErrInvalidRefreshToken covers expired and tampered refresh tokens alike.
	ErrInvalidRefreshToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REFRESH_TOKEN",
		"Invalid refresh token",
	)

	// ErrUserNotFound is returned when the id inside a valid token no longer
	// resolves to a user row.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
	)

	// ErrNothingToUpdate rejects profile patches carrying neither field.
	ErrNothingToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_TO_UPDATE",
		"Nothing to update.",
	)

	// ErrDatabase surfaces storage failures without leaking driver details.
	ErrDatabase = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database error.",
	)

	// ErrInternal is the fallback for anything unclassified.
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
	)
)
