// Package errors defines application-level errors that carry the HTTP
// status and client-facing message for the API envelope.
package errors

import (
	"net/http"

	"thoughts/internal/errors"
)

// AppError is the interface the delivery layer uses to translate
// failures from the usecase layer into HTTP responses.
type AppError interface {
	error
	HTTPCode() int    // HTTP status code
	Message() string  // client-facing message, returned verbatim in the envelope
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode int
	message  string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, message string) *BaseError {
	return &BaseError{
		httpCode: httpCode,
		message:  message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// Message returns the client-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages are part of the public API contract
// and must not be reworded.
var (
	// User-related errors
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"User name and password are required",
	)

	ErrUserNameTaken = NewBaseError(
		http.StatusConflict,
		"User name already exists",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusBadRequest,
		"Failed to create user",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"User not found",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"Invalid password",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusInternalServerError,
		"Failed to log in",
	)

	// Thought-related errors
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"Invalid ID format.",
	)

	ErrMessageLength = NewBaseError(
		http.StatusBadRequest,
		"Message must be between 5 and 140 characters.",
	)

	ErrInvalidTags = NewBaseError(
		http.StatusBadRequest,
		"Tags must be from the fixed set of categories.",
	)

	ErrThoughtNotFound = NewBaseError(
		http.StatusNotFound,
		"Thought not found!",
	)

	ErrNoThoughtsFound = NewBaseError(
		http.StatusNotFound,
		"No thoughts found on that query. Try another one.",
	)

	ErrFetchThoughts = NewBaseError(
		http.StatusInternalServerError,
		"Failed to fetch thoughts.",
	)

	ErrCreateThought = NewBaseError(
		http.StatusInternalServerError,
		"Failed to create thought.",
	)

	ErrEditThought = NewBaseError(
		http.StatusInternalServerError,
		"Failed to edit thought.",
	)

	ErrDeleteThought = NewBaseError(
		http.StatusInternalServerError,
		"Failed to delete thought.",
	)

	ErrLikeThought = NewBaseError(
		http.StatusInternalServerError,
		"Failed to like thought.",
	)
)

// DatabaseExecuteError represents a store-layer failure that should surface
// as a 500 while preserving the underlying cause for logging.
type DatabaseExecuteError struct {
	err     error
	message string
}

// NewDatabaseExecuteError creates a store-related error with the
// client-facing message of the operation that failed.
func NewDatabaseExecuteError(err error, message string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		message: message,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// Message returns the client-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return e.message
}
