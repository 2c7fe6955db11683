// Package errors defines application errors that carry an HTTP status and a business code.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details. The copy keeps matching the
// original through errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors of the same business code, so detailed copies compare equal to the
// predefined value.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == e.errorCode && other.httpCode == e.httpCode
}

// Predefined error types
var (
	// Request errors
	ErrInvalidArgument = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ARGUMENT",
		"Invalid argument",
		"",
	)

	ErrRejectCommentRequired = NewBaseError(
		http.StatusBadRequest,
		"REJECT_COMMENT_REQUIRED",
		"A comment is required when rejecting a submission",
		"",
	)

	ErrInvalidDecision = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DECISION",
		"Decision must be approve or reject",
		"",
	)

	ErrFileRequired = NewBaseError(
		http.StatusBadRequest,
		"FILE_REQUIRED",
		"A photo file is required",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"FILE_TOO_LARGE",
		"The photo exceeds the maximum upload size",
		"",
	)

	// Authentication and authorization errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission denied",
		"",
	)

	ErrLoginUnsupported = NewBaseError(
		http.StatusNotImplemented,
		"LOGIN_NOT_SUPPORTED",
		"Password login is handled by the identity provider",
		"",
	)

	// Partner and location errors
	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"Partner not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Location not found",
		"",
	)

	// Catalog errors
	ErrBrandNotFound = NewBaseError(
		http.StatusNotFound,
		"BRAND_NOT_FOUND",
		"Brand not found",
		"",
	)

	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrRequirementNotFound = NewBaseError(
		http.StatusNotFound,
		"REQUIREMENT_NOT_FOUND",
		"Requirement not found",
		"",
	)

	// Submission errors
	ErrSubmissionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBMISSION_NOT_FOUND",
		"Submission not found",
		"",
	)

	ErrSubmissionAlreadyReviewed = NewBaseError(
		http.StatusConflict,
		"SUBMISSION_ALREADY_REVIEWED",
		"Submission has already been reviewed",
		"",
	)

	ErrUploadInProgress = NewBaseError(
		http.StatusConflict,
		"UPLOAD_IN_PROGRESS",
		"An upload with this idempotency key is still in progress",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"Failed to store the photo",
		"",
	)

	// User errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ALREADY_EXISTS",
		"A user with this email already exists",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL",
		"Internal error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
