package errors

import (
	"net/http"

	"shopseva/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, also the translation key
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

// WithDetails returns a copy carrying details. The copy still matches the
// original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Listing errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrShopValidation = NewBaseError(
		http.StatusBadRequest,
		"SHOP_VALIDATION_FAILED",
		"Shop details are invalid",
		"",
	)

	ErrInvalidContact = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTACT",
		"Contact number must be exactly 10 digits",
		"",
	)

	ErrImageCount = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_COUNT_OUT_OF_RANGE",
		"A shop needs between 2 and 3 images",
		"",
	)

	ErrImageTooLarge = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_TOO_LARGE",
		"Image exceeds the size limit",
		"",
	)

	ErrImageInvalid = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_INVALID",
		"Image is not valid embedded data",
		"",
	)

	ErrImageLimitReached = NewBaseError(
		http.StatusConflict,
		"IMAGE_LIMIT_REACHED",
		"The shop already holds the maximum number of images",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_MODERATION_TRANSITION",
		"The shop is not awaiting review",
		"",
	)

	ErrNotApproved = NewBaseError(
		http.StatusConflict,
		"SHOP_NOT_APPROVED",
		"Only approved shops can be changed this way",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS",
		"Unknown moderation status",
		"",
	)

	// Review errors
	ErrReviewValidation = NewBaseError(
		http.StatusBadRequest,
		"REVIEW_VALIDATION_FAILED",
		"Rating must be between 1 and 5 and the review text is required",
		"",
	)

	// Contact errors
	ErrMessageNotFound = NewBaseError(
		http.StatusNotFound,
		"MESSAGE_NOT_FOUND",
		"Message not found",
		"",
	)

	ErrMessageValidation = NewBaseError(
		http.StatusBadRequest,
		"MESSAGE_VALIDATION_FAILED",
		"Name, a valid email and a message are required",
		"",
	)

	// Engagement errors
	ErrDeviceIDMissing = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_ID_MISSING",
		"A device identifier is required",
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
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too short",
		"",
	)

	ErrIDTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"ID_TOKEN_INVALID",
		"Sign-in token is invalid",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Verify your email address before signing in",
		"",
	)

	ErrFederatedLoginDisabled = NewBaseError(
		http.StatusNotImplemented,
		"FEDERATED_LOGIN_DISABLED",
		"Federated sign-in is not enabled",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Sign-in required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)
)

// DatabaseExecuteError represents a persistence failure, implementing the AppError interface
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

// Unwrap exposes the store error.
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
	return "Could not save your changes, please try again"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
