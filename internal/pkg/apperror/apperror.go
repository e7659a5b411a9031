package apperror

import "net/http"

// AppError is a custom error type that includes an HTTP status code and an optional internal error code.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Forbidden reports an actor without rights over an existing entity.
func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message)
}

// InvalidArgument reports a well-formed request that violates a business rule.
func InvalidArgument(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *AppError {
	return New(http.StatusConflict, message)
}
