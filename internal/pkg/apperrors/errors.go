package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Entity errors. Each one unwraps to ErrResourceNotFound so the central
// error handler maps them to 404.
var (
	ErrStudentNotFound = NewResourceNotFoundError("student not found")
	ErrUserNotFound    = NewResourceNotFoundError("user not found")
	ErrCourseNotFound  = NewResourceNotFoundError("course not found")
	ErrResultNotFound  = NewResourceNotFoundError("result not found")
	ErrInquiryNotFound = NewResourceNotFoundError("inquiry not found")
	ErrGalleryNotFound = NewResourceNotFoundError("gallery item not found")
	ErrTopperNotFound  = NewResourceNotFoundError("topper not found")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for an already existing resource with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrResourceAlreadyExists,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
