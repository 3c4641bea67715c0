package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrTokenNotFound   = errors.New("token not found")
	ErrInvalidFormat   = errors.New("invalid token format")
	ErrUnauthenticated = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Write errors
	ErrPartialWrite = errors.New("batch write stopped before completion")
)

// Entity lookups; each matches ErrResourceNotFound
var (
	ErrCourseNotFound       = fmt.Errorf("course: %w", ErrResourceNotFound)
	ErrLessonDetailNotFound = fmt.Errorf("lesson detail: %w", ErrResourceNotFound)
	ErrTeacherNotFound      = fmt.Errorf("teacher: %w", ErrResourceNotFound)
	ErrRoomNotFound         = fmt.Errorf("room: %w", ErrResourceNotFound)
	ErrStudentNotFound      = fmt.Errorf("student: %w", ErrResourceNotFound)
	ErrEnrollmentNotFound   = fmt.Errorf("enrollment: %w", ErrResourceNotFound)
)

// Uniqueness violations; each matches ErrResourceAlreadyExists
var (
	ErrTeacherEmailExists = fmt.Errorf("teacher email: %w", ErrResourceAlreadyExists)
	ErrRoomNameExists     = fmt.Errorf("room name: %w", ErrResourceAlreadyExists)
	ErrAlreadyEnrolled    = fmt.Errorf("enrollment: %w", ErrResourceAlreadyExists)
)

// Entity rule violations; each matches ErrValidationFailed
var (
	ErrInvalidCourseRange  = fmt.Errorf("%w: course start date must not be after end date", ErrValidationFailed)
	ErrInvalidLessonStatus = fmt.Errorf("%w: invalid lesson status", ErrValidationFailed)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError wraps ErrValidationFailed with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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
	Err       error
	Message   string
	StatusMsg string
	Code      string
	Details   map[string]interface{}
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithStatusMsg adds a user-friendly status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}

// PartialWriteError reports a sequential batch that stopped at its first failing write.
// Rows written before the failure are not rolled back.
type PartialWriteError struct {
	Written   int
	Remaining int
	Err       error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("wrote %d of %d records: %v", e.Written, e.Written+e.Remaining, e.Err)
}

// Unwrap exposes the failing write error
func (e *PartialWriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrPartialWrite) match
func (e *PartialWriteError) Is(target error) bool {
	return target == ErrPartialWrite
}
