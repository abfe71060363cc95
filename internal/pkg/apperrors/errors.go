package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// Schedule errors. Placement invariant violations are owned by the models
// package; only the storage-level sentinel lives here.
var (
	ErrScheduleNotFound = errors.New("schedule not found")
)

// Catalog errors
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrCourseNotFound     = errors.New("course not found")
)

// Generation errors
var (
	ErrProviderCall    = errors.New("text generation provider call failed")
	ErrMalformedOutput = errors.New("generated output failed validation")
)

// CustomError carries a sentinel plus request-specific context. Callers
// match the sentinel with errors.Is; the HTTP layer surfaces Message and
// Details to the client.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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
