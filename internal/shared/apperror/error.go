package apperror

import "fmt"

type AppError struct {
	Code       string // Stable machine-readable code (e.g., SHIFT_OVERLAP)
	Message    string // User-facing message
	HTTPStatus int    // HTTP status the handler should answer with
	Details    any    // Optional structured context (field names, ids)
	Err        error  // Wrapped original error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supports errors.Is/As on the wrapped cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without a wrapped cause
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap creates an AppError around an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails returns a shallow copy carrying structured details, so the
// package-level sentinels stay immutable.
func (e *AppError) WithDetails(details any) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}
