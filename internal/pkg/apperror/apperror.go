package apperror

import (
	"errors"
	"fmt"
)

// Code identifies a class of engine failure. Controllers map codes to HTTP
// statuses; services never partially apply an operation that returns one.
type Code string

const (
	CodeValidation          Code = "VALIDATION_ERROR"
	CodeStageClosed         Code = "STAGE_CLOSED"
	CodeDeadlinePassed      Code = "DEADLINE_PASSED"
	CodeAlreadyGrouped      Code = "ALREADY_GROUPED"
	CodeNothingToUndo       Code = "NOTHING_TO_UNDO"
	CodeInvalidPermutation  Code = "INVALID_PERMUTATION"
	CodeConcurrencyConflict Code = "CONCURRENCY_CONFLICT"
	CodeNotFound            Code = "NOT_FOUND"
	CodeForbidden           Code = "FORBIDDEN"
	CodeUnavailable         Code = "UNAVAILABLE"
)

type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a taxonomy code to an underlying error (typically a storage
// failure surfaced as CodeUnavailable).
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// CodeOf extracts the taxonomy code, defaulting to CodeUnavailable for
// untyped errors so that callers always get a retry-safe classification.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnavailable
}

func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
