package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the authenticated caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// Attendance state conflicts. These are user-facing "already done" signals,
// not transient failures; callers must not retry them.
var (
	// ErrDuplicateCheckIn indicates the employee has already checked in today.
	ErrDuplicateCheckIn = errors.New("already checked in today")

	// ErrAlreadyCompleted indicates today's attendance record is closed; a closed day is never re-opened.
	ErrAlreadyCompleted = errors.New("attendance already completed for today")

	// ErrNoActiveCheckIn indicates a check-out was attempted without a prior check-in today.
	ErrNoActiveCheckIn = errors.New("no active check-in for today")

	// ErrInvalidOrdering indicates a check-out timestamp at or before the check-in timestamp.
	ErrInvalidOrdering = errors.New("check-out must be after check-in")
)

// ErrInsufficientBalance indicates a deduction would drive the available leave balance negative.
var ErrInsufficientBalance = errors.New("insufficient leave balance")

// ErrConcurrentUpdate indicates optimistic concurrency retries were exhausted.
var ErrConcurrentUpdate = errors.New("concurrent update detected")

// ErrStorageTimeout indicates a store operation exceeded its deadline; the transaction was aborted.
var ErrStorageTimeout = errors.New("storage operation timed out")

// ErrStorageUnavailable indicates a transient store failure (connection refused, pool exhausted).
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrDataIntegrity indicates a stored invariant violation (e.g. used > allocated) detected on read.
// Surfaced, never auto-corrected.
var ErrDataIntegrity = errors.New("data integrity violation")

// AppError carries an HTTP-mappable status code alongside the wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: nil}
}

// IsStateConflict reports whether err is one of the attendance state machine rejections.
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrDuplicateCheckIn) ||
		errors.Is(err, ErrAlreadyCompleted) ||
		errors.Is(err, ErrNoActiveCheckIn) ||
		errors.Is(err, ErrInvalidOrdering)
}

// IsTransient reports whether a read may be retried transparently.
// State-changing operations are never auto-retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}
