package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateName indicates an attempt to create an account whose name is already taken.
var ErrDuplicateName = errors.New("account name already exists")

// ErrAccountInUse indicates an attempt to delete an account that is still
// referenced by transaction lines.
var ErrAccountInUse = errors.New("account is referenced by transaction lines")

// ErrInvalidLine indicates a malformed journal line (both sides filled,
// an amount without an account, or a negative amount).
var ErrInvalidLine = errors.New("invalid journal line")

// ErrInsufficientLines indicates a journal submission with fewer than two valid lines.
var ErrInsufficientLines = errors.New("journal must have at least two valid lines")

// ErrUnbalanced indicates a posted journal whose debits and credits do not
// balance within tolerance.
var ErrUnbalanced = errors.New("journal debits and credits do not balance")

// ErrStorage indicates a persistence failure during an atomic commit. No
// partial state is retained when this is returned.
var ErrStorage = errors.New("storage failure")

// AppError carries an HTTP-ish status code and a message alongside the
// underlying cause. Repositories use it to wrap low-level database errors.
type AppError struct {
	Code    int
	Message string
	Err     error
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
