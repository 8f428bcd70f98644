package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error codes
const (
	ErrCodeUnknownMode = "UNKNOWN_MODE"
	ErrCodeInvalidDeck = "INVALID_DECK"
	ErrCodeDeckSource  = "DECK_SOURCE"
	ErrCodeConfig      = "CONFIG"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// AppError represents a configuration-time failure that prevents a quiz from starting.
type AppError struct {
	Code     string // Error code (e.g., "UNKNOWN_MODE", "INVALID_DECK")
	Message  string // Human-readable error message
	ExitCode int    // Process exit code for the CLI
	Err      error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%v)", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewUnknownModeError creates a new UNKNOWN_MODE error listing the accepted modes
func NewUnknownModeError(mode string, available []string) *AppError {
	return &AppError{
		Code:     ErrCodeUnknownMode,
		Message:  fmt.Sprintf("unknown quiz mode %q. Available: %s", mode, strings.Join(available, ", ")),
		ExitCode: ExitUsage,
	}
}

// NewInvalidDeckError creates a new INVALID_DECK error
func NewInvalidDeckError(reason string) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidDeck,
		Message:  reason,
		ExitCode: ExitFailure,
	}
}

// NewCardValidationError creates an INVALID_DECK error for a single card.
// index is zero-based; the message uses the 1-based card number.
func NewCardValidationError(index int, field string, reason string) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidDeck,
		Message:  fmt.Sprintf("card %d: '%s' field %s", index+1, field, reason),
		ExitCode: ExitFailure,
	}
}

// NewDeckSourceError creates a new DECK_SOURCE error wrapping an I/O or decode failure
func NewDeckSourceError(path string, err error) *AppError {
	return &AppError{
		Code:     ErrCodeDeckSource,
		Message:  fmt.Sprintf("failed to load deck from %s", path),
		ExitCode: ExitFailure,
		Err:      err,
	}
}

// NewConfigError creates a new CONFIG error
func NewConfigError(field string, reason string) *AppError {
	return &AppError{
		Code:     ErrCodeConfig,
		Message:  fmt.Sprintf("invalid configuration for %s: %s", field, reason),
		ExitCode: ExitUsage,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ExitCodeOf returns the exit code for err. Errors that are not AppErrors map to ExitFailure.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.ExitCode
	}
	return ExitFailure
}
