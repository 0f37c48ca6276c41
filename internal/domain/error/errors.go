package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount   = 4002
	CodeInvalidUserID   = 4003
	CodeMissingCategory = 4007
	CodeUnauthorized    = 4010
	CodeSummaryNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when the transaction amount is negative or not a number
	ErrInvalidAmount = errors.New("amount must be a non-negative number")

	// ErrMissingCategory is returned when a transaction request carries no category
	ErrMissingCategory = errors.New("category is required")

	// ErrInvalidUserID is returned when the owner identifier is empty
	ErrInvalidUserID = errors.New("user identifier cannot be empty")

	// ErrSummaryNotFound is returned when no summary exists for a user that
	// should have one. Signup creates the summary, so absence indicates a
	// prior invariant violation and is surfaced rather than defaulted.
	ErrSummaryNotFound = errors.New("summary not found for user")

	// ErrUnauthorized is the single outcome for every login failure. The
	// distinguishing cause is deliberately discarded from the response and
	// only logged internally.
	ErrUnauthorized = errors.New("unauthorized access")

	// ErrInvalidRequest is returned when the request body cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDirectoryUnavailable is returned when the identity directory fails
	// outside the login path
	ErrDirectoryUnavailable = errors.New("user directory error")

	// ErrStoreUnavailable is returned when the record store cannot be reached
	ErrStoreUnavailable = errors.New("record store error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrMissingCategory):
		return CodeMissingCategory
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrSummaryNotFound):
		return CodeSummaryNotFound
	default:
		return CodeInternalServer
	}
}

// LedgerError describes a failed summary update for one user.
type LedgerError struct {
	UserID   string
	Category string
	Amount   float64
	Err      error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger update failed for user %s (category: %s, amount: %v): %v",
		e.UserID, e.Category, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"category":   e.Category,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError wraps a storage failure with the update that caused it
func NewLedgerError(userID, category string, amount float64, err error) error {
	return &LedgerError{
		UserID:   userID,
		Category: category,
		Amount:   amount,
		Err:      err,
	}
}

// IsSummaryNotFoundError checks if the error is a missing-summary error
func IsSummaryNotFoundError(err error) bool {
	return errors.Is(err, ErrSummaryNotFound)
}

// IsUnauthorizedError checks if the error is a login failure
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
