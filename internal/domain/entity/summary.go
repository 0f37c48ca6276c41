package entity

import (
	"time"

	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
)

// Summary is the per-user running aggregate of credited and debited
// amounts. Exactly one summary exists per user; it is created with
// zeroed totals at signup and mutated only by the ledger updater.
type Summary struct {
	UserID      string    // Email of the owning user, primary key
	TotalCredit float64   // Sum of all credit amounts, never negative
	TotalDebit  float64   // Sum of all debit amounts, never negative
	CreatedAt   time.Time // Set once at signup
	UpdatedAt   time.Time // Refreshed on every ledger update
}

// NewSummary creates a zeroed summary for a freshly registered user.
func NewSummary(userID string, timeProvider coreport.TimeProvider) (*Summary, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	now := timeProvider.Now()
	return &Summary{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Profit is derived on read and never persisted.
func (s *Summary) Profit() float64 {
	return s.TotalCredit - s.TotalDebit
}

// Deltas returns the credit and debit increments a transaction with
// the given category and amount contributes to the summary. Every
// category other than "credit" is treated as a debit.
func Deltas(category string, amount float64) (credit float64, debit float64) {
	if category == CategoryCredit {
		return amount, 0
	}
	return 0, amount
}
