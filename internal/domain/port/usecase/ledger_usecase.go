package usecase

import "context"

// LedgerUseCase keeps the per-user summary consistent with appended
// transactions.
type LedgerUseCase interface {
	// ApplyTransaction reads the user's current aggregate, recomputes
	// the totals for the new transaction, and persists them back with a
	// fresh updatedAt. A missing summary is an invariant violation and
	// fails with ErrSummaryNotFound.
	ApplyTransaction(ctx context.Context, userID, category string, amount float64) error
}
