package persistence

import (
	"context"
	"time"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
)

// SummaryRepository persists the per-user aggregate.
type SummaryRepository interface {
	// Create stores a fresh zeroed summary at signup time.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the record store call fails
	Create(ctx context.Context, summary *entity.Summary) error

	// GetByUserID retrieves the summary for a user.
	//
	// Possible errors:
	// - ErrSummaryNotFound: if no summary exists for this user
	// - ErrStoreUnavailable: if the record store call fails
	GetByUserID(ctx context.Context, userID string) (*entity.Summary, error)

	// AddTotals atomically adds the given deltas to the stored totals
	// and refreshes updatedAt. The write must fail with
	// ErrSummaryNotFound when the summary row does not exist, so a
	// missing-signup invariant violation still surfaces. Concurrent
	// calls for the same user must not lose either increment.
	AddTotals(ctx context.Context, userID string, creditDelta, debitDelta float64, updatedAt time.Time) error
}
