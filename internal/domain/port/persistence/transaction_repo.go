package persistence

import (
	"context"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
)

// TransactionRepository persists immutable transaction records.
// Records are never updated or deleted; the summary aggregate is the
// only read path back.
type TransactionRepository interface {
	// Create stores one materialized transaction record.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the record store call fails
	Create(ctx context.Context, record *entity.TransactionRecord) error
}
