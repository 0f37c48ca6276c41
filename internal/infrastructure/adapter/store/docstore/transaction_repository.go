package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
)

// TransactionRepository implements the TransactionRepository port
// using GORM
type TransactionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewTransactionRepository creates a new postgres transaction repository
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) persistence.TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores one transaction record, extras serialized as JSON
func (r *TransactionRepository) Create(ctx context.Context, record *entity.TransactionRecord) error {
	var extra []byte
	if len(record.Extra) > 0 {
		var err error
		extra, err = json.Marshal(record.Extra)
		if err != nil {
			return fmt.Errorf("%w: marshal extra fields: %s", errs.ErrStoreUnavailable, err.Error())
		}
	}

	row := TransactionRow{
		TransactionID: record.TransactionID,
		UserID:        record.UserID,
		Category:      record.Category,
		Amount:        record.Amount,
		CreatedAt:     record.CreatedAt,
		Extra:         extra,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to create transaction row", map[string]any{
			"transaction_id": record.TransactionID,
			"user_id":        record.UserID,
			"error":          err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	return nil
}
