package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
)

// SummaryRepository implements the SummaryRepository port using GORM
type SummaryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewSummaryRepository creates a new postgres summary repository
func NewSummaryRepository(db *gorm.DB, logger coreport.Logger) persistence.SummaryRepository {
	return &SummaryRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a fresh summary row
func (r *SummaryRepository) Create(ctx context.Context, summary *entity.Summary) error {
	row := SummaryRow{
		UserID:      summary.UserID,
		TotalCredit: summary.TotalCredit,
		TotalDebit:  summary.TotalDebit,
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("Failed to create summary row", map[string]any{
			"user_id": summary.UserID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}
	return nil
}

// GetByUserID retrieves the summary row for a user
func (r *SummaryRepository) GetByUserID(ctx context.Context, userID string) (*entity.Summary, error) {
	var row SummaryRow
	result := r.db.WithContext(ctx).First(&row, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrSummaryNotFound
		}
		r.logger.Error("Failed to read summary row", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}

	return &entity.Summary{
		UserID:      row.UserID,
		TotalCredit: row.TotalCredit,
		TotalDebit:  row.TotalDebit,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// AddTotals advances the totals with an in-database increment so
// concurrent updates for the same user serialize on the row instead of
// overwriting each other. Zero affected rows means the summary was
// never created.
func (r *SummaryRepository) AddTotals(ctx context.Context, userID string, creditDelta, debitDelta float64, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&SummaryRow{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"total_credit": gorm.Expr("total_credit + ?", creditDelta),
			"total_debit":  gorm.Expr("total_debit + ?", debitDelta),
			"updated_at":   updatedAt,
		})

	if result.Error != nil {
		r.logger.Error("Failed to update summary totals", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrSummaryNotFound
	}
	return nil
}
