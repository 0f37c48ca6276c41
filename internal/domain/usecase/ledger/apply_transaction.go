package ledger

import (
	"context"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// Updater keeps the per-user summary consistent with appended
// transactions. The summary is read first so a missing row surfaces as
// an invariant violation, then the totals are advanced with an atomic
// add-delta write so concurrent transactions for the same user cannot
// lose updates.
type Updater struct {
	summaryRepo  persistence.SummaryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUpdater creates a new ledger updater instance
func NewUpdater(
	summaryRepo persistence.SummaryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Updater{
		summaryRepo:  summaryRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ApplyTransaction folds one transaction into the owner's summary.
func (u *Updater) ApplyTransaction(ctx context.Context, userID, category string, amount float64) error {
	if userID == "" {
		return errs.ErrInvalidUserID
	}
	if amount < 0 {
		return errs.ErrInvalidAmount
	}

	// Signup must have created the summary; absence means that
	// invariant was broken and must not be papered over with a default.
	summary, err := u.summaryRepo.GetByUserID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to read summary", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return errs.NewLedgerError(userID, category, amount, err)
	}

	creditDelta, debitDelta := entity.Deltas(category, amount)

	if err := u.summaryRepo.AddTotals(ctx, userID, creditDelta, debitDelta, u.timeProvider.Now()); err != nil {
		u.logger.Error("Failed to update summary totals", map[string]any{
			"userId":      userID,
			"creditDelta": creditDelta,
			"debitDelta":  debitDelta,
			"error":       err.Error(),
		})
		return errs.NewLedgerError(userID, category, amount, err)
	}

	u.logger.Info("Summary updated", map[string]any{
		"userId":      userID,
		"category":    category,
		"amount":      amount,
		"totalCredit": summary.TotalCredit + creditDelta,
		"totalDebit":  summary.TotalDebit + debitDelta,
	})
	return nil
}
