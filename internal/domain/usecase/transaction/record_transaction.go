package transaction

import (
	"context"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// Recorder materializes immutable transaction records and keeps the
// owner's summary in step with them. The record write and the summary
// update are two separate calls: if the record write fails nothing
// happens, if the summary update fails afterwards the caller gets the
// error while the record stays persisted (documented consistency gap).
type Recorder struct {
	transactionRepo persistence.TransactionRepository
	ledger          usecase.LedgerUseCase
	idGen           coreport.IDGenerator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
}

// NewRecorder creates a new transaction recorder instance
func NewRecorder(
	transactionRepo persistence.TransactionRepository,
	ledger usecase.LedgerUseCase,
	idGen coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.TransactionUseCase {
	return &Recorder{
		transactionRepo: transactionRepo,
		ledger:          ledger,
		idGen:           idGen,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// RecordTransaction persists one transaction for the owner and applies
// it to the owner's summary.
func (r *Recorder) RecordTransaction(
	ctx context.Context,
	payload usecase.TransactionPayload,
	ownerID string,
) (*entity.TransactionRecord, error) {
	record, err := entity.NewTransactionRecord(
		ownerID,
		payload.Category,
		payload.Amount,
		payload.Extra,
		r.idGen,
		r.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := r.transactionRepo.Create(ctx, record); err != nil {
		r.logger.Error("Failed to persist transaction record", map[string]any{
			"transactionId": record.TransactionID,
			"userId":        ownerID,
			"error":         err.Error(),
		})
		return nil, err
	}

	if err := r.ledger.ApplyTransaction(ctx, ownerID, record.Category, record.Amount); err != nil {
		// The record is already persisted; the summary is now stale
		// until a later transaction succeeds. Surface the error so the
		// caller knows the aggregate was not advanced.
		r.logger.Error("Transaction persisted but summary update failed", map[string]any{
			"transactionId": record.TransactionID,
			"userId":        ownerID,
			"error":         err.Error(),
		})
		return nil, err
	}

	r.logger.Info("Transaction recorded", map[string]any{
		"transactionId": record.TransactionID,
		"userId":        ownerID,
		"category":      record.Category,
		"amount":        record.Amount,
	})
	return record, nil
}
