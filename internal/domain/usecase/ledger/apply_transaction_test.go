package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coremocks "github.com/adelahmadi/fintrack/mocks/port/core"
	persistencemocks "github.com/adelahmadi/fintrack/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := "a@x.com"

	existing := &entity.Summary{
		UserID:      userID,
		TotalCredit: 50,
		TotalDebit:  20,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}

	t.Run("Credit transaction adds to total credit only", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.On("GetByUserID", mock.Anything, userID).Return(existing, nil).Once()
		mockTime.On("Now").Return(fixedTime).Once()
		mockRepo.On("AddTotals", mock.Anything, userID, float64(100), float64(0), fixedTime).Return(nil).Once()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, userID, "credit", 100)
		require.NoError(t, err)
	})

	t.Run("Non-credit category adds to total debit only", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.On("GetByUserID", mock.Anything, userID).Return(existing, nil).Once()
		mockTime.On("Now").Return(fixedTime).Once()
		mockRepo.On("AddTotals", mock.Anything, userID, float64(0), float64(30), fixedTime).Return(nil).Once()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, userID, "groceries", 30)
		require.NoError(t, err)
	})

	t.Run("Missing summary surfaces as invariant violation", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.On("GetByUserID", mock.Anything, userID).Return(nil, errs.ErrSummaryNotFound).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, userID, "credit", 100)
		assert.ErrorIs(t, err, errs.ErrSummaryNotFound)
	})

	t.Run("Write failure propagates", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.On("GetByUserID", mock.Anything, userID).Return(existing, nil).Once()
		mockTime.On("Now").Return(fixedTime).Once()
		mockRepo.On("AddTotals", mock.Anything, userID, float64(100), float64(0), fixedTime).
			Return(errs.ErrStoreUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, userID, "credit", 100)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Empty user id is rejected before any storage call", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, "", "credit", 100)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Negative amount is rejected before any storage call", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		updater := NewUpdater(mockRepo, mockTime, mockLogger)

		err := updater.ApplyTransaction(ctx, userID, "credit", -1)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

// Sequential application of a mixed transaction stream must leave the
// totals equal to the per-category sums.
func TestApplyTransactionSequentialSums(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := "a@x.com"

	type tx struct {
		category string
		amount   float64
	}
	stream := []tx{
		{"credit", 100},
		{"debit", 30},
		{"credit", 12.5},
		{"rent", 40},
		{"credit", 0},
	}

	// Track a local copy of the stored totals, advanced the way the
	// repository would advance them.
	var totalCredit, totalDebit float64

	mockRepo := persistencemocks.NewMockSummaryRepository(t)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	mockTime.On("Now").Return(fixedTime)
	mockLogger.On("Info", mock.Anything, mock.Anything)
	mockRepo.On("GetByUserID", mock.Anything, userID).Return(func(context.Context, string) *entity.Summary {
		return &entity.Summary{UserID: userID, TotalCredit: totalCredit, TotalDebit: totalDebit}
	}, nil)
	mockRepo.On("AddTotals", mock.Anything, userID, mock.Anything, mock.Anything, fixedTime).
		Run(func(args mock.Arguments) {
			totalCredit += args.Get(2).(float64)
			totalDebit += args.Get(3).(float64)
		}).
		Return(nil)

	updater := NewUpdater(mockRepo, mockTime, mockLogger)

	for _, item := range stream {
		require.NoError(t, updater.ApplyTransaction(ctx, userID, item.category, item.amount))
	}

	assert.Equal(t, 112.5, totalCredit)
	assert.Equal(t, float64(70), totalDebit)
}
