package account

import (
	"context"
	"testing"
	"time"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
	coremocks "github.com/adelahmadi/fintrack/mocks/port/core"
	identitymocks "github.com/adelahmadi/fintrack/mocks/port/identity"
	persistencemocks "github.com/adelahmadi/fintrack/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	email := "a@x.com"
	password := "s3cret!"

	t.Run("Directory user created, password set, summary seeded", func(t *testing.T) {
		mockDirectory := identitymocks.NewMockUserDirectory(t)
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		var order []string
		mockDirectory.On("CreateUser", mock.Anything, email).
			Run(func(mock.Arguments) { order = append(order, "create") }).
			Return(nil).Once()
		mockDirectory.On("SetPermanentPassword", mock.Anything, email, password).
			Run(func(mock.Arguments) { order = append(order, "password") }).
			Return(nil).Once()
		mockTime.On("Now").Return(fixedTime)
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Summary) bool {
			return s.UserID == email && s.TotalCredit == 0 && s.TotalDebit == 0
		})).
			Run(func(mock.Arguments) { order = append(order, "summary") }).
			Return(nil).Once()
		mockLogger.On("Info", mock.Anything, mock.Anything).Once()

		service := NewService(mockDirectory, mockRepo, mockTime, mockLogger)

		err := service.Signup(ctx, email, password)

		require.NoError(t, err)
		assert.Equal(t, []string{"create", "password", "summary"}, order)
	})

	t.Run("Empty email is rejected", func(t *testing.T) {
		mockDirectory := identitymocks.NewMockUserDirectory(t)
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		service := NewService(mockDirectory, mockRepo, mockTime, mockLogger)

		err := service.Signup(ctx, "", password)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Directory create failure stops the flow", func(t *testing.T) {
		mockDirectory := identitymocks.NewMockUserDirectory(t)
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockDirectory.On("CreateUser", mock.Anything, email).Return(errs.ErrDirectoryUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		service := NewService(mockDirectory, mockRepo, mockTime, mockLogger)

		err := service.Signup(ctx, email, password)

		assert.ErrorIs(t, err, errs.ErrDirectoryUnavailable)
		mockDirectory.AssertNotCalled(t, "SetPermanentPassword", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Password failure stops before the summary", func(t *testing.T) {
		mockDirectory := identitymocks.NewMockUserDirectory(t)
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockDirectory.On("CreateUser", mock.Anything, email).Return(nil).Once()
		mockDirectory.On("SetPermanentPassword", mock.Anything, email, password).
			Return(errs.ErrDirectoryUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		service := NewService(mockDirectory, mockRepo, mockTime, mockLogger)

		err := service.Signup(ctx, email, password)

		assert.ErrorIs(t, err, errs.ErrDirectoryUnavailable)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Summary seed failure propagates", func(t *testing.T) {
		mockDirectory := identitymocks.NewMockUserDirectory(t)
		mockRepo := persistencemocks.NewMockSummaryRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockDirectory.On("CreateUser", mock.Anything, email).Return(nil).Once()
		mockDirectory.On("SetPermanentPassword", mock.Anything, email, password).Return(nil).Once()
		mockTime.On("Now").Return(fixedTime)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrStoreUnavailable).Once()
		mockLogger.On("Error", mock.Anything, mock.Anything).Once()

		service := NewService(mockDirectory, mockRepo, mockTime, mockLogger)

		err := service.Signup(ctx, email, password)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}
