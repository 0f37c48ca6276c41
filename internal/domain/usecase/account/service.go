package account

import (
	coreport "github.com/adelahmadi/fintrack/internal/domain/port/core"
	"github.com/adelahmadi/fintrack/internal/domain/port/identity"
	"github.com/adelahmadi/fintrack/internal/domain/port/persistence"
	"github.com/adelahmadi/fintrack/internal/domain/port/usecase"
)

// Service implements signup and login against the user directory and
// the summary store.
type Service struct {
	directory    identity.UserDirectory
	summaryRepo  persistence.SummaryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new account service instance
func NewService(
	directory identity.UserDirectory,
	summaryRepo persistence.SummaryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.AccountUseCase {
	return &Service{
		directory:    directory,
		summaryRepo:  summaryRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
