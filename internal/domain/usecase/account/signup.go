package account

import (
	"context"

	"github.com/adelahmadi/fintrack/internal/domain/entity"
	errs "github.com/adelahmadi/fintrack/internal/domain/error"
)

// Signup registers a new user and seeds their zeroed summary.
//
// Order matters: the password is only set after the directory has
// reported the created user, and the summary is created last. A
// failure at any step propagates; there is no rollback of earlier
// steps in this path.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	if email == "" {
		return errs.ErrInvalidUserID
	}

	if err := s.directory.CreateUser(ctx, email); err != nil {
		s.logger.Error("Failed to create directory user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return err
	}

	if err := s.directory.SetPermanentPassword(ctx, email, password); err != nil {
		s.logger.Error("Failed to set permanent password", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return err
	}

	summary, err := entity.NewSummary(email, s.timeProvider)
	if err != nil {
		return err
	}

	if err := s.summaryRepo.Create(ctx, summary); err != nil {
		s.logger.Error("Failed to create summary", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return err
	}

	s.logger.Info("User registered", map[string]any{
		"email": email,
	})
	return nil
}
