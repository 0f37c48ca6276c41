package account

import (
	"context"

	errs "github.com/adelahmadi/fintrack/internal/domain/error"
)

// Login authenticates a user and returns the session token.
//
// Every failure cause collapses into ErrUnauthorized so callers cannot
// distinguish a wrong password from an unknown user or a directory
// outage. The real cause is logged for operators before it is
// discarded.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.directory.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login rejected", map[string]any{
			"email": email,
			"cause": err.Error(),
		})
		return "", errs.ErrUnauthorized
	}
	if token == "" {
		s.logger.Warn("Login rejected", map[string]any{
			"email": email,
			"cause": "directory returned no token",
		})
		return "", errs.ErrUnauthorized
	}

	s.logger.Info("User logged in", map[string]any{
		"email": email,
	})
	return token, nil
}
