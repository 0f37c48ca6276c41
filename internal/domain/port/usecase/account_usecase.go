package usecase

import "context"

// AccountUseCase covers signup and login against the user directory.
type AccountUseCase interface {
	// Signup registers the user in the directory (email pre-verified,
	// welcome message suppressed), sets the permanent password once the
	// directory has reported the created user, then creates the zeroed
	// summary.
	Signup(ctx context.Context, email, password string) error

	// Login performs a single authentication round trip. Every failure
	// cause collapses into ErrUnauthorized; the session token is
	// returned on success.
	Login(ctx context.Context, email, password string) (string, error)
}
