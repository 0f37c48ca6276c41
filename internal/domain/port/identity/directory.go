package identity

import "context"

// UserDirectory is the external identity store. It owns credential
// handling end to end; callers only see opaque session tokens.
type UserDirectory interface {
	// CreateUser registers a new user keyed by email, with the email
	// attribute marked pre-verified and the welcome message suppressed.
	// The call must not be considered successful unless the directory
	// reports the created user back.
	//
	// Possible errors:
	// - ErrDirectoryUnavailable: if the directory call fails or the
	//   created user is not reported
	CreateUser(ctx context.Context, email string) error

	// SetPermanentPassword assigns a permanent password to an existing
	// user. Must only be called after CreateUser reported success.
	SetPermanentPassword(ctx context.Context, email, password string) error

	// Authenticate performs a single credential check round trip and
	// returns an opaque session token on success.
	//
	// Possible errors:
	// - ErrUnauthorized: wrong credentials, unknown user, or a missing
	//   token in the directory response
	Authenticate(ctx context.Context, email, password string) (string, error)
}
