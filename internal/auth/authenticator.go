package auth

import (
	"context"

	"github.com/wensjes/registry/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods
// (password, passkeys, OAuth, ...) without changing the callers.
type Authenticator interface {
	// Register creates a new user account with the given username and
	// credential. Returns the created user or an error if registration
	// fails.
	Register(ctx context.Context, username, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user
	// if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements. Applied at registration only.
	ValidateCredential(credential string) error
}
