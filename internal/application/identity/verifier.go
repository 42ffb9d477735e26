package identity

import (
	"context"
	"errors"

	"github.com/invoicehub/backend/internal/domain/identity"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// ErrAccountDeactivated is returned when credentials check out but the
// account may no longer sign in.
var ErrAccountDeactivated = shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")

// LocalCredentialVerifier verifies credentials against the users table.
// A missing user and a wrong password are indistinguishable to the caller.
type LocalCredentialVerifier struct {
	users identity.UserRepository
}

// NewLocalCredentialVerifier creates a verifier backed by the user repository
func NewLocalCredentialVerifier(users identity.UserRepository) *LocalCredentialVerifier {
	return &LocalCredentialVerifier{users: users}
}

// Verify checks the email/password pair and returns the user on success
func (v *LocalCredentialVerifier) Verify(ctx context.Context, email, password string) (*identity.User, error) {
	user, err := v.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.VerifyPassword(password) {
		return nil, shared.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, ErrAccountDeactivated
	}

	return user, nil
}
