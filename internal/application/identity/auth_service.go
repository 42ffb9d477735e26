package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/domain/identity"
	"github.com/invoicehub/backend/internal/domain/shared"
)

// Sign-in messages surfaced to the login form. Anything beyond these two is
// an unexpected fault and propagates as an error instead.
const (
	msgInvalidCredentials = "Invalid email or password."
	msgSignInFailed       = "Failed to sign in."
)

// CredentialVerifier is the seam to the identity provider. It returns the
// verified user on success and a typed domain error for every recognized
// sign-in failure.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (*identity.User, error)
}

// AuthService is the authentication boundary for the dashboard
type AuthService struct {
	verifier CredentialVerifier
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(verifier CredentialVerifier, logger *zap.Logger) *AuthService {
	return &AuthService{verifier: verifier, logger: logger}
}

// Authenticate attempts a sign-in and translates recognized failures into
// form messages. The returned message is empty on success. An unrecognized
// failure is returned as the error, untranslated, for the outer layer to
// handle.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, err := s.verifier.Verify(ctx, email, password)
	if err == nil {
		return "", nil
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if domainErr.Code == shared.ErrInvalidCredentials.Code {
			return msgInvalidCredentials, nil
		}
		s.logger.Warn("sign-in rejected", zap.String("code", domainErr.Code), zap.String("email", email))
		return msgSignInFailed, nil
	}

	return "", err
}

// Login authenticates and returns the verified user for token issuance.
// Unlike Authenticate it surfaces the typed failure directly; API clients
// get structured errors, not form messages.
func (s *AuthService) Login(ctx context.Context, email, password string) (*identity.User, error) {
	return s.verifier.Verify(ctx, email, password)
}
