package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/invoicehub/backend/internal/domain/identity"
	"github.com/invoicehub/backend/internal/domain/shared"
)

type MockCredentialVerifier struct {
	mock.Mock
}

func (m *MockCredentialVerifier) Verify(ctx context.Context, email, password string) (*identity.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func TestAuthenticate_Success(t *testing.T) {
	verifier := new(MockCredentialVerifier)
	service := NewAuthService(verifier, zap.NewNop())

	user, err := identity.NewUser("User", "user@nextmail.com", "123456")
	require.NoError(t, err)
	verifier.On("Verify", mock.Anything, "user@nextmail.com", "123456").Return(user, nil)

	msg, err := service.Authenticate(context.Background(), "user@nextmail.com", "123456")

	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	verifier := new(MockCredentialVerifier)
	service := NewAuthService(verifier, zap.NewNop())

	verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, shared.ErrInvalidCredentials)

	msg, err := service.Authenticate(context.Background(), "user@nextmail.com", "wrong")

	require.NoError(t, err)
	assert.Equal(t, "Invalid email or password.", msg)
}

func TestAuthenticate_OtherRecognizedFailure(t *testing.T) {
	verifier := new(MockCredentialVerifier)
	service := NewAuthService(verifier, zap.NewNop())

	verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, ErrAccountDeactivated)

	msg, err := service.Authenticate(context.Background(), "user@nextmail.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "Failed to sign in.", msg)
}

func TestAuthenticate_UnrecognizedFailurePropagates(t *testing.T) {
	verifier := new(MockCredentialVerifier)
	service := NewAuthService(verifier, zap.NewNop())

	boom := errors.New("identity provider unreachable")
	verifier.On("Verify", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

	msg, err := service.Authenticate(context.Background(), "user@nextmail.com", "123456")

	assert.Empty(t, msg)
	assert.ErrorIs(t, err, boom)
}

func TestLocalVerifier_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	verifier := NewLocalCredentialVerifier(users)

	user, err := identity.NewUser("User", "user@nextmail.com", "123456")
	require.NoError(t, err)
	users.On("FindByEmail", mock.Anything, "user@nextmail.com").Return(user, nil)

	_, err = verifier.Verify(context.Background(), "user@nextmail.com", "wrong")

	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLocalVerifier_UnknownEmailLooksLikeBadCredentials(t *testing.T) {
	users := new(MockUserRepository)
	verifier := NewLocalCredentialVerifier(users)

	users.On("FindByEmail", mock.Anything, "nobody@nextmail.com").Return(nil, shared.ErrNotFound)

	_, err := verifier.Verify(context.Background(), "nobody@nextmail.com", "123456")

	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestLocalVerifier_DeactivatedAccount(t *testing.T) {
	users := new(MockUserRepository)
	verifier := NewLocalCredentialVerifier(users)

	user, err := identity.NewUser("User", "user@nextmail.com", "123456")
	require.NoError(t, err)
	user.Status = identity.UserStatusDeactivated
	users.On("FindByEmail", mock.Anything, "user@nextmail.com").Return(user, nil)

	_, err = verifier.Verify(context.Background(), "user@nextmail.com", "123456")

	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestLocalVerifier_RepositoryFaultPassesThrough(t *testing.T) {
	users := new(MockUserRepository)
	verifier := NewLocalCredentialVerifier(users)

	boom := errors.New("connection reset")
	users.On("FindByEmail", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := verifier.Verify(context.Background(), "user@nextmail.com", "123456")

	assert.ErrorIs(t, err, boom)
}
