package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/mocks"
	"blog-api/internal/service"
	"blog-api/internal/validator"
)

func newAuthService(t *testing.T, users *mocks.MockUserRepository, reporter service.FailureReporter) (*service.AuthService, *auth.PasswordHasher, *auth.TokenService) {
	t.Helper()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)
	return service.NewAuthService(users, hasher, tokens, validator.NewValidator(), reporter), hasher, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and stores the user", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		svc, hasher, _ := newAuthService(t, users, nil)

		var stored *domain.User
		users.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(_ context.Context, u *domain.User) { stored = u }).
			Return(nil)

		user, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.NotEqual(t, "s3cret", stored.PasswordHash)
		ok, err := hasher.Compare(stored.PasswordHash, "s3cret")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("duplicate email passes through", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		reporter := mocks.NewMockFailureReporter(t)
		svc, _, _ := newAuthService(t, users, reporter)

		users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

		_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})

	t.Run("invalid payload never reaches the store", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		svc, _, _ := newAuthService(t, users, nil)

		_, err := svc.Register(ctx, "alice", "not-an-email", "s3cret")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Register(ctx, "", "alice@example.com", "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("store failure is reported and wrapped", func(t *testing.T) {
		users := mocks.NewMockUserRepository(t)
		reporter := mocks.NewMockFailureReporter(t)
		svc, _, _ := newAuthService(t, users, reporter)

		dbErr := errors.New("connection reset")
		users.EXPECT().Create(mock.Anything, mock.Anything).Return(dbErr)
		reporter.EXPECT().ReportFailure(dbErr).Return()

		_, err := svc.Register(ctx, "alice", "alice@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*service.AuthService, *mocks.MockUserRepository, *auth.TokenService, *domain.User) {
		users := mocks.NewMockUserRepository(t)
		svc, hasher, tokens := newAuthService(t, users, nil)
		hash, err := hasher.Hash("s3cret")
		require.NoError(t, err)
		alice := &domain.User{
			ID:           "11111111-1111-1111-1111-111111111111",
			Email:        "alice@example.com",
			Username:     "alice",
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		return svc, users, tokens, alice
	}

	t.Run("issues a token bound to the user", func(t *testing.T) {
		svc, users, tokens, alice := setup(t)
		users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(alice, nil)

		result, err := svc.Login(ctx, "alice@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, alice, result.User)

		claims, err := tokens.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc, users, _, alice := setup(t)
		users.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(alice, nil)
		users.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, nil)

		_, wrongPassword := svc.Login(ctx, "alice@example.com", "nope")
		_, unknownEmail := svc.Login(ctx, "ghost@example.com", "s3cret")

		assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("email match is exact", func(t *testing.T) {
		svc, users, _, _ := setup(t)
		users.EXPECT().GetByEmail(mock.Anything, "Alice@example.com").Return(nil, nil)

		_, err := svc.Login(ctx, "Alice@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("missing fields are invalid credentials", func(t *testing.T) {
		svc, _, _, _ := setup(t)

		_, err := svc.Login(ctx, "", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		_, err = svc.Login(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("store failure is not disguised as bad credentials", func(t *testing.T) {
		svc, users, _, _ := setup(t)
		users.EXPECT().GetByEmail(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := svc.Login(ctx, "alice@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
