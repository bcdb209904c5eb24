package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
	"blog-api/internal/repository"
	"blog-api/internal/validator"
)

// LoginResult is what a successful login hands back.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users     repository.UserRepository
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	validator *validator.Validator
	guard     storeGuard
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	users repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
	v *validator.Validator,
	reporter FailureReporter,
) *AuthService {
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: v,
		guard:     newStoreGuard(reporter),
	}
}

// Register creates a user. The password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (user *domain.User, err error) {
	defer func() { metrics.ObserveAuth("signup", err) }()

	if err := s.validator.ValidateSignup(&validator.Signup{Username: username, Email: email, Password: password}); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user = &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, s.guard.check(ctx, "create user", err)
	}

	logger.WithUserID(ctx, user.ID).InfoContext(ctx, "User registered")
	return user, nil
}

// Login verifies the credentials and issues a token. An unknown email and a
// wrong password fail with the same error after the same amount of work.
func (s *AuthService) Login(ctx context.Context, email, password string) (result *LoginResult, err error) {
	defer func() { metrics.ObserveAuth("login", err) }()

	user, err := s.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		s.hasher.CompareDummy(password)
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, s.guard.check(ctx, "get user by email", err)
	}
	if user == nil {
		s.hasher.CompareDummy(password)
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Compare(user.PasswordHash, password)
	if err != nil {
		logger.WithUserID(ctx, user.ID).ErrorContext(ctx, "Stored password hash is unreadable",
			slog.String("error", err.Error()))
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
