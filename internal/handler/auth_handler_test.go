package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-api/internal/domain"
	"blog-api/internal/mocks"
	"blog-api/internal/service"
)

func newAuthTestRouter(svc service.AuthServiceInterface) *gin.Engine {
	h := NewAuthHandler(svc)
	router := gin.New()
	router.POST("/auth/signup", h.Signup)
	router.POST("/auth/login", h.Login)
	router.POST("/auth/logout", h.Logout)
	return router
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("registers a user", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Register(mock.Anything, "alice", "alice@example.com", "s3cret").
			Return(&domain.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}, nil)

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/signup", SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[SignupResponse](t, w)
		assert.Equal(t, "u-1", resp.UserID)
		assert.Equal(t, msgSignedUp, resp.Message)
		assert.NotContains(t, w.Body.String(), "s3cret")
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Register(mock.Anything, "alice", "alice@example.com", "x").
			Return(nil, fmt.Errorf("create user: %w", domain.ErrDuplicateEmail))

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/signup", SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "x",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgDuplicateEmail, decode[ErrorResponse](t, w).Message)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Register(mock.Anything, "", "", "").
			Return(nil, fmt.Errorf("%w: username is required", domain.ErrValidation))

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/signup", map[string]string{})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, msgInvalidRequest, resp.Message)
		assert.Contains(t, resp.Error, "username")
	})

	t.Run("rejects malformed JSON without calling the service", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/signup", "{not json")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, msgInvalidBody, decode[ErrorResponse](t, w).Message)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token and identity", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Login(mock.Anything, "alice@example.com", "s3cret").
			Return(&service.LoginResult{
				Token: "tok",
				User:  &domain.User{ID: "u-1", Username: "alice", Email: "alice@example.com"},
			}, nil)

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[LoginResponse](t, w)
		assert.Equal(t, LoginResponse{Token: "tok", UserID: "u-1", Username: "alice", Email: "alice@example.com"}, resp)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Login(mock.Anything, "nobody@example.com", "x").
			Return(nil, fmt.Errorf("login: no such user: %w", domain.ErrInvalidCredentials))
		svc.EXPECT().
			Login(mock.Anything, "alice@example.com", "wrong").
			Return(nil, fmt.Errorf("login: password mismatch: %w", domain.ErrInvalidCredentials))

		router := newAuthTestRouter(svc)
		unknown := doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{Email: "nobody@example.com", Password: "x"})
		wrong := doJSON(t, router, http.MethodPost, "/auth/login", LoginRequest{Email: "alice@example.com", Password: "wrong"})

		require.Equal(t, http.StatusBadRequest, unknown.Code)
		require.Equal(t, http.StatusBadRequest, wrong.Code)
		assert.Equal(t, unknown.Body.String(), wrong.Body.String())
		assert.Equal(t, msgInvalidCredentials, decode[ErrorResponse](t, unknown).Message)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		svc := mocks.NewMockAuthServiceInterface(t)
		svc.EXPECT().
			Login(mock.Anything, "alice@example.com", "s3cret").
			Return(nil, fmt.Errorf("get user: %w: %w", domain.ErrStoreUnavailable, errors.New("conn reset")))

		w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/login", LoginRequest{
			Email:    "alice@example.com",
			Password: "s3cret",
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, msgStoreUnavailable, decode[ErrorResponse](t, w).Message)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := mocks.NewMockAuthServiceInterface(t)

	w := doJSON(t, newAuthTestRouter(svc), http.MethodPost, "/auth/logout", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, msgLoggedOut, decode[MessageResponse](t, w).Message)
}
