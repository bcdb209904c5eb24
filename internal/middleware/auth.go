package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/internal/auth"
	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/metrics"
)

const (
	// UserIDKey is the context key for the authenticated user's id
	UserIDKey = "user_id"
	// UsernameKey is the context key for the authenticated user's name
	UsernameKey = "username"

	bearerPrefix = "bearer "
)

var errMissingToken = errors.New("missing bearer token")

// TokenVerifier validates a bearer token. *auth.TokenService satisfies it.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Auth rejects requests without a valid bearer token with 401 and exposes
// the caller's identity to later handlers.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			metrics.ObserveAuth("token", domain.ErrUnauthorized)
			abortUnauthorized(c, "Access denied. No token provided.", err)
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			metrics.ObserveAuth("token", err)
			logger.FromContext(c.Request.Context()).Debug("Token rejected", slog.String("error", err.Error()))
			abortUnauthorized(c, "Invalid or expired token.", err)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}

func bearerToken(header string) (string, error) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", errMissingToken
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, message string, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

// GetUserID returns the authenticated user's id, or "" on public routes.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// StoreState reports whether the store can take requests.
type StoreState interface {
	Connected() bool
}

// RequireStore answers 500 while the store connection is down instead of
// letting requests pile up on a dead pool.
func RequireStore(state StoreState) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !state.Connected() {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Database unavailable, retrying connection.",
				"error":   domain.ErrStoreUnavailable.Error(),
			})
			return
		}
		c.Next()
	}
}
