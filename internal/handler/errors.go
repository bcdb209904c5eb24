package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/logger"
	"blog-api/internal/middleware"
	"blog-api/internal/validator"
)

// respondError maps a service error onto a status code and error body.
// resource names the entity in 404 messages, e.g. "Article".
func respondError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		detail := err.Error()
		if fields := validator.Fields(err); len(fields) > 0 {
			detail = strings.Join(fields, "; ")
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidRequest, Error: detail})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgDuplicateEmail, Error: domain.ErrDuplicateEmail.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		// fixed body: unknown email and wrong password must be indistinguishable
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidCredentials, Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: msgUnauthorized, Error: domain.ErrUnauthorized.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Message: msgForbidden, Error: domain.ErrForbidden.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: resource + " not found.", Error: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgStoreUnavailable, Error: domain.ErrStoreUnavailable.Error()})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Unhandled error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msgInternal})
	}
}

func respondBadBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msgInvalidBody, Error: err.Error()})
}
