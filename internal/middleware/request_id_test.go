package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/logger"
	"blog-api/internal/middleware"
)

func newRequestIDRouter(capture func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/articles", func(c *gin.Context) {
		capture(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	var fromGin, fromCtx string
	router := newRequestIDRouter(func(c *gin.Context) {
		fromGin = middleware.GetRequestID(c)
		fromCtx = logger.RequestIDFromContext(c.Request.Context())
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles", nil))

	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, fromGin)
	assert.Equal(t, requestID, fromCtx)
}

func TestRequestID_UsesClientProvidedID(t *testing.T) {
	var fromCtx string
	router := newRequestIDRouter(func(c *gin.Context) {
		fromCtx = logger.RequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-id-12345")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "client-id-12345", w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "client-id-12345", fromCtx)
}

func TestRequestID_MultipleRequests_DifferentIDs(t *testing.T) {
	var ids []string
	router := newRequestIDRouter(func(c *gin.Context) {
		ids = append(ids, middleware.GetRequestID(c))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/articles", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
	assert.NotEqual(t, ids[0], ids[2])
}

func TestRequestID_ReplacesUnusableClientID(t *testing.T) {
	var fromCtx string
	router := newRequestIDRouter(func(c *gin.Context) {
		fromCtx = middleware.GetRequestID(c)
	})

	for _, bad := range []string{"has space", "line\nbreak", strings.Repeat("a", 129)} {
		req := httptest.NewRequest(http.MethodGet, "/articles", nil)
		req.Header.Set(middleware.RequestIDHeader, bad)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		got := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, bad, got)
		assert.Len(t, got, 36)
		assert.Equal(t, got, fromCtx)
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/articles", nil)
	assert.Empty(t, middleware.GetRequestID(c))

	c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), "test-request-id"))
	assert.Equal(t, "test-request-id", middleware.GetRequestID(c))
}
