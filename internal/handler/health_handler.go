package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/infrastructure/database"
)

// Version is reported by /health.
const Version = "1.0.0"

// ConnectionState reports the store supervisor's state.
type ConnectionState interface {
	State() database.State
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	conn ConnectionState
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(conn ConnectionState) *HealthHandler {
	return &HealthHandler{conn: conn}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: msgRunning})
}

// Health handles GET /health - overall status plus the database connection state.
func (h *HealthHandler) Health(c *gin.Context) {
	state := h.conn.State()
	services := map[string]string{
		"database": state.String(),
	}

	if state != database.StateConnected {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Version:  Version,
			Services: services,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Version:  Version,
		Services: services,
	})
}

// Ready handles GET /ready for Kubernetes readiness checks.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.conn.State() != database.StateConnected {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live for Kubernetes liveness checks.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
