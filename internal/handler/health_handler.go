package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies this server in health responses.
const ServiceName = "print4me-server"

// HealthHandler handles health check endpoints.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": ServiceName})
}

// Root handles GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Print4me server is running. Use GET /health or POST /api/print-request")
}
