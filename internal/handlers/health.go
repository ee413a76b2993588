package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jongan69/used-car-api/internal/config"
)

const (
	serviceName    = "Used Cars API"
	serviceVersion = "1.0.0"
)

// HealthHandler serves liveness and banner endpoints.
type HealthHandler struct {
	Cfg *config.Config
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{Cfg: cfg}
}

// Health handles GET /health. It never touches the marketplace, so a dead
// upstream does not read as a dead service.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// Root handles GET / with a small service banner.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": serviceName,
		"version": serviceVersion,
		"health":  h.Cfg.EnvVars.APIPrefix + "/health",
	})
}
