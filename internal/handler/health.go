package handler

import (
	"net/http"

	"github.com/deppfellow/go-posts/internal/middleware"
	"github.com/deppfellow/go-posts/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports dependency health for load balancers and uptime
// monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth answers 200 when every critical dependency is reachable and
// 503 otherwise. The body lists each check.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	report := h.server.Health.Check(c.Request().Context())

	if !report.Healthy() {
		logger.Warn().Str("status", report.Status).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, report)
	}

	logger.Debug().Str("status", report.Status).Msg("health check passed")

	return c.JSON(http.StatusOK, report)
}
