package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"predial-consulta/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker reports whether the store is reachable
type HealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db HealthChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck pings the store.
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		slog.Warn("health check failed", "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":     true,
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
