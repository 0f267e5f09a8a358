package handlers

import (
	"net/http"

	"finledger/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports service and store health
type HealthHandler struct {
	db *database.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns 200 when the service and its store are reachable
func (h *HealthHandler) Health(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"store":  "unreachable",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
