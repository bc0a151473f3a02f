package handlers

import (
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthChecker is implemented by storage backends that can be pinged
type HealthChecker interface {
	HealthCheck() error
}

// HealthCheckHandler handles the liveness and readiness endpoints
type HealthCheckHandler struct {
	store services.TransactionStoreInterface
	db    HealthChecker
}

// NewHealthCheckHandler creates a new health check handler; db may be nil for non-database backends
func NewHealthCheckHandler(store services.TransactionStoreInterface, db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{store: store, db: db}
}

// Liveness reports that the process is serving
// @Summary Liveness
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *HealthCheckHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readiness reports whether the store is loaded and its database reachable
// @Summary Readiness
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_004 - Store not loaded or SYSTEM_003 - Database unreachable"
// @Router /readyz [get]
func (h *HealthCheckHandler) Readiness(c echo.Context) error {
	checks := map[string]string{}

	if !h.store.IsLoaded() {
		return SendError(c, errors.SystemNotLoaded)
	}
	checks["store"] = "loaded"

	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		checks["database"] = "ok"
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{Status: "ready", Checks: checks})
}
