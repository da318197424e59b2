package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "foodtruck/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 3 * time.Second

// ReadinessChecker is a backing service the API cannot serve without.
type ReadinessChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Checkers []ReadinessChecker `group:"readiness"`
	Logger   *slog.Logger
}

// HealthHandler reports liveness plus the state of every readiness checker.
type HealthHandler struct {
	checkers []ReadinessChecker
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		checkers: params.Checkers,
		logger:   params.Logger,
	}
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheck answers 200 when every checker responds, 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok"}
	if len(h.checkers) > 0 {
		resp.Checks = make(map[string]string, len(h.checkers))
	}

	for _, checker := range h.checkers {
		if err := checker.Ping(ctx); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Readiness check failed",
				slog.String("checker", checker.Name()),
				slog.Any("error", err),
			)
			resp.Checks[checker.Name()] = "unavailable"
			resp.Status = "degraded"

			continue
		}
		resp.Checks[checker.Name()] = "ok"
	}

	if resp.Status != "ok" {
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}
