package handler

import (
	"net/http"

	"foodtruck/internal/delivery/api/response"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	SweepUC usecase.SweepUsecase
}

// AdminHandler exposes on-demand platform jobs.
type AdminHandler struct {
	sweepUC usecase.SweepUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{sweepUC: params.SweepUC}
}

// SweepResponse lists the tenants whose stale closures were cleared.
type SweepResponse struct {
	Count   int         `json:"count"`
	Tenants []uuid.UUID `json:"tenants"`
}

// SweepClosures runs the stale-closure sweep immediately.
func (h *AdminHandler) SweepClosures(c echo.Context) error {
	changed, err := h.sweepUC.SweepStaleClosures(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if changed == nil {
		changed = []uuid.UUID{}
	}

	return response.Success(c, http.StatusOK, SweepResponse{
		Count:   len(changed),
		Tenants: changed,
	})
}
