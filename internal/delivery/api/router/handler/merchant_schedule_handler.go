package handler

import (
	"net/http"

	"foodtruck/internal/delivery/api/middleware"
	"foodtruck/internal/delivery/api/response"
	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantScheduleHandlerParams holds dependencies for MerchantScheduleHandler, injected by Fx.
type MerchantScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
}

// MerchantScheduleHandler lets a truck owner manage their own schedule.
// The tenant always comes from the access token, never from the path.
type MerchantScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
}

// NewMerchantScheduleHandler is the constructor for MerchantScheduleHandler
func NewMerchantScheduleHandler(params MerchantScheduleHandlerParams) *MerchantScheduleHandler {
	return &MerchantScheduleHandler{
		scheduleUC: params.ScheduleUC,
	}
}

// SetClosureRequest represents the request body for the "closed today" toggle
type SetClosureRequest struct {
	IsClosed *bool `json:"is_closed" validate:"required"`
}

// GetSchedule returns the caller's weekly schedule.
func (h *MerchantScheduleHandler) GetSchedule(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	weekly, err := h.scheduleUC.GetSchedule(c.Request().Context(), tenantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, weekly)
}

// UpdateSchedule replaces the caller's weekly schedule.
func (h *MerchantScheduleHandler) UpdateSchedule(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var weekly entity.WeeklySchedule
	if err := c.Bind(&weekly); err != nil {
		return response.BindingError(c, "Invalid schedule input")
	}

	if err := c.Validate(&weekly); err != nil {
		return err
	}

	result, err := h.scheduleUC.UpdateSchedule(c.Request().Context(), tenantID, weekly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// SetTodayClosed sets or clears today's manual closure.
func (h *MerchantScheduleHandler) SetTodayClosed(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req SetClosureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid closure input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	weekly, err := h.scheduleUC.SetTodayClosed(c.Request().Context(), tenantID, *req.IsClosed)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, weekly)
}
