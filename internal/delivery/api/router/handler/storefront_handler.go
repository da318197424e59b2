package handler

import (
	"net/http"
	"strings"

	"foodtruck/internal/delivery/api/response"
	"foodtruck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const qrCacheControl = "public, max-age=86400"

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	ScheduleUC   usecase.ScheduleUsecase
	StorefrontUC usecase.StorefrontUsecase
}

// StorefrontHandler serves the public, per-subdomain endpoints customers hit.
type StorefrontHandler struct {
	scheduleUC   usecase.ScheduleUsecase
	storefrontUC usecase.StorefrontUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		scheduleUC:   params.ScheduleUC,
		storefrontUC: params.StorefrontUC,
	}
}

// StorefrontLinkResponse is the body of the storefront link endpoint.
type StorefrontLinkResponse struct {
	URL string `json:"url"`
}

// GetStatus returns whether the truck is open right now.
func (h *StorefrontHandler) GetStatus(c echo.Context) error {
	status, err := h.scheduleUC.GetStatus(c.Request().Context(), subdomainParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// GetPickupOptions lists today's remaining pickup slots.
func (h *StorefrontHandler) GetPickupOptions(c echo.Context) error {
	options, err := h.scheduleUC.GetPickupOptions(c.Request().Context(), subdomainParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, options)
}

// ValidatePickup checks a customer's pickup choice before an order is placed.
func (h *StorefrontHandler) ValidatePickup(c echo.Context) error {
	var req usecase.PickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid pickup request")
	}

	decision, err := h.scheduleUC.ValidatePickup(c.Request().Context(), subdomainParam(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, decision)
}

// GetStorefrontLink returns the public storefront URL.
func (h *StorefrontHandler) GetStorefrontLink(c echo.Context) error {
	link, err := h.storefrontUC.StorefrontURL(c.Request().Context(), subdomainParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, StorefrontLinkResponse{URL: link})
}

// GetQRCode returns a PNG QR code pointing at the storefront.
func (h *StorefrontHandler) GetQRCode(c echo.Context) error {
	png, err := h.storefrontUC.GenerateQRCode(c.Request().Context(), subdomainParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png, qrCacheControl)
}

func subdomainParam(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Param("subdomain")))
}
