package handler

import (
	"net/http"

	"foodtruck/internal/delivery/api/middleware"
	"foodtruck/internal/delivery/api/response"
	domainerrors "foodtruck/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the identity the auth middleware resolved.
// Requires a valid merchant or admin access token.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WithDetails("tenant not found in context")
	}

	roles, ok := middleware.GetRoles(c)
	if !ok {
		return domainerrors.ErrUnauthorized.WithDetails("roles not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Authentication middleware test successful",
		"tenantID": tenantID,
		"roles":    roles,
		"status":   "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
