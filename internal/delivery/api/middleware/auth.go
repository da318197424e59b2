package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "foodtruck/internal/delivery/context"
	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyTenantID = "tenantID"
	keyRoles    = "roles"

	bearerPrefix = "Bearer "
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the tenant and
// roles it carries on the echo context and the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrTokenInvalid
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.String("error", err.Error()))

			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		c.Set(keyTenantID, claims.TenantID)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))

		ctx := deliverycontext.WithTenantID(c.Request().Context(), claims.TenantID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the caller holds role.
// It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}

			if !roles.Contains(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetTenantID returns the authenticated tenant.
func GetTenantID(c echo.Context) (uuid.UUID, bool) {
	tenantID, ok := c.Get(keyTenantID).(uuid.UUID)

	return tenantID, ok
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(keyRoles).(entity.Roles)

	return roles, ok
}
