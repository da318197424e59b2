// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodtruck/config"
	"foodtruck/internal/delivery/api/middleware"
	"foodtruck/internal/delivery/api/router/handler"
	"foodtruck/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler           *handler.HealthHandler
	StorefrontHandler       *handler.StorefrontHandler
	MerchantScheduleHandler *handler.MerchantScheduleHandler
	AdminHandler            *handler.AdminHandler
	TestHandler             *handler.TestHandler
	AuthMiddleware          *middleware.AuthMiddleware
	Config                  *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler           *handler.HealthHandler
	storefrontHandler       *handler.StorefrontHandler
	merchantScheduleHandler *handler.MerchantScheduleHandler
	adminHandler            *handler.AdminHandler
	testHandler             *handler.TestHandler
	authMiddleware          *middleware.AuthMiddleware
	config                  *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:           params.HealthHandler,
		storefrontHandler:       params.StorefrontHandler,
		merchantScheduleHandler: params.MerchantScheduleHandler,
		adminHandler:            params.AdminHandler,
		testHandler:             params.TestHandler,
		authMiddleware:          params.AuthMiddleware,
		config:                  params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public storefront routes, addressed by subdomain
	tenantGroup := apiV1.Group("/tenants/:subdomain")
	{
		tenantGroup.GET("/status", r.storefrontHandler.GetStatus)
		tenantGroup.GET("/pickup-options", r.storefrontHandler.GetPickupOptions)
		tenantGroup.POST("/orders/validate", r.storefrontHandler.ValidatePickup)
		tenantGroup.GET("/link", r.storefrontHandler.GetStorefrontLink)
		tenantGroup.GET("/qr", r.storefrontHandler.GetQRCode)
	}

	// Merchant routes act on the tenant named by the access token
	merchantGroup := apiV1.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		merchantGroup.GET("/schedule", r.merchantScheduleHandler.GetSchedule)
		merchantGroup.PUT("/schedule", r.merchantScheduleHandler.UpdateSchedule)
		merchantGroup.POST("/schedule/closure", r.merchantScheduleHandler.SetTodayClosed)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/closures/sweep", r.adminHandler.SweepClosures)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
