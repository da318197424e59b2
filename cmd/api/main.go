package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"foodtruck/config"
	"foodtruck/internal/delivery"
	"foodtruck/internal/delivery/api"
	"foodtruck/internal/delivery/api/middleware"
	"foodtruck/internal/delivery/api/router/handler"
	"foodtruck/internal/domain/clock"
	"foodtruck/internal/domain/service"
	"foodtruck/internal/infra/auth"
	logs "foodtruck/internal/infra/log"
	"foodtruck/internal/infra/persistence/postgres"
	"foodtruck/internal/infra/pubsub"
	"foodtruck/internal/infra/qrcode"
	"foodtruck/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			clock.NewReal,
			fx.Annotate(
				postgres.NewReadiness,
				fx.As(new(handler.ReadinessChecker)),
				fx.ResultTags(`group:"readiness"`),
			),
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTenantRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
			impl.NewScheduleEngine,
		),
	)
}

// newQRCodeService creates a QR code service from the storefront section
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Storefront.QRSize, cfg.Storefront.QRErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewScheduleService,
			impl.NewSweepService,
			impl.NewStorefrontService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewStorefrontHandler,
			handler.NewMerchantScheduleHandler,
			handler.NewAdminHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
