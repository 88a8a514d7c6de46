package main

import (
	"context"
	"log/slog"
	"os"

	"coffeeshop/config"
	"coffeeshop/internal/delivery"
	"coffeeshop/internal/delivery/api"
	apimiddleware "coffeeshop/internal/delivery/api/middleware"
	"coffeeshop/internal/delivery/api/router/handler"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/infra/identity/firebase"
	logs "coffeeshop/internal/infra/log"
	"coffeeshop/internal/infra/metrics"
	"coffeeshop/internal/infra/persistence/mongodb"
	"coffeeshop/internal/infra/pubsub"
	"coffeeshop/internal/infra/qrcode"
	"coffeeshop/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
			mongodb.New,
			mongodb.NewDatabase,
			fx.Annotate(
				metrics.NewRegistry,
				fx.As(new(prometheus.Registerer)),
				fx.As(new(prometheus.Gatherer)),
			),
			fx.Annotate(
				metrics.NewCollector,
				fx.As(fx.Self()),
				fx.As(new(service.MetricsRecorder)),
			),
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewCoffeeRepository,
			mongodb.NewUserRepository,
			mongodb.NewIdentityDeletionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			// Firebase is optional; without it the provider and verifier are nil
			firebase.NewAuthClient,
			firebase.NewIdentityProvider,
			firebase.NewTokenVerifier,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCoffeeService,
			impl.NewUserService,
			impl.NewIdentityDeletionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCoffeeHandler,
			handler.NewUserHandler,
			handler.NewIdentityDeletionHandler,
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
