// Command identityworker retries identity provider account deletions
// delivered by Pub/Sub push.
package main

import (
	"context"
	"log/slog"
	"os"

	"coffeeshop/config"
	"coffeeshop/internal/delivery"
	"coffeeshop/internal/delivery/worker"
	"coffeeshop/internal/delivery/worker/handler"
	"coffeeshop/internal/domain/service"
	"coffeeshop/internal/infra/identity/firebase"
	logs "coffeeshop/internal/infra/log"
	"coffeeshop/internal/infra/metrics"
	"coffeeshop/internal/infra/persistence/mongodb"
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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewIdentityDeletionRepository,
			mongodb.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewAuthClient,
			firebase.NewIdentityProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityDeletionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
