package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"adhan/config"
	"adhan/internal/delivery"
	"adhan/internal/delivery/worker"
	"adhan/internal/delivery/worker/handler"
	"adhan/internal/infra/cache"
	logs "adhan/internal/infra/log"
	"adhan/internal/infra/metrics"
	"adhan/internal/infra/notification"
	"adhan/internal/infra/persistence/redis"
	"adhan/internal/infra/timing"
	"adhan/internal/infra/timing/generic"
	"adhan/internal/infra/timing/regional"
	"adhan/internal/usecase/impl"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			redis.New,
		),
		metrics.Module,
		cache.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			redis.NewSubscriptionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			timing.NewGeofence,
			notification.NewPushService,
		),
		generic.Module,
		regional.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTimingService,
			impl.NewDispatchService,
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
