package main

import (
	"context"
	"log/slog"
	"os"

	"shopseva/config"
	"shopseva/internal/delivery"
	"shopseva/internal/delivery/http/middleware"
	"shopseva/internal/delivery/worker"
	"shopseva/internal/delivery/worker/handler"
	"shopseva/internal/infra/cache"
	"shopseva/internal/infra/firebase"
	logs "shopseva/internal/infra/log"
	"shopseva/internal/infra/metrics"
	"shopseva/internal/infra/persistence"
	"shopseva/internal/usecase/impl"

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
		persistence.Module,
		injectService(),
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
		metrics.NewRegistry,
		firebase.NewApp,
		cache.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			cache.NewListingMirror,
			metrics.NewRecorder,
			impl.NewProjectionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
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
