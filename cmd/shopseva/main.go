package main

import (
	"context"
	"log/slog"
	"os"

	"shopseva/config"
	"shopseva/internal/delivery"
	"shopseva/internal/delivery/http"
	"shopseva/internal/delivery/http/middleware"
	"shopseva/internal/delivery/http/response"
	"shopseva/internal/delivery/http/router/handler"
	"shopseva/internal/infra/auth"
	firebaseauth "shopseva/internal/infra/auth/firebase"
	"shopseva/internal/infra/cache"
	"shopseva/internal/infra/firebase"
	"shopseva/internal/infra/i18n"
	logs "shopseva/internal/infra/log"
	"shopseva/internal/infra/metrics"
	"shopseva/internal/infra/persistence"
	"shopseva/internal/infra/pubsub"
	"shopseva/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			metrics.NewRegistry,
			firebase.NewApp,
			firebase.NewAuthClient,
			cache.NewClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			firebaseauth.NewIdentityVerifier,
			cache.NewListingMirror,
			metrics.NewRecorder,
			i18n.NewTranslator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewDirectoryService,
			impl.NewEngagementService,
			impl.NewContactService,
			impl.NewAuthService,
			impl.NewStatsService,
			impl.NewReferenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			response.NewLocalizer,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLanguageMiddleware,
			middleware.NewDeviceMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDirectoryHandler,
			handler.NewEngagementHandler,
			handler.NewOwnerHandler,
			handler.NewAdminHandler,
			handler.NewContactHandler,
			handler.NewReferenceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
