// Package persistence selects the configured store and exposes its repositories to fx.
package persistence

import (
	"context"
	"log/slog"

	"shopseva/config"
	"shopseva/internal/domain/repository"
	"shopseva/internal/errors"
	"shopseva/internal/infra/persistence/firestore"
	"shopseva/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// Repositories is every repository the usecases depend on, backed by one store.
type Repositories struct {
	fx.Out

	ShopRepo    repository.ShopRepository
	ReviewRepo  repository.ReviewRepository
	LikeRepo    repository.LikeRepository
	MessageRepo repository.ContactMessageRepository
	UserRepo    repository.UserRepository
	TxManager   repository.TransactionManager
}

// NewRepositories opens the store named by persistence.driver.
func NewRepositories(params Params) (Repositories, error) {
	driver := params.Config.Persistence.Driver
	params.Logger.Info("Opening persistence", slog.String("driver", driver))

	switch driver {
	case config.DriverFirestore:
		client, err := firestore.New(firestore.Params{
			Lifecycle: params.Lifecycle,
			Ctx:       params.Ctx,
			App:       params.App,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ShopRepo:    firestore.NewShopRepository(client),
			ReviewRepo:  firestore.NewReviewRepository(client),
			LikeRepo:    firestore.NewLikeRepository(client),
			MessageRepo: firestore.NewContactMessageRepository(client),
			UserRepo:    firestore.NewUserRepository(client),
			TxManager:   firestore.NewTransactionManager(client),
		}, nil

	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ShopRepo:    postgres.NewShopRepository(db),
			ReviewRepo:  postgres.NewReviewRepository(db),
			LikeRepo:    postgres.NewLikeRepository(db),
			MessageRepo: postgres.NewContactMessageRepository(db),
			UserRepo:    postgres.NewUserRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown persistence driver: %s", driver)
	}
}

// Module provides the repositories of the configured store.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
