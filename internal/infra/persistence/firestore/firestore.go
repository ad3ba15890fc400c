// Package firestore implements the repositories on Cloud Firestore through the Firebase Admin SDK.
package firestore

import (
	"context"
	"log/slog"

	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// New opens the Firestore client of the Firebase app and closes it on shutdown.
func New(params Params) (*firestore.Client, error) {
	if params.App == nil {
		return nil, errors.New("firebase section is required for the firestore driver")
	}

	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}

// repositoryFactory hands out repositories. With a scope, the counter-bearing
// writes (likes, reviews, counters) join its transaction; other methods keep
// using the client directly.
type repositoryFactory struct {
	client *firestore.Client
	scope  *txScope
}

// NewRepositoryFactory returns a factory of Firestore repositories.
func NewRepositoryFactory(client *firestore.Client) repository.RepositoryFactory {
	return &repositoryFactory{client: client}
}

func (f *repositoryFactory) NewShopRepository() repository.ShopRepository {
	return &shopRepository{client: f.client, scope: f.scope}
}

func (f *repositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{client: f.client, scope: f.scope}
}

func (f *repositoryFactory) NewLikeRepository() repository.LikeRepository {
	return &likeRepository{client: f.client, scope: f.scope}
}

func (f *repositoryFactory) NewContactMessageRepository() repository.ContactMessageRepository {
	return NewContactMessageRepository(f.client)
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.client)
}

func isNotFound(err error) bool {
	return status.Code(errors.Cause(err)) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(errors.Cause(err)) == codes.AlreadyExists
}
