package firestore

import (
	"context"
	"time"

	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type likeRepository struct {
	client *firestore.Client
	scope  *txScope
}

// NewLikeRepository returns a LikeRepository over the shopLikes collection.
func NewLikeRepository(client *firestore.Client) repository.LikeRepository {
	return &likeRepository{client: client}
}

func (repo *likeRepository) Add(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error) {
	ref := repo.client.Collection(collectionLikes).Doc(likeDocID(shopID, deviceID))
	doc := &likeDoc{
		ShopID:    shopID.String(),
		DeviceID:  deviceID,
		CreatedAt: time.Now(),
	}

	if repo.scope != nil {
		exists, err := repo.existsInTx(ref)
		if err != nil || exists {
			return false, err
		}
		repo.scope.stage(func() error { return repo.scope.tx.Create(ref, doc) })

		return true, nil
	}

	_, err := ref.Create(ctx, doc)
	if err != nil {
		if isAlreadyExists(err) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to add like")
	}

	return true, nil
}

func (repo *likeRepository) Remove(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error) {
	ref := repo.client.Collection(collectionLikes).Doc(likeDocID(shopID, deviceID))

	if repo.scope != nil {
		exists, err := repo.existsInTx(ref)
		if err != nil || !exists {
			return false, err
		}
		repo.scope.stage(func() error { return repo.scope.tx.Delete(ref) })

		return true, nil
	}

	_, err := ref.Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to remove like")
	}

	return true, nil
}

func (repo *likeRepository) existsInTx(ref *firestore.DocumentRef) (bool, error) {
	_, err := repo.scope.tx.Get(ref)
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to read like")
	}
}

func (repo *likeRepository) ListShopIDs(ctx context.Context, deviceID string) ([]uuid.UUID, error) {
	snaps, err := repo.client.Collection(collectionLikes).
		Where("deviceId", "==", deviceID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list liked shops")
	}

	ids := make([]uuid.UUID, 0, len(snaps))
	for _, snap := range snaps {
		var doc likeDoc
		if err := snap.DataTo(&doc); err != nil {
			continue
		}
		if id, err := uuid.Parse(doc.ShopID); err == nil {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
