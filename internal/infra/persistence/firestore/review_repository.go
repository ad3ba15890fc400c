package firestore

import (
	"context"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type reviewRepository struct {
	client *firestore.Client
	scope  *txScope
}

// NewReviewRepository returns a ReviewRepository over the reviews collection.
func NewReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &reviewRepository{client: client}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	ref := repo.client.Collection(collectionReviews).Doc(review.ID.String())
	doc := &reviewDoc{
		ShopID:    review.ShopID.String(),
		UserID:    review.UserID.String(),
		UserName:  review.UserName,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}

	if repo.scope != nil {
		repo.scope.stage(func() error { return repo.scope.tx.Create(ref, doc) })

		return nil
	}

	if _, err := ref.Create(ctx, doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	return nil
}

func (repo *reviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	snaps, err := repo.client.Collection(collectionReviews).
		Where("shopId", "==", shopID.String()).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(snaps))
	for _, snap := range snaps {
		var doc reviewDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode review "+snap.Ref.ID)
		}
		id, _ := uuid.Parse(snap.Ref.ID)
		userID, _ := uuid.Parse(doc.UserID)

		reviews = append(reviews, &entity.Review{
			ID:        id,
			ShopID:    shopID,
			UserID:    userID,
			UserName:  doc.UserName,
			Rating:    doc.Rating,
			Text:      doc.Text,
			CreatedAt: doc.CreatedAt,
		})
	}

	return reviews, nil
}
