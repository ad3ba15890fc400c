package repository

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository stores immutable shop reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	// ListByShop returns a shop's reviews, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error)
}
