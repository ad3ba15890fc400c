package usecase

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput is a visitor's rating of a shop
type ReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required,max=2000"`
}

// LikeResult reports the like state of a device after a toggle
type LikeResult struct {
	ShopID uuid.UUID `json:"shopId"`
	Liked  bool      `json:"liked"`
	Likes  int       `json:"likes"`
}

// EngagementUsecase defines likes and reviews on public listings
type EngagementUsecase interface {
	// LikeShop adds the shop to the device's liked set. Repeated likes are no-ops
	LikeShop(ctx context.Context, shopID uuid.UUID, deviceID string) (*LikeResult, error)

	// UnlikeShop removes the shop from the device's liked set. Repeated unlikes are no-ops
	UnlikeShop(ctx context.Context, shopID uuid.UUID, deviceID string) (*LikeResult, error)

	// ListLikedShops returns the approved shops liked from a device
	ListLikedShops(ctx context.Context, deviceID string) ([]*entity.Shop, error)

	// SubmitReview stores a review and bumps the shop's review counter
	SubmitReview(ctx context.Context, author entity.Identity, shopID uuid.UUID, input *ReviewInput) (*entity.Review, error)

	// ListReviews returns the reviews of an approved shop, newest first
	ListReviews(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error)
}
