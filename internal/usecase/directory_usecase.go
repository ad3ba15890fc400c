package usecase

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase serves the public, read-only view of approved listings
type DirectoryUsecase interface {
	// SearchShops returns the first page of approved listings matching filter
	SearchShops(ctx context.Context, filter entity.ShopFilter) (*entity.ShopPage, error)

	// GetShop returns an approved listing. Any other listing reads as not found
	GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
}
