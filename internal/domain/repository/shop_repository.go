package repository

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopRepository persists shop listings. Lists are ordered newest first.
// Lookups that find nothing return domainerrors.ErrShopNotFound.
type ShopRepository interface {
	// Create stores a new listing.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a listing regardless of its moderation state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindByStatus returns every listing in the given moderation state.
	FindByStatus(ctx context.Context, status entity.ModerationStatus) ([]*entity.Shop, error)

	// FindByOwner returns an owner's listings. An empty status returns all of them.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, status entity.ModerationStatus) ([]*entity.Shop, error)

	// FindApproved returns approved listings matching the equality fields of filter.
	// Free-text search is left to entity.FilterVisible.
	FindApproved(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error)

	// FindByIDs returns the listings that still exist among ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error)

	// ListSummaries returns every listing with only its moderation flags,
	// category, state, district and timestamps loaded. Images and
	// descriptive text are left empty.
	ListSummaries(ctx context.Context) ([]*entity.Shop, error)

	// Update overwrites the stored listing with shop.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a listing.
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustCounters applies one step to the like and review counters, floored at zero.
	AdjustCounters(ctx context.Context, id uuid.UUID, likesDelta, reviewsDelta int) error
}
