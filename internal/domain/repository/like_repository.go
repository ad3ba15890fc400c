package repository

import (
	"context"

	"github.com/google/uuid"
)

// LikeRepository keeps the liked-set of each device.
type LikeRepository interface {
	// Add records the like and reports whether it was new.
	Add(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error)

	// Remove deletes the like and reports whether it existed.
	Remove(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error)

	// ListShopIDs returns the shops liked from a device, most recent first.
	ListShopIDs(ctx context.Context, deviceID string) ([]uuid.UUID, error)
}
