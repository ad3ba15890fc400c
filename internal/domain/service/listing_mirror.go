package service

import (
	"context"
	"time"

	"shopseva/internal/domain/entity"
)

// MirrorSnapshot is a cached copy of the approved listing set.
type MirrorSnapshot struct {
	Shops    []*entity.Shop
	SyncedAt time.Time
}

// ListingMirror is a read-through cache of approved listing cards. It is never
// written to directly by users; every successful remote write invalidates it.
//
// Fills are fenced by a generation counter: a reader takes Generation before
// querying the store and passes it to Store, which writes only if no
// Invalidate has happened since.
type ListingMirror interface {
	// Load returns the snapshot, or ok=false when nothing usable is cached.
	Load(ctx context.Context) (snapshot *MirrorSnapshot, ok bool, err error)

	// Generation returns the current invalidation count.
	Generation(ctx context.Context) (int64, error)

	// Store replaces the snapshot with the cards of shops, stamped with
	// syncedAt, unless the generation has moved past generation.
	Store(ctx context.Context, shops []*entity.Shop, syncedAt time.Time, generation int64) error

	// Invalidate bumps the generation and drops the snapshot so the next read
	// goes to the store.
	Invalidate(ctx context.Context) error
}
