package usecase

import (
	"context"

	"shopseva/internal/domain/entity"
)

// StatsUsecase serves the admin dashboard summary
type StatsUsecase interface {
	// Snapshot returns the last computed summary, computing one if none exists yet
	Snapshot(ctx context.Context) (*entity.AdminStats, error)

	// Refresh recomputes the summary from the store
	Refresh(ctx context.Context) error
}
