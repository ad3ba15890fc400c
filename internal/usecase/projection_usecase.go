package usecase

import (
	"context"

	"shopseva/internal/domain/service"
)

// ProjectionUsecase keeps read-side copies in step with moderation events
type ProjectionUsecase interface {
	// ApplyEvent updates the projections an event affects. Errors are worth retrying
	ApplyEvent(ctx context.Context, event *service.ModerationEvent) error
}
