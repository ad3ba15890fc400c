// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"shopseva/config"
	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/service"
)

// writeEffects runs the follow-ups of a committed write. None of them can fail
// the write: errors are logged and dropped.
type writeEffects struct {
	publisher service.EventPublisher
	mirror    service.ListingMirror
	logger    *slog.Logger
	now       func() time.Time
}

func (e *writeEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

func (e *writeEffects) publishShopEvent(ctx context.Context, eventType service.ModerationEventType, shop *entity.Shop) {
	e.publish(ctx, &service.ModerationEvent{
		Type:    eventType,
		ShopID:  shop.ID.String(),
		OwnerID: shop.OwnerID.String(),
		Reason:  shop.RejectionReason,
	})
}

func (e *writeEffects) publish(ctx context.Context, event *service.ModerationEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = e.now()
	if err := e.publisher.PublishModerationEvent(ctx, event); err != nil {
		e.log(ctx).Warn("Failed to publish moderation event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// invalidateMirror drops the cached approved set after a write touching listings.
func (e *writeEffects) invalidateMirror(ctx context.Context) {
	if err := e.mirror.Invalidate(ctx); err != nil {
		e.log(ctx).Warn("Failed to invalidate listing mirror", slog.Any("error", err))
	}
}

// listingRules reads the image bounds from config, keeping defaults for unset values.
func listingRules(cfg *config.Config) entity.ListingRules {
	rules := entity.DefaultListingRules()
	if cfg == nil || cfg.Listing == nil {
		return rules
	}
	if cfg.Listing.MinImages > 0 {
		rules.MinImages = cfg.Listing.MinImages
	}
	if cfg.Listing.MaxImages > 0 {
		rules.MaxImages = cfg.Listing.MaxImages
	}
	if cfg.Listing.MaxImageBytes > 0 {
		rules.MaxImageBytes = cfg.Listing.MaxImageBytes
	}

	return rules
}
