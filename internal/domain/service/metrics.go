package service

import "shopseva/internal/domain/entity"

// MetricsRecorder counts domain events for operational dashboards.
type MetricsRecorder interface {
	ShopSubmitted()
	ShopTransitioned(to entity.ModerationStatus)
	ShopDeleted()
	LikeChanged(delta int)
	ReviewSubmitted(rating int)
	MirrorLookup(hit bool)
	// EventProjected counts events consumed by the worker, by type and outcome.
	EventProjected(eventType string, ok bool)
}
