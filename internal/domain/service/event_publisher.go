package service

import (
	"context"
	"time"
)

// ModerationEventType names what happened to a listing or message.
type ModerationEventType string

const (
	EventShopSubmitted  ModerationEventType = "shop.submitted"
	EventShopApproved   ModerationEventType = "shop.approved"
	EventShopRejected   ModerationEventType = "shop.rejected"
	EventShopUpdated    ModerationEventType = "shop.updated"
	EventShopDeleted    ModerationEventType = "shop.deleted"
	EventMessageCreated ModerationEventType = "contact.created"
)

// ModerationEvent is published after a successful write so downstream
// consumers (notifications, audit) can react.
type ModerationEvent struct {
	RequestID  string              `json:"request_id,omitempty"` // For distributed tracing
	Type       ModerationEventType `json:"type"`
	ShopID     string              `json:"shop_id,omitempty"`
	OwnerID    string              `json:"owner_id,omitempty"`
	MessageID  string              `json:"message_id,omitempty"`
	Reason     string              `json:"reason,omitempty"`
	OccurredAt time.Time           `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishModerationEvent publishes one event. Failures never undo the write that caused it.
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
