package repository

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactMessageRepository stores messages from the public contact form.
// Lookups that find nothing return domainerrors.ErrMessageNotFound.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)

	// List returns every message, newest first.
	List(ctx context.Context) ([]*entity.ContactMessage, error)

	// MarkRead sets the read flag. It is the only mutation a message allows.
	MarkRead(ctx context.Context, id uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
