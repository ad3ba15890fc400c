package usecase

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput is a message sent through the public contact form
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactUsecase defines the contact form and its admin inbox
type ContactUsecase interface {
	SubmitMessage(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error)
	ListMessages(ctx context.Context) ([]*entity.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}
