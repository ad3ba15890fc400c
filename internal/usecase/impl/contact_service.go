package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/repository"
	"shopseva/internal/domain/service"
	"shopseva/internal/errors"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type contactService struct {
	messageRepo repository.ContactMessageRepository
	effects     *writeEffects
	logger      *slog.Logger
	now         func() time.Time
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	MessageRepo repository.ContactMessageRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		messageRepo: params.MessageRepo,
		effects: &writeEffects{
			publisher: params.Publisher,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitMessage stores a message from the public contact form as unread.
func (srv *contactService) SubmitMessage(ctx context.Context, input *usecase.ContactInput) (*entity.ContactMessage, error) {
	msg := &entity.ContactMessage{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: strings.TrimSpace(input.Message),
		Date:    srv.now(),
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if err := srv.messageRepo.Create(ctx, msg); err != nil {
		return nil, errors.Wrap(err, "failed to create contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.Any("messageID", msg.ID))
	srv.effects.publish(ctx, &service.ModerationEvent{
		Type:      service.EventMessageCreated,
		MessageID: msg.ID.String(),
	})

	return msg, nil
}

func (srv *contactService) ListMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := srv.messageRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

func (srv *contactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := srv.messageRepo.MarkRead(ctx, id); err != nil {
		return errors.Wrap(err, "failed to mark contact message read")
	}

	return nil
}

func (srv *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := srv.messageRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete contact message")
	}

	srv.log(ctx).Info("Contact message deleted", slog.Any("messageID", id))

	return nil
}
