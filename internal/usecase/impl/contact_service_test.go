package impl

import (
	"context"
	"testing"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/service"
	mockRepo "shopseva/internal/mocks/repository"
	mockService "shopseva/internal/mocks/service"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	messageRepo *mockRepo.MockContactMessageRepository
	publisher   *mockService.MockEventPublisher
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	messageRepo := mockRepo.NewMockContactMessageRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewContactService(ContactServiceParams{
		MessageRepo: messageRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})
	impl := svc.(*contactService)
	impl.now = func() time.Time { return fixedNow }
	impl.effects.now = impl.now

	return contactServiceFixtures{
		service:     svc,
		messageRepo: messageRepo,
		publisher:   publisher,
	}
}

func TestContactService_SubmitMessage(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()

	fx.messageRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.ContactMessage) bool { return !m.Read && m.Date.Equal(fixedNow) })).
		Return(nil)
	fx.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.MatchedBy(func(e *service.ModerationEvent) bool {
			return e.Type == service.EventMessageCreated && e.MessageID != ""
		})).
		Return(nil)

	msg, err := fx.service.SubmitMessage(ctx, &usecase.ContactInput{
		Name:    " Ravi ",
		Email:   "ravi@example.com",
		Message: "Please add my shop",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", msg.Name)
	assert.False(t, msg.Read)
}

func TestContactService_SubmitMessage_Invalid(t *testing.T) {
	fx := createTestContactService(t)

	_, err := fx.service.SubmitMessage(context.Background(), &usecase.ContactInput{
		Name:    "Ravi",
		Email:   "not-an-email",
		Message: "hello",
	})
	assert.ErrorIs(t, err, domainerrors.ErrMessageValidation)
}

func TestContactService_AdminInbox(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	id := uuid.New()
	messages := []*entity.ContactMessage{{ID: id, Name: "Ravi"}}

	fx.messageRepo.EXPECT().List(ctx).Return(messages, nil)
	fx.messageRepo.EXPECT().MarkRead(ctx, id).Return(nil)
	fx.messageRepo.EXPECT().Delete(ctx, id).Return(nil)

	got, err := fx.service.ListMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, messages, got)
	require.NoError(t, fx.service.MarkRead(ctx, id))
	require.NoError(t, fx.service.DeleteMessage(ctx, id))
}

func TestContactService_MarkRead_NotFound(t *testing.T) {
	fx := createTestContactService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.messageRepo.EXPECT().MarkRead(ctx, id).Return(domainerrors.ErrMessageNotFound)

	assert.ErrorIs(t, fx.service.MarkRead(ctx, id), domainerrors.ErrMessageNotFound)
}
