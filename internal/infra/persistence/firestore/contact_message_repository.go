package firestore

import (
	"context"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type contactMessageRepository struct {
	client *firestore.Client
}

// NewContactMessageRepository returns a ContactMessageRepository over the contactMessages collection.
func NewContactMessageRepository(client *firestore.Client) repository.ContactMessageRepository {
	return &contactMessageRepository{client: client}
}

func (repo *contactMessageRepository) doc(id uuid.UUID) *firestore.DocumentRef {
	return repo.client.Collection(collectionMessages).Doc(id.String())
}

func (repo *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	_, err := repo.doc(msg.ID).Create(ctx, &messageDoc{
		Name:    msg.Name,
		Email:   msg.Email,
		Message: msg.Message,
		Date:    msg.Date,
		Read:    msg.Read,
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	return nil
}

func (repo *contactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	snap, err := repo.doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contact message")
	}

	return decodeMessage(snap)
}

func (repo *contactMessageRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	snaps, err := repo.client.Collection(collectionMessages).
		OrderBy("date", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(snaps))
	for _, snap := range snaps {
		msg, err := decodeMessage(snap)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (repo *contactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.doc(id).Update(ctx, []firestore.Update{{Path: "read", Value: true}}); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrMessageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to mark message read")
	}

	return nil
}

func (repo *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return domainerrors.ErrMessageNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete contact message")
	}

	return nil
}

func decodeMessage(snap *firestore.DocumentSnapshot) (*entity.ContactMessage, error) {
	var doc messageDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode contact message "+snap.Ref.ID)
	}
	id, _ := uuid.Parse(snap.Ref.ID)

	return &entity.ContactMessage{
		ID:      id,
		Name:    doc.Name,
		Email:   doc.Email,
		Message: doc.Message,
		Date:    doc.Date,
		Read:    doc.Read,
	}, nil
}
