package postgres

import (
	"context"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"
	"shopseva/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository returns a ContactMessageRepository over db.
func NewContactMessageRepository(db *gorm.DB) repository.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (repo *contactMessageRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	if err := repo.db.WithContext(ctx).Create(fromContactMessageDomain(msg)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	return nil
}

func (repo *contactMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	var row model.ContactMessageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapNotFound(err, domainerrors.ErrMessageNotFound, "failed to find contact message")
	}

	return toContactMessageDomain(&row), nil
}

func (repo *contactMessageRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var rows []*model.ContactMessageModel
	if err := repo.db.WithContext(ctx).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, toContactMessageDomain(row))
	}

	return messages, nil
}

func (repo *contactMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactMessageModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark message read")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMessageNotFound
	}

	return nil
}

func (repo *contactMessageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactMessageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact message")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMessageNotFound
	}

	return nil
}
