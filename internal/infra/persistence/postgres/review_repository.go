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

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a ReviewRepository over db.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	row := fromReviewDomain(review)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrReviewValidation
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}
	review.CreatedAt = row.CreatedAt

	return nil
}

func (repo *reviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	var rows []*model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toReviewDomain(row))
	}

	return reviews, nil
}
