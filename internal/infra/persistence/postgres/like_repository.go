package postgres

import (
	"context"
	"time"

	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"
	"shopseva/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a LikeRepository over db.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

func (repo *likeRepository) Add(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ShopLikeModel{ShopID: shopID, DeviceID: deviceID, CreatedAt: time.Now()})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to add like")
	}

	return result.RowsAffected == 1, nil
}

func (repo *likeRepository) Remove(ctx context.Context, shopID uuid.UUID, deviceID string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("shop_id = ? AND device_id = ?", shopID, deviceID).
		Delete(&model.ShopLikeModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove like")
	}

	return result.RowsAffected > 0, nil
}

func (repo *likeRepository) ListShopIDs(ctx context.Context, deviceID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.ShopLikeModel{}).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Pluck("shop_id", &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list liked shops")
	}

	return ids, nil
}
