package postgres

import (
	"context"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"
	"shopseva/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shopUpdateColumns are the columns Update may overwrite. Counters are
// changed only through AdjustCounters so concurrent likes are never lost.
//
//nolint:gochecknoglobals
var shopUpdateColumns = []string{
	"name", "address", "category", "state", "district", "contact", "alternate_contact",
	"email", "owner_name", "business_hours", "establishment_year", "latitude", "longitude",
	"images", "is_approved", "is_rejected", "rejection_reason", "updated_at",
}

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository returns a ShopRepository over db.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	row := fromShopDomain(shop)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopValidation.WithDetails("shop id already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}
	shop.CreatedAt = row.CreatedAt
	shop.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var row model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, mapNotFound(err, domainerrors.ErrShopNotFound, "failed to find shop by id")
	}

	return toShopDomain(&row), nil
}

func (repo *shopRepository) FindByStatus(ctx context.Context, status entity.ModerationStatus) ([]*entity.Shop, error) {
	return repo.find(ctx, statusScope(status))
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, status entity.ModerationStatus) ([]*entity.Shop, error) {
	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB { return db.Where("owner_id = ?", ownerID) },
	}
	if status != "" {
		scopes = append(scopes, statusScope(status))
	}

	return repo.find(ctx, scopes...)
}

func (repo *shopRepository) FindApproved(ctx context.Context, filter entity.ShopFilter) ([]*entity.Shop, error) {
	filter = filter.Normalize()

	return repo.find(ctx, statusScope(entity.StatusApproved), func(db *gorm.DB) *gorm.DB {
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.State != "" {
			db = db.Where("state = ?", filter.State)
		}
		if filter.District != "" {
			db = db.Where("district = ?", filter.District)
		}

		return db
	})
}

func (repo *shopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	return repo.find(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("id IN ?", ids) })
}

var shopSummaryColumns = []string{"id", "category", "state", "district", "is_approved", "is_rejected", "created_at", "updated_at"}

func (repo *shopRepository) ListSummaries(ctx context.Context) ([]*entity.Shop, error) {
	return repo.find(ctx, summaryScope)
}

func summaryScope(db *gorm.DB) *gorm.DB {
	return db.Select(shopSummaryColumns)
}

func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	row := fromShopDomain(shop)
	row.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{ID: shop.ID}).
		Select(shopUpdateColumns).
		Updates(row)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrShopNotFound
	}
	shop.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrShopNotFound
	}

	return nil
}

// AdjustCounters applies the step in one UPDATE so concurrent actions never
// read-modify-write over each other.
func (repo *shopRepository) AdjustCounters(ctx context.Context, id uuid.UUID, likesDelta, reviewsDelta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"likes":        gorm.Expr("GREATEST(likes + ?, 0)", entity.CounterStep(likesDelta)),
			"review_count": gorm.Expr("GREATEST(review_count + ?, 0)", entity.CounterStep(reviewsDelta)),
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrShopValidation.WithDetails("counter would become negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust shop counters")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrShopNotFound
	}

	return nil
}

func (repo *shopRepository) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*entity.Shop, error) {
	var rows []*model.ShopModel
	if err := repo.db.WithContext(ctx).Scopes(scopes...).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list shops")
	}

	return toShopsDomain(rows), nil
}

func statusScope(status entity.ModerationStatus) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch status {
		case entity.StatusApproved:
			return db.Where("is_approved = ?", true)
		case entity.StatusRejected:
			return db.Where("is_rejected = ? AND is_approved = ?", true, false)
		default:
			return db.Where("is_approved = ? AND is_rejected = ?", false, false)
		}
	}
}
