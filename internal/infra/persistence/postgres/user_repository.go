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

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a UserRepository over db.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by id", "id = ?", id)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by email", "LOWER(email) = LOWER(?)", email)
}

func (repo *userRepository) FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return repo.first(ctx, "failed to find user by firebase uid", "firebase_uid = ?", uid)
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}
	user.CreatedAt = row.CreatedAt
	user.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	row := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Save(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	user.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *userRepository) first(ctx context.Context, details, query string, args ...any) (*entity.User, error) {
	var row model.UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		return nil, mapNotFound(err, domainerrors.ErrUserNotFound, details)
	}

	return toUserDomain(&row), nil
}
