package firestore

import (
	"context"
	"strings"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository returns a UserRepository over the users collection.
// Emails are stored lower-cased so lookups are case-insensitive.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(collectionUsers)
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	snap, err := repo.col().Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return decodeUser(snap)
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (repo *userRepository) FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	return repo.findOne(ctx, "firebaseUid", uid)
}

// Create fails with ErrUserAlreadyExists when a non-empty email is taken. The check
// and the write are not atomic; the email index in PostgreSQL is the strict path.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.Email != "" {
		if _, err := repo.FindByEmail(ctx, user.Email); err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.col().Doc(user.ID.String()).Create(ctx, fromUser(user)); err != nil {
		if isAlreadyExists(err) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	if _, err := repo.col().Doc(user.ID.String()).Set(ctx, fromUser(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, field, value string) (*entity.User, error) {
	snaps, err := repo.col().Where(field, "==", value).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by "+field)
	}
	if len(snaps) == 0 {
		return nil, domainerrors.ErrUserNotFound
	}

	return decodeUser(snaps[0])
}

func fromUser(u *entity.User) *userDoc {
	return &userDoc{
		Name:         u.Name,
		Email:        strings.ToLower(u.Email),
		Phone:        u.Phone,
		Role:         u.Role.String(),
		PasswordHash: u.PasswordHash,
		FirebaseUID:  u.FirebaseUID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user "+snap.Ref.ID)
	}
	id, err := uuid.Parse(snap.Ref.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user "+snap.Ref.ID)
	}

	return &entity.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		Phone:        doc.Phone,
		Role:         entity.Role(doc.Role),
		PasswordHash: doc.PasswordHash,
		FirebaseUID:  doc.FirebaseUID,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
