// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for shopkeeper account persistence.
// Lookups that find nothing return domainerrors.ErrUserNotFound.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByFirebaseUID retrieves the user linked to a federated identity.
	FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}
