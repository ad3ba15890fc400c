package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a shopkeeper account. It is created either by local registration
// (PasswordHash set) or by federated sign-in (FirebaseUID set).
// The administrator is configured externally and is not stored as a User.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	FirebaseUID  string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the signed-in caller as seen by the usecases.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Roles  Roles
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Roles.Contains(RoleAdmin)
}
