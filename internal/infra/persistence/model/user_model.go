package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. FirebaseUID is null for local accounts
// and Email is null for phone-only federated accounts.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(200)"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	Phone        string    `gorm:"type:varchar(20)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	FirebaseUID  *string   `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
