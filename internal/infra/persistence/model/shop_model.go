// Package model holds the GORM row types of the PostgreSQL store.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. Images are kept in a jsonb column in display order.
type ShopModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(200);not null"`
	Address           string    `gorm:"type:text;not null"`
	Category          string    `gorm:"type:varchar(64);not null;index"`
	State             string    `gorm:"type:varchar(64);index"`
	District          string    `gorm:"type:varchar(64);not null;index"`
	Contact           string    `gorm:"type:char(10);not null"`
	AlternateContact  string    `gorm:"type:varchar(10)"`
	Email             string    `gorm:"type:varchar(255)"`
	OwnerName         string    `gorm:"type:varchar(200)"`
	BusinessHours     string    `gorm:"type:varchar(200)"`
	EstablishmentYear string    `gorm:"type:varchar(4)"`
	Latitude          *float64
	Longitude         *float64
	Images            []string `gorm:"type:jsonb;serializer:json;not null"`

	IsApproved      bool   `gorm:"not null;default:false;index"`
	IsRejected      bool   `gorm:"not null;default:false;index"`
	RejectionReason string `gorm:"type:text"`

	Likes       int `gorm:"not null;default:0;check:likes >= 0"`
	ReviewCount int `gorm:"not null;default:0;check:review_count >= 0"`

	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
