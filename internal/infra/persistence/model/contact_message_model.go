package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel mirrors the 'contact_messages' table.
type ContactMessageModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(200);not null"`
	Email   string    `gorm:"type:varchar(255);not null"`
	Message string    `gorm:"type:text;not null"`
	Date    time.Time `gorm:"not null;index"`
	Read    bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
