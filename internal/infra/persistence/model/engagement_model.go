package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_shop_created,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	UserName  string    `gorm:"type:varchar(200)"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_reviews_shop_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ShopLikeModel mirrors the 'shop_likes' table. The composite key makes a like idempotent.
type ShopLikeModel struct {
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID  string    `gorm:"type:varchar(128);primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopLikeModel) TableName() string {
	return "shop_likes"
}
