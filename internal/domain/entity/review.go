package entity

import (
	"strings"
	"time"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a signed-in visitor's rating of a shop. Reviews are never edited.
type Review struct {
	ID        uuid.UUID `json:"id"`
	ShopID    uuid.UUID `json:"shopId"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the rating range and that the body is not blank.
func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return domainerrors.ErrReviewValidation.WithDetails("rating out of range")
	}
	if strings.TrimSpace(r.Text) == "" {
		return domainerrors.ErrReviewValidation.WithDetails("review text is empty")
	}

	return nil
}
