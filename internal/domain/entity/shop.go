// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/google/uuid"
)

// ModerationStatus is the review state of a shop listing.
type ModerationStatus string

const (
	// StatusPending is a submitted listing awaiting an administrator decision.
	StatusPending ModerationStatus = "pending"
	// StatusApproved is a listing visible to the public.
	StatusApproved ModerationStatus = "approved"
	// StatusRejected is a listing turned down by an administrator. It is terminal.
	StatusRejected ModerationStatus = "rejected"
)

// String returns the string representation of the ModerationStatus.
func (s ModerationStatus) String() string {
	return string(s)
}

// IsValid checks if the ModerationStatus is a known value.
func (s ModerationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseModerationStatus accepts a status name in any case.
func ParseModerationStatus(raw string) (ModerationStatus, error) {
	status := ModerationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", domainerrors.ErrInvalidStatus.WithDetails(raw)
	}

	return status, nil
}

// Shop is a listing submitted by a shop owner. It becomes public only once approved.
type Shop struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Category          string    `json:"category"`
	State             string    `json:"state"`
	District          string    `json:"district"`
	Contact           string    `json:"contact"`
	AlternateContact  string    `json:"alternateContact,omitempty"`
	Email             string    `json:"email,omitempty"`
	OwnerName         string    `json:"ownerName,omitempty"`
	BusinessHours     string    `json:"businessHours,omitempty"`
	EstablishmentYear string    `json:"establishmentYear,omitempty"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`

	// Images are embedded data URLs or raw base64, in display order.
	Images []string `json:"images"`

	IsApproved      bool   `json:"isApproved"`
	IsRejected      bool   `json:"isRejected"`
	RejectionReason string `json:"rejectionReason,omitempty"`

	Likes       int `json:"likes"`
	ReviewCount int `json:"reviewCount"`

	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status derives the moderation state from the two flags.
func (s *Shop) Status() ModerationStatus {
	switch {
	case s.IsApproved:
		return StatusApproved
	case s.IsRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// IsPubliclyVisible reports whether anonymous visitors may see the listing.
func (s *Shop) IsPubliclyVisible() bool {
	return s.IsApproved
}

// Approve moves a pending listing to approved. The image guard is re-checked
// here because a record may have been stored or edited with fewer images.
func (s *Shop) Approve(minImages int) error {
	if s.Status() != StatusPending {
		return domainerrors.ErrInvalidTransition.WithDetails("current status: " + s.Status().String())
	}
	if len(s.Images) < minImages {
		return domainerrors.ErrImageCount.WithDetails("approval requires at least the minimum number of images")
	}

	s.IsApproved = true
	s.IsRejected = false
	s.RejectionReason = ""

	return nil
}

// Reject moves a pending listing to rejected. An empty reason stores fallback.
func (s *Shop) Reject(reason, fallback string) error {
	if s.Status() != StatusPending {
		return domainerrors.ErrInvalidTransition.WithDetails("current status: " + s.Status().String())
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = fallback
	}

	s.IsApproved = false
	s.IsRejected = true
	s.RejectionReason = reason

	return nil
}

// Clone returns a deep copy so callers can stage changes and discard them on failure.
func (s *Shop) Clone() *Shop {
	if s == nil {
		return nil
	}

	cloned := *s
	cloned.Images = append([]string(nil), s.Images...)
	if s.Latitude != nil {
		lat := *s.Latitude
		cloned.Latitude = &lat
	}
	if s.Longitude != nil {
		lng := *s.Longitude
		cloned.Longitude = &lng
	}

	return &cloned
}

// Card returns a copy holding only the cover image, the form list views and
// the listing mirror carry.
func (s *Shop) Card() *Shop {
	card := s.Clone()
	if len(card.Images) > 1 {
		card.Images = card.Images[:1]
	}

	return card
}

// ListingCards maps shops to their cards.
func ListingCards(shops []*Shop) []*Shop {
	cards := make([]*Shop, 0, len(shops))
	for _, s := range shops {
		if s != nil {
			cards = append(cards, s.Card())
		}
	}

	return cards
}

// ShopDetails carries the owner-editable fields of a listing.
type ShopDetails struct {
	Name              string
	Address           string
	Category          string
	State             string
	District          string
	Contact           string
	AlternateContact  string
	Email             string
	OwnerName         string
	BusinessHours     string
	EstablishmentYear string
	Latitude          *float64
	Longitude         *float64
	Images            []string
}

// NewPendingShop builds a listing in the initial pending state.
func NewPendingShop(ownerID uuid.UUID, details ShopDetails, now time.Time) *Shop {
	shop := &Shop{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	shop.ApplyDetails(details)

	return shop
}

// ApplyDetails overwrites descriptive fields. Moderation and engagement fields are untouched.
func (s *Shop) ApplyDetails(d ShopDetails) {
	s.Name = strings.TrimSpace(d.Name)
	s.Address = strings.TrimSpace(d.Address)
	s.Category = strings.TrimSpace(d.Category)
	s.State = strings.TrimSpace(d.State)
	s.District = strings.TrimSpace(d.District)
	s.Contact = strings.TrimSpace(d.Contact)
	s.AlternateContact = strings.TrimSpace(d.AlternateContact)
	s.Email = strings.TrimSpace(d.Email)
	s.OwnerName = strings.TrimSpace(d.OwnerName)
	s.BusinessHours = strings.TrimSpace(d.BusinessHours)
	s.EstablishmentYear = strings.TrimSpace(d.EstablishmentYear)
	s.Latitude = d.Latitude
	s.Longitude = d.Longitude
	s.Images = append([]string(nil), d.Images...)
}
