package usecase

import (
	"context"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopInput carries the owner-editable fields of a listing
type ShopInput struct {
	Name              string   `json:"name" validate:"max=120"`
	Address           string   `json:"address" validate:"max=300"`
	Category          string   `json:"category"`
	State             string   `json:"state"`
	District          string   `json:"district"`
	Contact           string   `json:"contact"`
	AlternateContact  string   `json:"alternateContact"`
	Email             string   `json:"email" validate:"omitempty,email"`
	OwnerName         string   `json:"ownerName"`
	BusinessHours     string   `json:"businessHours"`
	EstablishmentYear string   `json:"establishmentYear"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,longitude"`
	Images            []string `json:"images"`
}

// Details converts the input into the entity's editable field set.
func (in *ShopInput) Details() entity.ShopDetails {
	return entity.ShopDetails{
		Name:              in.Name,
		Address:           in.Address,
		Category:          in.Category,
		State:             in.State,
		District:          in.District,
		Contact:           in.Contact,
		AlternateContact:  in.AlternateContact,
		Email:             in.Email,
		OwnerName:         in.OwnerName,
		BusinessHours:     in.BusinessHours,
		EstablishmentYear: in.EstablishmentYear,
		Latitude:          in.Latitude,
		Longitude:         in.Longitude,
		Images:            in.Images,
	}
}

// ShopUsecase defines the listing lifecycle: submission by shopkeepers and moderation by the administrator
type ShopUsecase interface {
	// SubmitShop validates the input and stores a pending listing for ownerID
	SubmitShop(ctx context.Context, ownerID uuid.UUID, input *ShopInput) (*entity.Shop, error)

	// ApproveShop moves a pending listing to approved
	ApproveShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// RejectShop moves a pending listing to rejected. An empty reason stores the configured fallback
	RejectShop(ctx context.Context, id uuid.UUID, reason string) (*entity.Shop, error)

	// UpdateShop edits the descriptive fields of an approved listing
	UpdateShop(ctx context.Context, id uuid.UUID, input *ShopInput) (*entity.Shop, error)

	// DeleteShop removes an approved listing
	DeleteShop(ctx context.Context, id uuid.UUID) error

	// ListByStatus returns every listing in a moderation state, newest first
	ListByStatus(ctx context.Context, status entity.ModerationStatus) ([]*entity.Shop, error)

	// ListOwnerShops returns a shopkeeper's listings. An empty status returns all of them
	ListOwnerShops(ctx context.Context, ownerID uuid.UUID, status entity.ModerationStatus) ([]*entity.Shop, error)

	// AddImage appends an image to a listing under edit
	AddImage(ctx context.Context, id uuid.UUID, image string) (*entity.Shop, error)

	// RemoveImage drops the image at index from a listing under edit
	RemoveImage(ctx context.Context, id uuid.UUID, index int) (*entity.Shop, error)
}
