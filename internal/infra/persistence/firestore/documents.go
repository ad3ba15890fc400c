package firestore

import (
	"time"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
)

// Collection names match the ones the web client has always used.
const (
	collectionShops    = "shops"
	collectionReviews  = "reviews"
	collectionMessages = "contactMessages"
	collectionUsers    = "users"
	collectionLikes    = "shopLikes"
)

type shopDoc struct {
	Name              string    `firestore:"name"`
	Address           string    `firestore:"address"`
	Category          string    `firestore:"category"`
	State             string    `firestore:"state"`
	District          string    `firestore:"district"`
	Contact           string    `firestore:"contact"`
	AlternateContact  string    `firestore:"alternateContact,omitempty"`
	Email             string    `firestore:"email,omitempty"`
	OwnerName         string    `firestore:"ownerName,omitempty"`
	BusinessHours     string    `firestore:"businessHours,omitempty"`
	EstablishmentYear string    `firestore:"establishmentYear,omitempty"`
	Latitude          *float64  `firestore:"latitude"`
	Longitude         *float64  `firestore:"longitude"`
	Images            []string  `firestore:"images"`
	IsApproved        bool      `firestore:"isApproved"`
	IsRejected        bool      `firestore:"isRejected"`
	RejectionReason   string    `firestore:"rejectionReason,omitempty"`
	Likes             int       `firestore:"likes"`
	ReviewCount       int       `firestore:"reviewCount"`
	OwnerID           string    `firestore:"ownerId"`
	CreatedAt         time.Time `firestore:"createdAt"`
	UpdatedAt         time.Time `firestore:"updatedAt"`
}

func fromShop(s *entity.Shop) *shopDoc {
	images := s.Images
	if images == nil {
		images = []string{}
	}

	return &shopDoc{
		Name:              s.Name,
		Address:           s.Address,
		Category:          s.Category,
		State:             s.State,
		District:          s.District,
		Contact:           s.Contact,
		AlternateContact:  s.AlternateContact,
		Email:             s.Email,
		OwnerName:         s.OwnerName,
		BusinessHours:     s.BusinessHours,
		EstablishmentYear: s.EstablishmentYear,
		Latitude:          s.Latitude,
		Longitude:         s.Longitude,
		Images:            images,
		IsApproved:        s.IsApproved,
		IsRejected:        s.IsRejected,
		RejectionReason:   s.RejectionReason,
		Likes:             s.Likes,
		ReviewCount:       s.ReviewCount,
		OwnerID:           s.OwnerID.String(),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func (d *shopDoc) toShop(id string) (*entity.Shop, error) {
	shopID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	// Listings created by older clients may carry a non-UUID owner.
	ownerID, _ := uuid.Parse(d.OwnerID)

	return &entity.Shop{
		ID:                shopID,
		Name:              d.Name,
		Address:           d.Address,
		Category:          d.Category,
		State:             d.State,
		District:          d.District,
		Contact:           d.Contact,
		AlternateContact:  d.AlternateContact,
		Email:             d.Email,
		OwnerName:         d.OwnerName,
		BusinessHours:     d.BusinessHours,
		EstablishmentYear: d.EstablishmentYear,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Images:            append([]string(nil), d.Images...),
		IsApproved:        d.IsApproved,
		IsRejected:        d.IsRejected,
		RejectionReason:   d.RejectionReason,
		Likes:             max(d.Likes, 0),
		ReviewCount:       max(d.ReviewCount, 0),
		OwnerID:           ownerID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}

type reviewDoc struct {
	ShopID    string    `firestore:"shopId"`
	UserID    string    `firestore:"userId"`
	UserName  string    `firestore:"userName"`
	Rating    int       `firestore:"rating"`
	Text      string    `firestore:"text"`
	CreatedAt time.Time `firestore:"createdAt"`
}

type messageDoc struct {
	Name    string    `firestore:"name"`
	Email   string    `firestore:"email"`
	Message string    `firestore:"message"`
	Date    time.Time `firestore:"date"`
	Read    bool      `firestore:"read"`
}

type userDoc struct {
	Name         string    `firestore:"name"`
	Email        string    `firestore:"email"`
	Phone        string    `firestore:"phone,omitempty"`
	Role         string    `firestore:"role"`
	PasswordHash string    `firestore:"passwordHash,omitempty"`
	FirebaseUID  string    `firestore:"firebaseUid,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

type likeDoc struct {
	ShopID    string    `firestore:"shopId"`
	DeviceID  string    `firestore:"deviceId"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// likeDocID keys a like by its pair so a second like is a create conflict.
func likeDocID(shopID uuid.UUID, deviceID string) string {
	return shopID.String() + "_" + deviceID
}
