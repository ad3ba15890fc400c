package postgres

import (
	"testing"
	"time"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShopMapping_RoundTrip(t *testing.T) {
	lat, lng := 21.17, 72.83
	shop := &entity.Shop{
		ID:                uuid.New(),
		Name:              "Patel Kirana",
		Address:           "Station Road",
		Category:          "grocery",
		State:             "gujarat",
		District:          "surat",
		Contact:           "9825012345",
		EstablishmentYear: "1998",
		Latitude:          &lat,
		Longitude:         &lng,
		Images:            []string{"a", "b"},
		IsRejected:        true,
		RejectionReason:   "Duplicate of existing shop",
		Likes:             3,
		ReviewCount:       1,
		OwnerID:           uuid.New(),
		CreatedAt:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, shop, toShopDomain(fromShopDomain(shop)))
}

func TestFromShopDomain_NilImagesBecomeEmpty(t *testing.T) {
	row := fromShopDomain(&entity.Shop{ID: uuid.New()})

	assert.NotNil(t, row.Images)
	assert.Empty(t, row.Images)
}

func TestUserMapping_FirebaseUIDNullable(t *testing.T) {
	local := &entity.User{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleShopkeeper, PasswordHash: "hash"}
	row := fromUserDomain(local)
	assert.Nil(t, row.FirebaseUID)
	assert.Equal(t, local, toUserDomain(row))

	federated := &entity.User{ID: uuid.New(), Email: "b@example.com", Role: entity.RoleShopkeeper, FirebaseUID: "uid-1"}
	row = fromUserDomain(federated)
	if assert.NotNil(t, row.FirebaseUID) {
		assert.Equal(t, "uid-1", *row.FirebaseUID)
	}
	assert.Equal(t, federated, toUserDomain(row))
}

func TestUserMapping_PhoneOnlyHasNullEmail(t *testing.T) {
	phoneOnly := &entity.User{ID: uuid.New(), Phone: "+919825012345", Role: entity.RoleShopkeeper, FirebaseUID: "uid-2"}
	row := fromUserDomain(phoneOnly)

	assert.Nil(t, row.Email)
	assert.Equal(t, phoneOnly, toUserDomain(row))
}

func TestReviewAndMessageMapping(t *testing.T) {
	review := &entity.Review{ID: uuid.New(), ShopID: uuid.New(), UserID: uuid.New(), UserName: "Asha", Rating: 4, Text: "Good"}
	assert.Equal(t, review, toReviewDomain(fromReviewDomain(review)))

	msg := &entity.ContactMessage{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Message: "Hi", Read: true}
	assert.Equal(t, msg, toContactMessageDomain(fromContactMessageDomain(msg)))
}
