package firestore

import (
	"testing"
	"time"

	"shopseva/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopDoc_RoundTrip(t *testing.T) {
	lat := 23.02
	shop := &entity.Shop{
		ID:          uuid.New(),
		Name:        "Jalaram Sweets",
		Address:     "Relief Road",
		Category:    "sweets",
		State:       "gujarat",
		District:    "ahmedabad",
		Contact:     "9825012345",
		Latitude:    &lat,
		Images:      []string{"a", "b", "c"},
		IsApproved:  true,
		Likes:       7,
		ReviewCount: 2,
		OwnerID:     uuid.New(),
		CreatedAt:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	}

	got, err := fromShop(shop).toShop(shop.ID.String())
	require.NoError(t, err)
	assert.Equal(t, shop, got)
}

func TestShopDoc_ToleratesLegacyValues(t *testing.T) {
	doc := &shopDoc{OwnerID: "legacy-owner", Likes: -2, ReviewCount: -1}

	got, err := doc.toShop(uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got.OwnerID)
	assert.Zero(t, got.Likes)
	assert.Zero(t, got.ReviewCount)

	_, err = doc.toShop("not-a-uuid")
	require.Error(t, err)
}

func TestFromShop_NilImages(t *testing.T) {
	assert.Equal(t, []string{}, fromShop(&entity.Shop{}).Images)
}

func TestLikeDocID(t *testing.T) {
	id := uuid.MustParse("0b9f5a4e-8b0e-4c8a-9d55-2f4b8f2e7a11")

	assert.Equal(t, "0b9f5a4e-8b0e-4c8a-9d55-2f4b8f2e7a11_device-1", likeDocID(id, "device-1"))
}

func TestFromUser_LowercasesEmail(t *testing.T) {
	doc := fromUser(&entity.User{Email: "Owner@Example.COM", Role: entity.RoleShopkeeper})

	assert.Equal(t, "owner@example.com", doc.Email)
	assert.Equal(t, "shopkeeper", doc.Role)
}
