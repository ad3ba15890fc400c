package entity

import (
	"encoding/base64"
	"testing"
	"time"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(size int) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(make([]byte, size))
}

func newTestShop(images int) *Shop {
	details := ShopDetails{
		Name:     "Patel Kirana Store",
		Address:  "Station Road, Surat",
		Category: "grocery",
		State:    "gujarat",
		District: "surat",
		Contact:  "9825012345",
	}
	for i := 0; i < images; i++ {
		details.Images = append(details.Images, testImage(1024))
	}

	return NewPendingShop(uuid.New(), details, time.Now())
}

func TestNewPendingShop_StartsPending(t *testing.T) {
	shop := newTestShop(2)

	assert.Equal(t, StatusPending, shop.Status())
	assert.False(t, shop.IsApproved)
	assert.False(t, shop.IsRejected)
	assert.Zero(t, shop.Likes)
	assert.Zero(t, shop.ReviewCount)
	assert.NotEqual(t, uuid.Nil, shop.ID)
}

func TestShop_Approve(t *testing.T) {
	shop := newTestShop(2)

	require.NoError(t, shop.Approve(2))

	assert.Equal(t, StatusApproved, shop.Status())
	assert.True(t, shop.IsApproved)
	assert.False(t, shop.IsRejected)
	assert.True(t, shop.IsPubliclyVisible())
}

func TestShop_Approve_RequiresMinimumImages(t *testing.T) {
	shop := newTestShop(1)

	err := shop.Approve(2)

	require.ErrorIs(t, err, domainerrors.ErrImageCount)
	assert.Equal(t, StatusPending, shop.Status())
	assert.False(t, shop.IsApproved)
}

func TestShop_Reject_UsesFallbackReason(t *testing.T) {
	shop := newTestShop(2)

	require.NoError(t, shop.Reject("   ", "Not approved by admin"))

	assert.Equal(t, StatusRejected, shop.Status())
	assert.True(t, shop.IsRejected)
	assert.False(t, shop.IsApproved)
	assert.Equal(t, "Not approved by admin", shop.RejectionReason)
}

func TestShop_Reject_StoresGivenReason(t *testing.T) {
	shop := newTestShop(2)

	require.NoError(t, shop.Reject("Duplicate of existing shop", "Not approved by admin"))

	assert.Equal(t, "Duplicate of existing shop", shop.RejectionReason)
	assert.False(t, shop.IsPubliclyVisible())
}

func TestShop_NoTransitionOutOfTerminalStates(t *testing.T) {
	approved := newTestShop(2)
	require.NoError(t, approved.Approve(2))

	rejected := newTestShop(2)
	require.NoError(t, rejected.Reject("", "fallback"))

	tests := []struct {
		name string
		act  func() error
	}{
		{name: "approve approved", act: func() error { return approved.Approve(2) }},
		{name: "reject approved", act: func() error { return approved.Reject("late", "fallback") }},
		{name: "approve rejected", act: func() error { return rejected.Approve(2) }},
		{name: "reject rejected", act: func() error { return rejected.Reject("again", "fallback") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.act(), domainerrors.ErrInvalidTransition)
		})
	}

	assert.True(t, approved.IsApproved)
	assert.False(t, approved.IsRejected)
	assert.True(t, rejected.IsRejected)
	assert.False(t, rejected.IsApproved)
	assert.Equal(t, "fallback", rejected.RejectionReason)
}

func TestShop_FlagsNeverBothTrue(t *testing.T) {
	shops := []*Shop{newTestShop(2), newTestShop(2), newTestShop(1)}
	_ = shops[0].Approve(2)
	_ = shops[1].Reject("", "fallback")
	_ = shops[2].Approve(2)
	_ = shops[2].Reject("", "fallback")
	_ = shops[0].Reject("", "fallback")
	_ = shops[1].Approve(2)

	for _, s := range shops {
		assert.False(t, s.IsApproved && s.IsRejected, "shop %s has both flags set", s.ID)
	}
}

func TestShop_Clone_IsIndependent(t *testing.T) {
	lat := 21.17
	shop := newTestShop(2)
	shop.Latitude = &lat

	cloned := shop.Clone()
	cloned.Images[0] = "changed"
	*cloned.Latitude = 0
	cloned.IsApproved = true

	assert.NotEqual(t, "changed", shop.Images[0])
	assert.InDelta(t, 21.17, *shop.Latitude, 0.0001)
	assert.False(t, shop.IsApproved)
}

func TestShop_ApplyDetails_KeepsModerationAndEngagement(t *testing.T) {
	shop := newTestShop(2)
	require.NoError(t, shop.Approve(2))
	shop.Likes = 4
	shop.ReviewCount = 2

	shop.ApplyDetails(ShopDetails{Name: "  New Name ", Contact: "9999999999", Images: []string{"a", "b"}})

	assert.Equal(t, "New Name", shop.Name)
	assert.True(t, shop.IsApproved)
	assert.Equal(t, 4, shop.Likes)
	assert.Equal(t, 2, shop.ReviewCount)
}

func TestParseModerationStatus(t *testing.T) {
	status, err := ParseModerationStatus(" Approved ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	_, err = ParseModerationStatus("archived")
	require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestShop_CardKeepsCoverImage(t *testing.T) {
	shop := newTestShop(3)
	shop.IsApproved = true

	cards := ListingCards([]*Shop{shop, nil})

	require.Len(t, cards, 1)
	assert.Equal(t, shop.Images[:1], cards[0].Images)
	assert.Equal(t, shop.ID, cards[0].ID)
	assert.Len(t, shop.Images, 3)
}
