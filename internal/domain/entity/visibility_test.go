package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shopAt(name, category, district string, created time.Time, approved bool) *Shop {
	s := newTestShop(2)
	s.Name = name
	s.Category = category
	s.District = district
	s.CreatedAt = created
	if approved {
		_ = s.Approve(2)
	}

	return s
}

func TestFilterVisible_NeverReturnsUnapproved(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	pending := shopAt("Pending", "grocery", "surat", base, false)
	rejected := shopAt("Rejected", "grocery", "surat", base.Add(time.Hour), false)
	require.NoError(t, rejected.Reject("", "fallback"))
	approved := shopAt("Approved", "grocery", "surat", base.Add(2*time.Hour), true)

	page := FilterVisible([]*Shop{pending, rejected, approved, nil}, ShopFilter{}, 0)

	require.Len(t, page.Shops, 1)
	assert.Equal(t, approved.ID, page.Shops[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestFilterVisible_ApprovalMakesShopVisible(t *testing.T) {
	shop := newTestShop(2)
	assert.Empty(t, FilterVisible([]*Shop{shop}, ShopFilter{}, 8).Shops)

	require.NoError(t, shop.Approve(2))

	page := FilterVisible([]*Shop{shop}, ShopFilter{}, 8)
	require.Len(t, page.Shops, 1)
	assert.Equal(t, shop.ID, page.Shops[0].ID)
}

func TestFilterVisible_RejectionKeepsShopHidden(t *testing.T) {
	shop := newTestShop(2)

	require.NoError(t, shop.Reject("Duplicate of existing shop", "Not approved by admin"))

	assert.Empty(t, FilterVisible([]*Shop{shop}, ShopFilter{}, 8).Shops)
	assert.Equal(t, "Duplicate of existing shop", shop.RejectionReason)
}

func TestFilterVisible_Filters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	kirana := shopAt("Patel Kirana", "grocery", "surat", base, true)
	sweets := shopAt("Jalaram Sweets", "sweets", "surat", base.Add(time.Hour), true)
	pharmacy := shopAt("Shah Medical", "pharmacy", "rajkot", base.Add(2*time.Hour), true)
	pharmacy.Address = "Kirana Bazaar, Rajkot"
	all := []*Shop{kirana, sweets, pharmacy}

	tests := []struct {
		name   string
		filter ShopFilter
		want   []*Shop
	}{
		{name: "no filter newest first", filter: ShopFilter{}, want: []*Shop{pharmacy, sweets, kirana}},
		{name: "category", filter: ShopFilter{Category: "sweets"}, want: []*Shop{sweets}},
		{name: "district", filter: ShopFilter{District: " surat "}, want: []*Shop{sweets, kirana}},
		{name: "search matches name or address", filter: ShopFilter{Search: "KIRANA"}, want: []*Shop{pharmacy, kirana}},
		{name: "combined", filter: ShopFilter{Category: "grocery", District: "rajkot"}, want: []*Shop{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := FilterVisible(all, tt.filter, 0)

			require.Len(t, page.Shops, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].ID, page.Shops[i].ID)
			}
		})
	}
}

func TestFilterVisible_TruncatesAndReportsTotal(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	shops := make([]*Shop, 0, 10)
	for i := 0; i < 10; i++ {
		shops = append(shops, shopAt("Shop", "grocery", "surat", base.Add(time.Duration(i)*time.Minute), true))
	}

	page := FilterVisible(shops, ShopFilter{}, 8)

	assert.Len(t, page.Shops, 8)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 8, page.Limit)
	assert.Equal(t, shops[9].ID, page.Shops[0].ID)
}
