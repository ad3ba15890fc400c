package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAdminStats(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	approvedA := newTestShop(2)
	require.NoError(t, approvedA.Approve(2))
	approvedB := newTestShop(2)
	approvedB.Category = "sweets"
	approvedB.District = "rajkot"
	require.NoError(t, approvedB.Approve(2))
	rejected := newTestShop(2)
	rejected.Category = "pharmacy"
	require.NoError(t, rejected.Reject("", "fallback"))
	pending := newTestShop(2)

	messages := []*ContactMessage{{Read: true}, {}, {}}

	stats := ComputeAdminStats([]*Shop{approvedA, approvedB, rejected, pending}, messages, now)

	assert.Equal(t, 4, stats.TotalShops)
	assert.Equal(t, 1, stats.PendingShops)
	assert.Equal(t, 2, stats.ApprovedShops)
	assert.Equal(t, 1, stats.RejectedShops)
	assert.Equal(t, 2, stats.CategoriesInUse)
	assert.Equal(t, 2, stats.DistrictsInUse)
	assert.Equal(t, 3, stats.ContactMessages)
	assert.Equal(t, 2, stats.UnreadMessages)
	assert.Equal(t, map[string]int{"grocery": 1, "sweets": 1}, stats.ApprovedByCategory)
	assert.Equal(t, now, stats.GeneratedAt)
}

func TestComputeAdminStats_Empty(t *testing.T) {
	stats := ComputeAdminStats(nil, nil, time.Time{})

	assert.Zero(t, stats.TotalShops)
	assert.Zero(t, stats.CategoriesInUse)
	assert.NotNil(t, stats.ApprovedByCategory)
}
