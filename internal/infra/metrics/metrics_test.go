package metrics

import (
	"testing"

	"shopseva/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg).(*Recorder)

	rec.ShopSubmitted()
	rec.ShopTransitioned(entity.StatusApproved)
	rec.ShopTransitioned(entity.StatusApproved)
	rec.ShopTransitioned(entity.StatusRejected)
	rec.ShopDeleted()
	rec.LikeChanged(1)
	rec.LikeChanged(-1)
	rec.LikeChanged(0)
	rec.ReviewSubmitted(5)
	rec.MirrorLookup(true)
	rec.MirrorLookup(false)
	rec.MirrorLookup(false)
	rec.EventProjected("shop.approved", true)
	rec.EventProjected("shop.approved", false)

	assert.InDelta(t, 1, testutil.ToFloat64(rec.submitted), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.transitions.WithLabelValues("approved")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.transitions.WithLabelValues("rejected")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.deleted), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.likes.WithLabelValues("like")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.likes.WithLabelValues("unlike")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.reviews.WithLabelValues("5")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(rec.mirror.WithLabelValues("miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(rec.projected.WithLabelValues("shop.approved", "error")), 0)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewRegistry_HasRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}
