package impl

import (
	"context"
	"testing"
	"time"

	"shopseva/internal/domain/entity"
	mockRepo "shopseva/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatsService_SnapshotComputesOnce(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	messageRepo := mockRepo.NewMockContactMessageRepository(t)
	srv := newStatsService(shopRepo, messageRepo, time.Hour, newDiscardLogger())
	srv.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	shops := []*entity.Shop{
		newStoredShop(entity.StatusPending, 2),
		newStoredShop(entity.StatusApproved, 2),
		newStoredShop(entity.StatusRejected, 2),
	}
	messages := []*entity.ContactMessage{{Read: false}, {Read: true}}

	shopRepo.EXPECT().ListSummaries(ctx).Return(shops, nil).Once()
	messageRepo.EXPECT().List(ctx).Return(messages, nil).Once()

	stats, err := srv.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalShops)
	assert.Equal(t, 1, stats.PendingShops)
	assert.Equal(t, 1, stats.ApprovedShops)
	assert.Equal(t, 1, stats.RejectedShops)
	assert.Equal(t, 1, stats.UnreadMessages)
	assert.Equal(t, fixedNow, stats.GeneratedAt)

	cached, err := srv.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, stats, cached)
}

func TestStatsService_RefreshFailureKeepsPrevious(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	messageRepo := mockRepo.NewMockContactMessageRepository(t)
	srv := newStatsService(shopRepo, messageRepo, time.Hour, newDiscardLogger())
	ctx := context.Background()

	shopRepo.EXPECT().ListSummaries(ctx).Return([]*entity.Shop{}, nil).Once()
	messageRepo.EXPECT().List(ctx).Return(nil, nil).Once()
	require.NoError(t, srv.Refresh(ctx))
	first, err := srv.Snapshot(ctx)
	require.NoError(t, err)

	shopRepo.EXPECT().ListSummaries(ctx).Return(nil, errors.New("db down")).Once()
	require.Error(t, srv.Refresh(ctx))

	after, err := srv.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, first, after)
}

func TestStatsService_StartStop(t *testing.T) {
	shopRepo := mockRepo.NewMockShopRepository(t)
	messageRepo := mockRepo.NewMockContactMessageRepository(t)
	srv := newStatsService(shopRepo, messageRepo, 10*time.Millisecond, newDiscardLogger())

	shopRepo.EXPECT().ListSummaries(mock.Anything).Return(nil, nil).Maybe()
	messageRepo.EXPECT().List(mock.Anything).Return(nil, nil).Maybe()

	srv.start()
	time.Sleep(35 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.stop(ctx))

	stats, err := srv.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalShops)
}
