package impl

import (
	"context"
	"testing"
	"time"

	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/service"
	mockRepo "shopseva/internal/mocks/repository"
	mockService "shopseva/internal/mocks/service"
	"shopseva/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type directoryServiceFixtures struct {
	service  usecase.DirectoryUsecase
	shopRepo *mockRepo.MockShopRepository
	mirror   *mockService.MockListingMirror
	metrics  *mockService.MockMetricsRecorder
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	mirror := mockService.NewMockListingMirror(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	svc := NewDirectoryService(DirectoryServiceParams{
		ShopRepo: shopRepo,
		Mirror:   mirror,
		Metrics:  metrics,
		Config:   newTestConfig(),
		Logger:   newDiscardLogger(),
	})
	svc.(*directoryService).now = func() time.Time { return fixedNow }

	return directoryServiceFixtures{
		service:  svc,
		shopRepo: shopRepo,
		mirror:   mirror,
		metrics:  metrics,
	}
}

func approvedShops(n int) []*entity.Shop {
	shops := make([]*entity.Shop, n)
	for i := range shops {
		shops[i] = newStoredShop(entity.StatusApproved, 2)
		shops[i].CreatedAt = fixedNow.Add(-time.Duration(i) * time.Minute)
	}

	return shops
}

func TestDirectoryService_SearchShops_MirrorMissLoadsAndStores(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	shops := approvedShops(10)

	fx.mirror.EXPECT().Load(ctx).Return(nil, false, nil)
	fx.metrics.EXPECT().MirrorLookup(false).Return()
	fx.mirror.EXPECT().Generation(ctx).Return(int64(7), nil)
	fx.shopRepo.EXPECT().FindApproved(ctx, entity.ShopFilter{}).Return(shops, nil)
	fx.mirror.EXPECT().
		Store(ctx, mock.MatchedBy(func(cards []*entity.Shop) bool {
			return len(cards) == 10 && len(cards[0].Images) == 1
		}), fixedNow, int64(7)).
		Return(nil)

	page, err := fx.service.SearchShops(ctx, entity.ShopFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Shops, 8)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 8, page.Limit)
	assert.Equal(t, shops[0].ID, page.Shops[0].ID)
	assert.Len(t, page.Shops[0].Images, 1)
	assert.Len(t, shops[0].Images, 2)
}

func TestDirectoryService_SearchShops_GenerationErrorSkipsFill(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	shops := approvedShops(2)

	fx.mirror.EXPECT().Load(ctx).Return(nil, false, nil)
	fx.metrics.EXPECT().MirrorLookup(false).Return()
	fx.mirror.EXPECT().Generation(ctx).Return(int64(0), errors.New("redis timeout"))
	fx.shopRepo.EXPECT().FindApproved(ctx, entity.ShopFilter{}).Return(shops, nil)

	page, err := fx.service.SearchShops(ctx, entity.ShopFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	fx.mirror.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDirectoryService_SearchShops_MirrorHit(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	shops := approvedShops(3)
	shops[1].District = "surat"

	fx.mirror.EXPECT().Load(ctx).Return(&service.MirrorSnapshot{Shops: shops, SyncedAt: fixedNow}, true, nil)
	fx.metrics.EXPECT().MirrorLookup(true).Return()

	page, err := fx.service.SearchShops(ctx, entity.ShopFilter{District: "surat"})
	require.NoError(t, err)
	require.Len(t, page.Shops, 1)
	assert.Equal(t, shops[1].ID, page.Shops[0].ID)
	assert.Equal(t, 1, page.Total)
}

func TestDirectoryService_SearchShops_NeverReturnsUnapproved(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	mixed := []*entity.Shop{
		newStoredShop(entity.StatusPending, 2),
		newStoredShop(entity.StatusApproved, 2),
		newStoredShop(entity.StatusRejected, 2),
	}

	fx.mirror.EXPECT().Load(ctx).Return(&service.MirrorSnapshot{Shops: mixed}, true, nil)
	fx.metrics.EXPECT().MirrorLookup(true).Return()

	page, err := fx.service.SearchShops(ctx, entity.ShopFilter{})
	require.NoError(t, err)
	require.Len(t, page.Shops, 1)
	assert.True(t, page.Shops[0].IsApproved)
}

func TestDirectoryService_SearchShops_MirrorErrorsDegrade(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	shops := approvedShops(2)

	fx.mirror.EXPECT().Load(ctx).Return(nil, false, errors.New("redis timeout"))
	fx.metrics.EXPECT().MirrorLookup(false).Return()
	fx.mirror.EXPECT().Generation(ctx).Return(int64(0), nil)
	fx.shopRepo.EXPECT().FindApproved(ctx, entity.ShopFilter{}).Return(shops, nil)
	fx.mirror.EXPECT().Store(ctx, mock.Anything, fixedNow, int64(0)).Return(errors.New("redis timeout"))

	page, err := fx.service.SearchShops(ctx, entity.ShopFilter{Search: "kirana"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestDirectoryService_SearchShops_StoreFailure(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()

	fx.mirror.EXPECT().Load(ctx).Return(nil, false, nil)
	fx.metrics.EXPECT().MirrorLookup(false).Return()
	fx.mirror.EXPECT().Generation(ctx).Return(int64(0), nil)
	fx.shopRepo.EXPECT().FindApproved(ctx, entity.ShopFilter{}).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("boom"), "failed to list shops"))

	_, err := fx.service.SearchShops(ctx, entity.ShopFilter{})
	require.Error(t, err)
}

func TestDirectoryService_GetShop(t *testing.T) {
	fx := createTestDirectoryService(t)
	ctx := context.Background()
	approved := newStoredShop(entity.StatusApproved, 2)
	pending := newStoredShop(entity.StatusPending, 2)

	fx.shopRepo.EXPECT().FindByID(ctx, approved.ID).Return(approved, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)

	shop, err := fx.service.GetShop(ctx, approved.ID)
	require.NoError(t, err)
	assert.Equal(t, approved.ID, shop.ID)

	_, err = fx.service.GetShop(ctx, pending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}
