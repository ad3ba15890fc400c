package impl

import (
	"context"
	"log/slog"
	"time"

	"shopseva/config"
	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/entity"
	domainerrors "shopseva/internal/domain/errors"
	"shopseva/internal/domain/repository"
	"shopseva/internal/domain/service"
	"shopseva/internal/errors"
	"shopseva/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPageSize = 8

type directoryService struct {
	shopRepo repository.ShopRepository
	mirror   service.ListingMirror
	metrics  service.MetricsRecorder
	pageSize int
	logger   *slog.Logger
	now      func() time.Time
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Mirror   service.ListingMirror
	Metrics  service.MetricsRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	pageSize := defaultPageSize
	if params.Config != nil && params.Config.Listing != nil && params.Config.Listing.PageSize > 0 {
		pageSize = params.Config.Listing.PageSize
	}

	return &directoryService{
		shopRepo: params.ShopRepo,
		mirror:   params.Mirror,
		metrics:  params.Metrics,
		pageSize: pageSize,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchShops filters the approved set and returns the first page with the full match count.
func (srv *directoryService) SearchShops(ctx context.Context, filter entity.ShopFilter) (*entity.ShopPage, error) {
	shops, err := srv.approvedListings(ctx)
	if err != nil {
		return nil, err
	}

	page := entity.FilterVisible(shops, filter, srv.pageSize)

	return &page, nil
}

// approvedListings reads listing cards through the mirror. Mirror failures
// degrade to a store read. The generation is taken before the store query so
// a write committed in between keeps this fill out of the mirror.
func (srv *directoryService) approvedListings(ctx context.Context) ([]*entity.Shop, error) {
	snapshot, ok, err := srv.mirror.Load(ctx)
	if err != nil {
		srv.log(ctx).Warn("Listing mirror read failed", slog.Any("error", err))
	}
	if ok {
		srv.metrics.MirrorLookup(true)

		return snapshot.Shops, nil
	}
	srv.metrics.MirrorLookup(false)

	generation, genErr := srv.mirror.Generation(ctx)
	if genErr != nil {
		srv.log(ctx).Warn("Listing mirror generation read failed", slog.Any("error", genErr))
	}

	shops, err := srv.shopRepo.FindApproved(ctx, entity.ShopFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load approved shops")
	}
	cards := entity.ListingCards(shops)

	if genErr == nil {
		if err := srv.mirror.Store(ctx, cards, srv.now(), generation); err != nil {
			srv.log(ctx).Warn("Listing mirror write failed", slog.Any("error", err))
		}
	}

	return cards, nil
}

// GetShop returns one approved listing. Pending and rejected listings read as not found.
func (srv *directoryService) GetShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return findVisibleShop(ctx, srv.shopRepo, id)
}

func findVisibleShop(ctx context.Context, repo repository.ShopRepository, id uuid.UUID) (*entity.Shop, error) {
	shop, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if !shop.IsPubliclyVisible() {
		return nil, domainerrors.ErrShopNotFound
	}

	return shop, nil
}
