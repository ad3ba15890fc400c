package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopseva/internal/delivery/context"
	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/repository"
	"shopseva/internal/domain/service"
	"shopseva/internal/errors"
	"shopseva/internal/usecase"

	"go.uber.org/fx"
)

type projectionService struct {
	shopRepo repository.ShopRepository
	mirror   service.ListingMirror
	metrics  service.MetricsRecorder
	logger   *slog.Logger
	now      func() time.Time
}

// ProjectionServiceParams holds dependencies for ProjectionService, injected by Fx.
type ProjectionServiceParams struct {
	fx.In

	ShopRepo repository.ShopRepository
	Mirror   service.ListingMirror
	Metrics  service.MetricsRecorder
	Logger   *slog.Logger
}

// NewProjectionService is the constructor for projectionService.
func NewProjectionService(params ProjectionServiceParams) usecase.ProjectionUsecase {
	return &projectionService{
		shopRepo: params.ShopRepo,
		mirror:   params.Mirror,
		metrics:  params.Metrics,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ApplyEvent rebuilds the listing mirror whenever the approved set may have changed.
// Submissions and rejections only touch pending listings, which the mirror never holds.
func (srv *projectionService) ApplyEvent(ctx context.Context, event *service.ModerationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event_type", string(event.Type)),
		slog.String("shop_id", event.ShopID),
	)

	switch event.Type {
	case service.EventShopApproved, service.EventShopUpdated, service.EventShopDeleted:
		if err := srv.rebuildMirror(ctx); err != nil {
			srv.metrics.EventProjected(string(event.Type), false)

			return err
		}
		logger.Info("Listing mirror rebuilt")

	case service.EventShopSubmitted, service.EventShopRejected, service.EventMessageCreated:
		logger.Debug("Event has no projection")

	default:
		logger.Warn("Ignoring unknown event type")
	}

	srv.metrics.EventProjected(string(event.Type), true)

	return nil
}

func (srv *projectionService) rebuildMirror(ctx context.Context) error {
	generation, err := srv.mirror.Generation(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read listing mirror generation")
	}

	shops, err := srv.shopRepo.FindApproved(ctx, entity.ShopFilter{})
	if err != nil {
		return errors.Wrap(err, "failed to load approved shops")
	}

	if err := srv.mirror.Store(ctx, shops, srv.now(), generation); err != nil {
		return errors.Wrap(err, "failed to store listing mirror")
	}

	return nil
}
