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

type shopService struct {
	shopRepo       repository.ShopRepository
	rules          entity.ListingRules
	fallbackReason string
	metrics        service.MetricsRecorder
	effects        *writeEffects
	logger         *slog.Logger
	now            func() time.Time
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	Publisher service.EventPublisher
	Mirror    service.ListingMirror
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	fallback := "Not approved by admin"
	if params.Config != nil && params.Config.Listing != nil && params.Config.Listing.DefaultRejectedReason != "" {
		fallback = params.Config.Listing.DefaultRejectedReason
	}

	return &shopService{
		shopRepo:       params.ShopRepo,
		rules:          listingRules(params.Config),
		fallbackReason: fallback,
		metrics:        params.Metrics,
		effects: &writeEffects{
			publisher: params.Publisher,
			mirror:    params.Mirror,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitShop validates a new listing and stores it as pending.
func (srv *shopService) SubmitShop(ctx context.Context, ownerID uuid.UUID, input *usecase.ShopInput) (*entity.Shop, error) {
	shop := entity.NewPendingShop(ownerID, input.Details(), srv.now())
	if err := srv.rules.Validate(shop); err != nil {
		srv.log(ctx).Warn("Shop submission rejected by validation", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop submitted", slog.Any("shopID", shop.ID), slog.Any("ownerID", ownerID))
	srv.metrics.ShopSubmitted()
	srv.effects.publishShopEvent(ctx, service.EventShopSubmitted, shop)

	return shop, nil
}

// ApproveShop makes a pending listing public.
func (srv *shopService) ApproveShop(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return srv.transition(ctx, id, entity.StatusApproved, service.EventShopApproved, func(shop *entity.Shop) error {
		return shop.Approve(srv.rules.MinImages)
	})
}

// RejectShop turns down a pending listing and keeps the record.
func (srv *shopService) RejectShop(ctx context.Context, id uuid.UUID, reason string) (*entity.Shop, error) {
	return srv.transition(ctx, id, entity.StatusRejected, service.EventShopRejected, func(shop *entity.Shop) error {
		return shop.Reject(reason, srv.fallbackReason)
	})
}

// transition applies a moderation step to a copy and persists it. The stored
// listing and the mirror stay untouched when either the guard or the write fails.
func (srv *shopService) transition(
	ctx context.Context,
	id uuid.UUID,
	to entity.ModerationStatus,
	eventType service.ModerationEventType,
	apply func(*entity.Shop) error,
) (*entity.Shop, error) {
	current, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	next := current.Clone()
	if err := apply(next); err != nil {
		srv.log(ctx).Warn("Moderation transition refused",
			slog.Any("shopID", id),
			slog.String("from", current.Status().String()),
			slog.String("to", to.String()),
			slog.Any("error", err),
		)

		return nil, err
	}
	next.UpdatedAt = srv.now()

	if err := srv.shopRepo.Update(ctx, next); err != nil {
		return nil, errors.Wrapf(err, "failed to persist %s transition", to)
	}

	srv.log(ctx).Info("Shop moderated", slog.Any("shopID", id), slog.String("status", to.String()))
	srv.metrics.ShopTransitioned(to)
	srv.effects.publishShopEvent(ctx, eventType, next)
	srv.effects.invalidateMirror(ctx)

	return next, nil
}

// UpdateShop overwrites the descriptive fields of an approved listing.
func (srv *shopService) UpdateShop(ctx context.Context, id uuid.UUID, input *usecase.ShopInput) (*entity.Shop, error) {
	current, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if current.Status() != entity.StatusApproved {
		return nil, domainerrors.ErrNotApproved.WithDetails("current status: " + current.Status().String())
	}

	next := current.Clone()
	next.ApplyDetails(input.Details())
	if err := srv.rules.Validate(next); err != nil {
		return nil, err
	}

	return srv.save(ctx, next, service.EventShopUpdated)
}

// DeleteShop removes an approved listing.
func (srv *shopService) DeleteShop(ctx context.Context, id uuid.UUID) error {
	current, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to find shop")
	}
	if current.Status() != entity.StatusApproved {
		return domainerrors.ErrNotApproved.WithDetails("current status: " + current.Status().String())
	}

	if err := srv.shopRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}

	srv.log(ctx).Info("Shop deleted", slog.Any("shopID", id))
	srv.metrics.ShopDeleted()
	srv.effects.publishShopEvent(ctx, service.EventShopDeleted, current)
	srv.effects.invalidateMirror(ctx)

	return nil
}

// ListByStatus returns the admin view of one moderation state.
func (srv *shopService) ListByStatus(ctx context.Context, status entity.ModerationStatus) ([]*entity.Shop, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status.String())
	}

	shops, err := srv.shopRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops by status")
	}

	return shops, nil
}

// ListOwnerShops returns the listings a shopkeeper submitted.
func (srv *shopService) ListOwnerShops(ctx context.Context, ownerID uuid.UUID, status entity.ModerationStatus) ([]*entity.Shop, error) {
	if status != "" && !status.IsValid() {
		return nil, domainerrors.ErrInvalidStatus.WithDetails(status.String())
	}

	shops, err := srv.shopRepo.FindByOwner(ctx, ownerID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner shops")
	}

	return shops, nil
}

// AddImage appends an image. A full listing is refused and nothing is written.
func (srv *shopService) AddImage(ctx context.Context, id uuid.UUID, image string) (*entity.Shop, error) {
	return srv.editImages(ctx, id, func(shop *entity.Shop) error {
		return srv.rules.AddImage(shop, image)
	})
}

// RemoveImage drops one image. A pending listing may fall below the minimum
// until approval; an approved listing may not.
func (srv *shopService) RemoveImage(ctx context.Context, id uuid.UUID, index int) (*entity.Shop, error) {
	return srv.editImages(ctx, id, func(shop *entity.Shop) error {
		return srv.rules.RemoveImage(shop, index)
	})
}

func (srv *shopService) editImages(ctx context.Context, id uuid.UUID, edit func(*entity.Shop) error) (*entity.Shop, error) {
	current, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}
	if current.Status() == entity.StatusRejected {
		return nil, domainerrors.ErrInvalidTransition.WithDetails("rejected listings cannot be edited")
	}

	next := current.Clone()
	if err := edit(next); err != nil {
		return nil, err
	}
	if next.IsPubliclyVisible() {
		if err := srv.rules.ValidateImages(next.Images); err != nil {
			return nil, err
		}
	}

	return srv.save(ctx, next, service.EventShopUpdated)
}

func (srv *shopService) save(ctx context.Context, shop *entity.Shop, eventType service.ModerationEventType) (*entity.Shop, error) {
	shop.UpdatedAt = srv.now()
	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		return nil, errors.Wrap(err, "failed to update shop")
	}

	srv.log(ctx).Info("Shop updated", slog.Any("shopID", shop.ID))
	srv.effects.publishShopEvent(ctx, eventType, shop)
	srv.effects.invalidateMirror(ctx)

	return shop, nil
}
