package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type engagementService struct {
	txManager  repository.TransactionManager
	shopRepo   repository.ShopRepository
	likeRepo   repository.LikeRepository
	reviewRepo repository.ReviewRepository
	metrics    service.MetricsRecorder
	effects    *writeEffects
	logger     *slog.Logger
	now        func() time.Time
}

// EngagementServiceParams holds dependencies for EngagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ShopRepo   repository.ShopRepository
	LikeRepo   repository.LikeRepository
	ReviewRepo repository.ReviewRepository
	Publisher  service.EventPublisher
	Mirror     service.ListingMirror
	Metrics    service.MetricsRecorder
	Logger     *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:  params.TxManager,
		shopRepo:   params.ShopRepo,
		likeRepo:   params.LikeRepo,
		reviewRepo: params.ReviewRepo,
		metrics:    params.Metrics,
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

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LikeShop adds the shop to the device's liked set and counts it once.
func (srv *engagementService) LikeShop(ctx context.Context, shopID uuid.UUID, deviceID string) (*usecase.LikeResult, error) {
	return srv.toggleLike(ctx, shopID, deviceID, 1)
}

// UnlikeShop removes the shop from the device's liked set. The counter never drops below zero.
func (srv *engagementService) UnlikeShop(ctx context.Context, shopID uuid.UUID, deviceID string) (*usecase.LikeResult, error) {
	return srv.toggleLike(ctx, shopID, deviceID, -1)
}

func (srv *engagementService) toggleLike(ctx context.Context, shopID uuid.UUID, deviceID string, delta int) (*usecase.LikeResult, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, domainerrors.ErrDeviceIDMissing
	}

	shop, err := findVisibleShop(ctx, srv.shopRepo, shopID)
	if err != nil {
		return nil, err
	}

	var changed bool
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		likes := factory.NewLikeRepository()
		var err error
		if delta > 0 {
			changed, err = likes.Add(ctx, shopID, deviceID)
		} else {
			changed, err = likes.Remove(ctx, shopID, deviceID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to change like membership")
		}
		if !changed {
			return nil
		}

		return errors.Wrap(factory.NewShopRepository().AdjustCounters(ctx, shopID, delta, 0), "failed to adjust like counter")
	})
	if err != nil {
		return nil, err
	}

	if changed {
		shop.AdjustLikes(delta)
		srv.metrics.LikeChanged(delta)
		srv.effects.invalidateMirror(ctx)
		srv.log(ctx).Debug("Like toggled", slog.Any("shopID", shopID), slog.Int("delta", delta))
	}

	return &usecase.LikeResult{
		ShopID: shopID,
		Liked:  delta > 0,
		Likes:  shop.Likes,
	}, nil
}

// ListLikedShops returns the device's liked shops that are still public, most recently liked first.
func (srv *engagementService) ListLikedShops(ctx context.Context, deviceID string) ([]*entity.Shop, error) {
	if strings.TrimSpace(deviceID) == "" {
		return nil, domainerrors.ErrDeviceIDMissing
	}

	ids, err := srv.likeRepo.ListShopIDs(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked shop ids")
	}
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	shops, err := srv.shopRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load liked shops")
	}

	byID := make(map[uuid.UUID]*entity.Shop, len(shops))
	for _, shop := range shops {
		byID[shop.ID] = shop
	}

	liked := make([]*entity.Shop, 0, len(ids))
	for _, id := range ids {
		if shop, ok := byID[id]; ok && shop.IsPubliclyVisible() {
			liked = append(liked, shop)
		}
	}

	return liked, nil
}

// SubmitReview stores the review and bumps the review counter in one transaction.
func (srv *engagementService) SubmitReview(ctx context.Context, author entity.Identity, shopID uuid.UUID, input *usecase.ReviewInput) (*entity.Review, error) {
	if author.UserID == uuid.Nil {
		return nil, domainerrors.ErrUnauthorized
	}

	if _, err := findVisibleShop(ctx, srv.shopRepo, shopID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:        uuid.New(),
		ShopID:    shopID,
		UserID:    author.UserID,
		UserName:  author.Name,
		Rating:    input.Rating,
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: srv.now(),
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewReviewRepository().Create(ctx, review); err != nil {
			return errors.Wrap(err, "failed to create review")
		}

		return errors.Wrap(factory.NewShopRepository().AdjustCounters(ctx, shopID, 0, 1), "failed to adjust review counter")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit review", slog.Any("shopID", shopID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Review submitted", slog.Any("shopID", shopID), slog.Any("reviewID", review.ID))
	srv.metrics.ReviewSubmitted(review.Rating)
	srv.effects.invalidateMirror(ctx)

	return review, nil
}

// ListReviews returns the reviews of a public shop, newest first.
func (srv *engagementService) ListReviews(ctx context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	if _, err := findVisibleShop(ctx, srv.shopRepo, shopID); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}
