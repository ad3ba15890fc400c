package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shopseva/config"
	"shopseva/internal/domain/entity"
	"shopseva/internal/domain/repository"
	"shopseva/internal/errors"
	"shopseva/internal/usecase"

	"go.uber.org/fx"
)

const defaultStatsInterval = 5 * time.Second

// statsService keeps the last admin summary and recomputes it on a ticker.
type statsService struct {
	shopRepo    repository.ShopRepository
	messageRepo repository.ContactMessageRepository
	interval    time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu   sync.RWMutex
	last *entity.AdminStats

	cancel context.CancelFunc
	done   chan struct{}
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In
	fx.Lifecycle

	ShopRepo    repository.ShopRepository
	MessageRepo repository.ContactMessageRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewStatsService builds the service and ties its refresh loop to the fx lifecycle.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	interval := defaultStatsInterval
	if params.Config != nil && params.Config.Stats != nil && params.Config.Stats.RefreshInterval > 0 {
		interval = params.Config.Stats.RefreshInterval
	}

	srv := newStatsService(params.ShopRepo, params.MessageRepo, interval, params.Logger)
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			srv.start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.stop(ctx)
		},
	})

	return srv
}

func newStatsService(shopRepo repository.ShopRepository, messageRepo repository.ContactMessageRepository, interval time.Duration, logger *slog.Logger) *statsService {
	return &statsService{
		shopRepo:    shopRepo,
		messageRepo: messageRepo,
		interval:    interval,
		logger:      logger,
		now:         time.Now,
	}
}

// Snapshot returns the cached summary. Before the first tick it computes one inline.
func (srv *statsService) Snapshot(ctx context.Context) (*entity.AdminStats, error) {
	srv.mu.RLock()
	last := srv.last
	srv.mu.RUnlock()
	if last != nil {
		return last, nil
	}

	if err := srv.Refresh(ctx); err != nil {
		return nil, err
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.last, nil
}

// Refresh recomputes the summary from the store.
func (srv *statsService) Refresh(ctx context.Context) error {
	shops, err := srv.shopRepo.ListSummaries(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list shops for stats")
	}
	messages, err := srv.messageRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list messages for stats")
	}

	stats := entity.ComputeAdminStats(shops, messages, srv.now())

	srv.mu.Lock()
	srv.last = &stats
	srv.mu.Unlock()

	return nil
}

func (srv *statsService) start() {
	ctx, cancel := context.WithCancel(context.Background())
	srv.cancel = cancel
	srv.done = make(chan struct{})

	go srv.run(ctx)
}

func (srv *statsService) run(ctx context.Context) {
	defer close(srv.done)

	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := srv.Refresh(ctx); err != nil && ctx.Err() == nil {
				srv.logger.Warn("Admin stats refresh failed", slog.Any("error", err))
			}
		}
	}
}

func (srv *statsService) stop(ctx context.Context) error {
	if srv.cancel == nil {
		return nil
	}
	srv.cancel()

	select {
	case <-srv.done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "stats refresher did not stop")
	}
}
