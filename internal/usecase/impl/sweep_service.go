package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"foodtruck/config"
	deliverycontext "foodtruck/internal/delivery/context"
	"foodtruck/internal/domain/clock"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/repository"
	"foodtruck/internal/domain/schedule"
	"foodtruck/internal/domain/service"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultSweepWorkers  = 4
	defaultSweepPageSize = 100
)

// sweepService implements the SweepUsecase interface.
type sweepService struct {
	tenantRepo repository.TenantRepository
	txManager  repository.TransactionManager
	engine     *schedule.Engine
	clock      clock.Clock
	publisher  service.EventPublisher
	logger     *slog.Logger

	workers  int
	pageSize int
	timeout  time.Duration

	running atomic.Bool
}

// NewSweepService is the constructor for sweepService.
func NewSweepService(
	cfg *config.Config,
	tenantRepo repository.TenantRepository,
	txManager repository.TransactionManager,
	engine *schedule.Engine,
	clk clock.Clock,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.SweepUsecase {
	srv := &sweepService{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		engine:     engine,
		clock:      clk,
		publisher:  publisher,
		logger:     logger,
		workers:    defaultSweepWorkers,
		pageSize:   defaultSweepPageSize,
	}

	if cfg != nil && cfg.Sweep != nil {
		if cfg.Sweep.Workers > 0 {
			srv.workers = cfg.Sweep.Workers
		}
		if cfg.Sweep.PageSize > 0 {
			srv.pageSize = cfg.Sweep.PageSize
		}
		srv.timeout = cfg.Sweep.Timeout
	}

	return srv
}

type sweepOutcome struct {
	tenantID uuid.UUID
	cleared  int
	err      error
}

// SweepStaleClosures walks every tenant page by page and clears closures
// stamped before today. A tenant that fails is logged and skipped.
// Only one sweep runs at a time per process.
func (srv *sweepService) SweepStaleClosures(ctx context.Context) ([]uuid.UUID, error) {
	if !srv.running.CompareAndSwap(false, true) {
		return nil, errors.WithStack(domainerrors.ErrSweepInProgress)
	}
	defer srv.running.Store(false)

	if srv.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.timeout)
		defer cancel()
	}

	now := srv.clock.Now()
	started := time.Now()
	changed := []uuid.UUID{}
	scanned, failed := 0, 0

	after := uuid.Nil
	for {
		ids, err := srv.tenantRepo.ListClosedIDs(ctx, after, srv.pageSize)
		if err != nil {
			return changed, errors.Wrap(err, "failed to list tenants")
		}
		if len(ids) == 0 {
			break
		}

		for _, outcome := range srv.sweepPage(ctx, ids, now) {
			switch {
			case outcome.err != nil:
				failed++
				srv.logger.Error("Failed to sweep tenant closures",
					slog.String("tenantID", outcome.tenantID.String()),
					slog.Any("error", outcome.err),
				)
			case outcome.cleared > 0:
				changed = append(changed, outcome.tenantID)
			}
		}

		scanned += len(ids)
		after = ids[len(ids)-1]

		if len(ids) < srv.pageSize {
			break
		}
		if err := ctx.Err(); err != nil {
			return changed, errors.Wrap(err, "sweep interrupted")
		}
	}

	slices.SortFunc(changed, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})

	srv.logger.Info("Closure sweep completed",
		slog.Int("scanned", scanned),
		slog.Int("changed", len(changed)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(started)),
	)

	return changed, nil
}

// sweepPage resets the tenants of one page with a bounded worker pool.
func (srv *sweepService) sweepPage(ctx context.Context, ids []uuid.UUID, now time.Time) []sweepOutcome {
	workerCount := min(srv.workers, len(ids))
	idCh := make(chan uuid.UUID)
	outcomeCh := make(chan sweepOutcome, len(ids))

	var workerGroup sync.WaitGroup
	for range workerCount {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for id := range idCh {
				cleared, err := srv.sweepTenant(ctx, id, now)
				outcomeCh <- sweepOutcome{tenantID: id, cleared: cleared, err: err}
			}
		}()
	}

	go func() {
		defer close(idCh)
		for _, id := range ids {
			if ctx.Err() != nil {
				return
			}
			idCh <- id
		}
	}()

	workerGroup.Wait()
	close(outcomeCh)

	outcomes := make([]sweepOutcome, 0, len(ids))
	for outcome := range outcomeCh {
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// sweepTenant re-reads the tenant under a row lock and persists only when a
// closure was actually cleared.
func (srv *sweepService) sweepTenant(ctx context.Context, id uuid.UUID, now time.Time) (int, error) {
	ctx = deliverycontext.WithTenantID(ctx, id)
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	var (
		cleared   int
		subdomain string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		tenant, err := tenantRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to lock tenant")
		}
		subdomain = tenant.Subdomain

		updated, n := srv.engine.ResetOutdatedClosures(tenant.Schedule, now)
		cleared = n
		if cleared == 0 {
			return nil
		}

		return errors.Wrap(tenantRepo.UpdateSchedule(ctx, id, updated), "failed to save schedule")
	})
	if err != nil {
		return 0, err
	}

	if cleared > 0 {
		logger.Info("Cleared stale closures",
			slog.String("tenantID", id.String()),
			slog.Int("cleared", cleared),
		)

		if err := srv.publisher.PublishScheduleChanged(ctx, &service.ScheduleChangedEvent{
			EventID:    uuid.NewString(),
			TenantID:   id.String(),
			Subdomain:  subdomain,
			Reason:     service.ScheduleChangeClosureSwept,
			OccurredAt: now.UTC(),
		}); err != nil {
			logger.Warn("Failed to publish closure sweep",
				slog.String("tenantID", id.String()),
				slog.Any("error", err),
			)
		}
	}

	return cleared, nil
}
