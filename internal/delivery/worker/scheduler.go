package worker

import (
	"context"
	"log/slog"
	"time"

	"foodtruck/config"
	deliverycontext "foodtruck/internal/delivery/context"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/lifecycle"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// Scheduler runs the stale-closure sweep on a cron schedule inside the worker.
// Runs never overlap: a tick that fires while the previous run is still going
// is skipped.
type Scheduler struct {
	cron    *cron.Cron
	sweepUC usecase.SweepUsecase
	logger  *slog.Logger
	entryID cron.EntryID
}

// SchedulerParams holds dependencies for the Scheduler
type SchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	SweepUC usecase.SweepUsecase
}

// NewScheduler registers the sweep job. It returns a nil Scheduler when the
// sweep is disabled, leaving push triggers as the only way to run it.
func NewScheduler(params SchedulerParams) (*Scheduler, error) {
	cfg := params.Cfg.Sweep
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Scheduled closure sweep disabled")

		return nil, nil
	}

	cronLogger := &cronSlogLogger{logger: params.Logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		sweepUC: params.SweepUC,
		logger:  params.Logger,
	}

	entryID, err := s.cron.AddFunc(cfg.Cron, s.runSweep)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sweep cron expression %q", cfg.Cron)
	}
	s.entryID = entryID

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.cron.Start()
			s.logger.Info("Scheduled closure sweep started",
				slog.String("cron", cfg.Cron),
				slog.Time("next_run", s.cron.Entry(s.entryID).Next),
			)

			return nil
		},
		OnStop: s.stop,
	})

	return s, nil
}

func (s *Scheduler) runSweep() {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("trigger", "cron"))

	ctx := deliverycontext.WithRequestID(context.Background(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	changed, err := s.sweepUC.SweepStaleClosures(ctx)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSweepInProgress) {
			logger.Info("Skipping scheduled sweep, another run is in progress")

			return
		}
		logger.Error("Scheduled sweep failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled sweep finished", slog.Int("tenants_reset", len(changed)))
}

// stop waits for a running sweep to finish, bounded by the shutdown timeout.
func (s *Scheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping scheduled closure sweep")

	done := s.cron.Stop()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "sweep still running at shutdown")
	}
}

// cronSlogLogger adapts slog to cron.Logger.
type cronSlogLogger struct {
	logger *slog.Logger
}

func (l *cronSlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Cron] "+msg, keysAndValues...)
}

func (l *cronSlogLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Cron] "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
