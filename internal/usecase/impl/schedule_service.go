// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"foodtruck/internal/domain/clock"
	"foodtruck/internal/domain/entity"
	domainerrors "foodtruck/internal/domain/errors"
	"foodtruck/internal/domain/repository"
	"foodtruck/internal/domain/schedule"
	"foodtruck/internal/domain/service"
	"foodtruck/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	tenantRepo repository.TenantRepository
	txManager  repository.TransactionManager
	engine     *schedule.Engine
	clock      clock.Clock
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(
	tenantRepo repository.TenantRepository,
	txManager repository.TransactionManager,
	engine *schedule.Engine,
	clk clock.Clock,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ScheduleUsecase {
	return &scheduleService{
		tenantRepo: tenantRepo,
		txManager:  txManager,
		engine:     engine,
		clock:      clk,
		publisher:  publisher,
		logger:     logger,
	}
}

// GetStatus reports whether the truck is open right now along with the week at a glance.
func (srv *scheduleService) GetStatus(ctx context.Context, subdomain string) (*usecase.StoreStatus, error) {
	tenant, err := srv.findBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	day, local := srv.engine.Today(tenant.Schedule, now)

	status := &usecase.StoreStatus{
		TenantID:     tenant.ID,
		BusinessName: tenant.BusinessName,
		Week:         schedule.GroupDays(tenant.Schedule.Days),
		IsOpen:       srv.engine.IsOpenAt(tenant.Schedule, now),
		CheckedAt:    local,
	}

	if day != nil {
		today := day.Clone()
		status.Today = &today
		status.ClosedToday = srv.engine.IsClosureActive(day, local)
		status.TodayHours = displayHours(day)
	}

	if !status.IsOpen {
		if next, ok := srv.engine.NextOpening(tenant.Schedule, now); ok {
			next = next.In(local.Location())
			status.NextOpening = &next
		}
	}

	return status, nil
}

// GetPickupOptions lists the pickup slots currently offered by an open truck.
func (srv *scheduleService) GetPickupOptions(ctx context.Context, subdomain string) (*schedule.PickupOptions, error) {
	tenant, err := srv.findBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	day, local, err := srv.openToday(tenant)
	if err != nil {
		return nil, err
	}

	opts := srv.engine.BuildPickupOptions(day, local)

	return &opts, nil
}

// ValidatePickup accepts an ASAP order while open, or a scheduled pickup
// that matches one of the offered slots.
func (srv *scheduleService) ValidatePickup(ctx context.Context, subdomain string, req *usecase.PickupRequest) (*usecase.PickupDecision, error) {
	tenant, err := srv.findBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	day, local, err := srv.openToday(tenant)
	if err != nil {
		return nil, err
	}

	if req.ASAP {
		return &usecase.PickupDecision{ASAP: true, PickupTime: local}, nil
	}

	if req.PickupTime == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("pickup time is required unless asap is set")
	}

	opts := srv.engine.BuildPickupOptions(day, local)
	if opts.ASAPOnly {
		return nil, errors.WithStack(domainerrors.ErrASAPOnly)
	}

	if !opts.HasSlot(*req.PickupTime) {
		return nil, domainerrors.ErrPickupTimeUnavailable.WrapMessage("pickup time is not an offered slot")
	}

	return &usecase.PickupDecision{PickupTime: req.PickupTime.In(local.Location())}, nil
}

// GetSchedule returns the merchant's stored schedule document.
func (srv *scheduleService) GetSchedule(ctx context.Context, tenantID uuid.UUID) (*entity.WeeklySchedule, error) {
	tenant, err := srv.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, mapTenantError(err, "failed to find tenant")
	}

	return &tenant.Schedule, nil
}

// UpdateSchedule replaces the schedule document. Findings that do not block
// saving, such as a weekday listed twice, are returned as warnings.
func (srv *scheduleService) UpdateSchedule(ctx context.Context, tenantID uuid.UUID, weekly entity.WeeklySchedule) (*usecase.ScheduleUpdateResult, error) {
	warnings := schedule.Warnings(weekly)
	for _, warning := range warnings {
		srv.logger.Warn("Schedule saved with warning",
			slog.String("tenantID", tenantID.String()),
			slog.String("warning", warning),
		)
	}

	var subdomain string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		tenant, err := tenantRepo.FindByIDForUpdate(ctx, tenantID)
		if err != nil {
			return mapTenantError(err, "failed to lock tenant")
		}
		subdomain = tenant.Subdomain

		if err := tenantRepo.UpdateSchedule(ctx, tenantID, weekly); err != nil {
			return mapTenantError(err, "failed to save schedule")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update schedule")
	}

	srv.publish(ctx, &service.ScheduleChangedEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID.String(),
		Subdomain:  subdomain,
		Reason:     service.ScheduleChangeScheduleUpdated,
		OccurredAt: srv.clock.Now().UTC(),
	})

	return &usecase.ScheduleUpdateResult{Schedule: weekly, Warnings: warnings}, nil
}

// SetTodayClosed toggles today's manual closure under a row lock so a
// concurrent sweep cannot overwrite it.
func (srv *scheduleService) SetTodayClosed(ctx context.Context, tenantID uuid.UUID, isClosed bool) (*entity.WeeklySchedule, error) {
	now := srv.clock.Now()

	var (
		updated   entity.WeeklySchedule
		subdomain string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.TenantRepo()

		tenant, err := tenantRepo.FindByIDForUpdate(ctx, tenantID)
		if err != nil {
			return mapTenantError(err, "failed to lock tenant")
		}
		subdomain = tenant.Subdomain

		var changed bool
		updated, changed = srv.engine.SetTodayClosed(tenant.Schedule, isClosed, now)
		if !changed {
			return errors.WithStack(domainerrors.ErrNoScheduleToday)
		}

		if err := tenantRepo.UpdateSchedule(ctx, tenantID, updated); err != nil {
			return mapTenantError(err, "failed to save schedule")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle closure")
	}

	srv.logger.Info("Closure toggled",
		slog.String("tenantID", tenantID.String()),
		slog.Bool("isClosed", isClosed),
	)

	srv.publish(ctx, &service.ScheduleChangedEvent{
		EventID:    uuid.NewString(),
		TenantID:   tenantID.String(),
		Subdomain:  subdomain,
		Reason:     service.ScheduleChangeClosureToggled,
		Weekday:    entity.WeekdayOf(now.In(srv.engine.Location(updated.PrimaryTimezone))).String(),
		IsClosed:   isClosed,
		OccurredAt: now.UTC(),
	})

	return &updated, nil
}

func (srv *scheduleService) findBySubdomain(ctx context.Context, subdomain string) (*entity.Tenant, error) {
	tenant, err := srv.tenantRepo.FindBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, mapTenantError(err, "failed to find tenant")
	}

	return tenant, nil
}

// openToday resolves the entry governing now, which is yesterday's while an
// overnight shift is still running, and fails when the truck is not open.
func (srv *scheduleService) openToday(tenant *entity.Tenant) (*entity.ScheduleDay, time.Time, error) {
	shift := srv.engine.CurrentShift(tenant.Schedule, srv.clock.Now())
	if !srv.engine.IsShiftOpen(shift) {
		return nil, shift.Now, errors.WithStack(domainerrors.ErrTruckClosed)
	}

	return shift.Day, shift.Now, nil
}

// publish announces a change. Delivery is best effort; the change is
// already committed.
func (srv *scheduleService) publish(ctx context.Context, event *service.ScheduleChangedEvent) {
	if err := srv.publisher.PublishScheduleChanged(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish schedule change",
			slog.String("tenantID", event.TenantID),
			slog.String("reason", string(event.Reason)),
			slog.Any("error", err),
		)
	}
}

// displayHours renders the hours shown for a day, preferring structured times.
func displayHours(day *entity.ScheduleDay) string {
	if formatted := schedule.FormatTimeRange(day.OpenTime, day.CloseTime); formatted != "" {
		return formatted
	}

	return day.Hours
}

// mapTenantError converts repository errors into application errors.
func mapTenantError(err error, message string) error {
	if errors.Is(err, repository.ErrTenantNotFound) {
		return errors.Wrap(domainerrors.ErrTenantNotFound, message)
	}

	return errors.Wrap(err, message)
}
