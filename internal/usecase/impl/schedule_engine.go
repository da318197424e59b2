package impl

import (
	"log/slog"
	"time"

	"foodtruck/config"
	"foodtruck/internal/domain/schedule"
)

// NewScheduleEngine builds the engine shared by every use case from the
// schedule section. Zero values keep the engine defaults.
func NewScheduleEngine(cfg *config.Config, logger *slog.Logger) *schedule.Engine {
	opts := schedule.DefaultOptions()

	if sc := cfg.Schedule; sc != nil {
		if sc.DefaultTimezone != "" {
			opts.DefaultTimezone = sc.DefaultTimezone
		}
		if sc.PickupBufferMinutes > 0 {
			opts.PickupBuffer = minutes(sc.PickupBufferMinutes)
		}
		if sc.SlotStepMinutes > 0 {
			opts.SlotStep = minutes(sc.SlotStepMinutes)
		}
		if sc.PrepMinutes > 0 {
			opts.PrepTime = minutes(sc.PrepMinutes)
		}
		if sc.MaxSlots > 0 {
			opts.MaxSlots = sc.MaxSlots
		}
		if sc.DefaultWindowMinutes > 0 {
			opts.DefaultWindow = minutes(sc.DefaultWindowMinutes)
		}
		if sc.ASAPLockFloorMinutes > 0 {
			opts.ASAPLockFloor = minutes(sc.ASAPLockFloorMinutes)
		}
		if sc.ClosureCheckZone != "" {
			opts.ClosureCheckZone = sc.ClosureCheckZone
		}
	}

	logger.Info("Schedule engine configured",
		slog.String("default_timezone", opts.DefaultTimezone),
		slog.Duration("pickup_buffer", opts.PickupBuffer),
		slog.Duration("asap_lock_floor", opts.ASAPLockFloor),
		slog.String("closure_check_zone", opts.ClosureCheckZone),
	)

	return schedule.NewEngine(opts, logger)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
