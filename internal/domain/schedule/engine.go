// Package schedule decides whether a food truck is open for orders.
//
// Every decision is a pure function of a schedule document and an explicit
// instant. Nothing here reads the wall clock or the process time zone, so the
// same Engine serves page renders, order validation and the sweep worker.
//
// Precedence, highest first:
//   - no entry for today: closed
//   - manual closure stamped today (or never stamped): closed
//   - structured openTime/closeTime
//   - legacy free-text hours
//   - otherwise closed
package schedule

import (
	"log/slog"
	"time"

	"foodtruck/internal/domain/constants"
	"foodtruck/internal/domain/entity"
)

// DefaultTimezone is used when neither the entry nor the schedule names a zone.
const DefaultTimezone = "America/New_York"

// Options tunes the pickup policy and zone fallbacks.
type Options struct {
	// DefaultTimezone is the last fallback when resolving a location.
	DefaultTimezone string

	// PickupBuffer is subtracted from closing time to get the last orderable slot.
	// It is also the near-closing window in which only ASAP orders are offered.
	PickupBuffer time.Duration

	// SlotStep is the spacing between pickup slots.
	SlotStep time.Duration

	// PrepTime is the minimum lead time before the first pickup slot.
	PrepTime time.Duration

	// MaxSlots caps the number of pickup slots offered.
	MaxSlots int

	// DefaultWindow is used as closing time when the day has no usable hours.
	DefaultWindow time.Duration

	// ASAPLockFloor disables the near-closing ASAP lock once fewer than this
	// many minutes remain. Zero leaves only the PickupBuffer threshold.
	ASAPLockFloor time.Duration

	// ClosureCheckZone selects where calendar dates are compared when the read
	// path decides whether a closure is stale. See constants.ClosureCheckZone*.
	ClosureCheckZone string
}

// DefaultOptions returns the production pickup policy.
func DefaultOptions() Options {
	return Options{
		DefaultTimezone:  DefaultTimezone,
		PickupBuffer:     30 * time.Minute,
		SlotStep:         5 * time.Minute,
		PrepTime:         15 * time.Minute,
		MaxSlots:         24,
		DefaultWindow:    120 * time.Minute,
		ClosureCheckZone: constants.ClosureCheckZoneClock,
	}
}

// Engine evaluates schedules. It is safe for concurrent use.
type Engine struct {
	opts       Options
	logger     *slog.Logger
	defaultLoc *time.Location
}

// NewEngine creates an Engine. Zero-valued options fall back to DefaultOptions.
func NewEngine(opts Options, logger *slog.Logger) *Engine {
	defaults := DefaultOptions()
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = defaults.DefaultTimezone
	}
	if opts.PickupBuffer <= 0 {
		opts.PickupBuffer = defaults.PickupBuffer
	}
	if opts.SlotStep <= 0 {
		opts.SlotStep = defaults.SlotStep
	}
	if opts.PrepTime <= 0 {
		opts.PrepTime = defaults.PrepTime
	}
	if opts.MaxSlots <= 0 {
		opts.MaxSlots = defaults.MaxSlots
	}
	if opts.DefaultWindow <= 0 {
		opts.DefaultWindow = defaults.DefaultWindow
	}
	if opts.ClosureCheckZone == "" {
		opts.ClosureCheckZone = defaults.ClosureCheckZone
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	defaultLoc, err := time.LoadLocation(opts.DefaultTimezone)
	if err != nil {
		logger.Warn("Unknown default timezone, using UTC",
			slog.String("timezone", opts.DefaultTimezone),
			slog.Any("error", err),
		)
		defaultLoc = time.UTC
	}

	return &Engine{
		opts:       opts,
		logger:     logger,
		defaultLoc: defaultLoc,
	}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Location resolves the first loadable zone name, else the default zone.
// Typical use is Location(day.Timezone, schedule.PrimaryTimezone).
func (e *Engine) Location(names ...string) *time.Location {
	for _, name := range names {
		if name == "" {
			continue
		}

		loc, err := time.LoadLocation(name)
		if err != nil {
			e.logger.Debug("Ignoring unknown timezone",
				slog.String("timezone", name),
				slog.Any("error", err),
			)

			continue
		}

		return loc
	}

	return e.defaultLoc
}

func (e *Engine) locationOr(name string, fallback *time.Location) *time.Location {
	if name == "" {
		return fallback
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		e.logger.Debug("Ignoring unknown timezone",
			slog.String("timezone", name),
			slog.Any("error", err),
		)

		return fallback
	}

	return loc
}

// Localize expresses now in the zone that governs day within schedule.
func (e *Engine) Localize(schedule entity.WeeklySchedule, day *entity.ScheduleDay, now time.Time) time.Time {
	if day == nil {
		return now.In(e.Location(schedule.PrimaryTimezone))
	}

	return now.In(e.Location(day.Timezone, schedule.PrimaryTimezone))
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
