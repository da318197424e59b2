package schedule

import (
	"time"

	"foodtruck/internal/domain/constants"
	"foodtruck/internal/domain/entity"
)

// IsOpen applies the full precedence: a missing entry is closed, an active
// manual closure is closed, otherwise the day's hours decide.
func (e *Engine) IsOpen(day *entity.ScheduleDay, now time.Time) bool {
	if day == nil {
		return false
	}

	if e.IsClosureActive(day, now) {
		return false
	}

	return e.IsWithinHours(day, now)
}

// IsClosureActive reports whether the day's manual closure still applies.
// A closure without a timestamp never expires on the read path; one stamped
// on an earlier calendar date than now is stale and ignored.
func (e *Engine) IsClosureActive(day *entity.ScheduleDay, now time.Time) bool {
	if day == nil || !day.IsClosed {
		return false
	}

	if day.ClosureTimestamp == nil {
		return true
	}

	return !e.isClosureStale(day, now)
}

func (e *Engine) isClosureStale(day *entity.ScheduleDay, now time.Time) bool {
	loc := now.Location()
	if e.opts.ClosureCheckZone == constants.ClosureCheckZoneEntry {
		// The schedule's primary zone is not visible here; callers express now
		// in it, so now's location stands in as the fallback.
		loc = e.locationOr(day.Timezone, loc)
	}

	closedOn := StartOfDay(day.ClosureTimestamp.In(loc))
	today := StartOfDay(now.In(loc))

	return closedOn.Before(today)
}
