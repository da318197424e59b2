package schedule

import (
	"time"

	"foodtruck/internal/domain/entity"
)

// GetToday returns the first entry whose weekday matches now as seen in
// timezone. An empty or unknown timezone uses now's own location.
func (e *Engine) GetToday(days []entity.ScheduleDay, now time.Time, timezone string) *entity.ScheduleDay {
	local := now.In(e.locationOr(timezone, now.Location()))

	return FindDay(days, entity.WeekdayOf(local))
}

// Today resolves today's entry in the schedule's primary zone and returns now
// expressed in the zone that governs that entry.
func (e *Engine) Today(schedule entity.WeeklySchedule, now time.Time) (*entity.ScheduleDay, time.Time) {
	local := now.In(e.Location(schedule.PrimaryTimezone))
	day := FindDay(schedule.Days, entity.WeekdayOf(local))
	if day == nil {
		return nil, local
	}

	return day, e.Localize(schedule, day, now)
}

// FindDay returns a pointer to the first entry for weekday, or nil.
// Stored names are compared case-insensitively.
func FindDay(days []entity.ScheduleDay, weekday entity.Weekday) *entity.ScheduleDay {
	for i := range days {
		if normalizeWeekday(days[i].Day) == weekday {
			return &days[i]
		}
	}

	return nil
}

func normalizeWeekday(d entity.Weekday) entity.Weekday {
	if d.IsValid() {
		return d
	}

	if parsed, ok := entity.ParseWeekday(string(d)); ok {
		return parsed
	}

	return d
}
