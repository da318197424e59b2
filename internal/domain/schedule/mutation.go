package schedule

import (
	"log/slog"
	"time"

	"foodtruck/internal/domain/entity"
)

// SetTodayClosed sets or clears today's manual closure.
//
// Today is resolved in the schedule's primary zone. Closing stamps the UTC
// instant; reopening removes the stamp. When no entry exists for today the
// schedule is returned unchanged with changed=false.
func (e *Engine) SetTodayClosed(schedule entity.WeeklySchedule, isClosed bool, now time.Time) (entity.WeeklySchedule, bool) {
	local := now.In(e.Location(schedule.PrimaryTimezone))
	weekday := entity.WeekdayOf(local)

	updated := schedule.Clone()
	day := FindDay(updated.Days, weekday)
	if day == nil {
		e.logger.Warn("No schedule entry for today, closure toggle ignored",
			slog.String("weekday", weekday.String()),
			slog.String("timezone", local.Location().String()),
			slog.Bool("isClosed", isClosed),
		)

		return schedule, false
	}

	day.IsClosed = isClosed
	if isClosed {
		stamp := now.UTC()
		day.ClosureTimestamp = &stamp
	} else {
		day.ClosureTimestamp = nil
	}

	return updated, true
}

// ResetOutdatedClosures clears every closure stamped before the start of
// today in its entry's effective zone. It returns the number of entries
// cleared; zero means the returned schedule equals the input.
func (e *Engine) ResetOutdatedClosures(schedule entity.WeeklySchedule, now time.Time) (entity.WeeklySchedule, int) {
	updated := schedule.Clone()
	cleared := 0

	for i := range updated.Days {
		day := &updated.Days[i]
		if !day.IsClosed || day.ClosureTimestamp == nil {
			continue
		}

		loc := e.Location(day.Timezone, schedule.PrimaryTimezone)
		if !day.ClosureTimestamp.Before(StartOfDay(now.In(loc))) {
			continue
		}

		e.logger.Debug("Clearing stale closure",
			slog.String("day", day.Day.String()),
			slog.Time("closureTimestamp", *day.ClosureTimestamp),
			slog.String("timezone", loc.String()),
		)

		day.IsClosed = false
		day.ClosureTimestamp = nil
		cleared++
	}

	if cleared == 0 {
		return schedule, 0
	}

	return updated, cleared
}
