package schedule

import (
	"time"

	"foodtruck/internal/domain/entity"
)

// NextOpening returns the next opening instant after now within the coming
// week. An entry is skipped when its manual closure is still active at the
// candidate opening, so an unstamped closure blocks every week.
func (e *Engine) NextOpening(schedule entity.WeeklySchedule, now time.Time) (time.Time, bool) {
	local := now.In(e.Location(schedule.PrimaryTimezone))

	for offset := 0; offset <= len(entity.Week); offset++ {
		date := local.AddDate(0, 0, offset)
		day := FindDay(schedule.Days, entity.WeekdayOf(date))
		if day == nil {
			continue
		}

		open, _, ok := e.Hours(day)
		if !ok {
			continue
		}

		y, m, d := date.Date()
		at := open.On(time.Date(y, m, d, 0, 0, 0, 0, e.Location(day.Timezone, schedule.PrimaryTimezone)))
		if !at.After(now) || e.IsClosureActive(day, at) {
			continue
		}

		return at, true
	}

	return time.Time{}, false
}
