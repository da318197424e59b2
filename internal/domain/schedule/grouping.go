package schedule

import "foodtruck/internal/domain/entity"

// DayGroup is a run of consecutive weekdays that display identically.
type DayGroup struct {
	Days      []entity.Weekday `json:"days"`
	Label     string           `json:"label"`
	Location  string           `json:"location,omitempty"`
	Address   string           `json:"address,omitempty"`
	OpenTime  string           `json:"openTime,omitempty"`
	CloseTime string           `json:"closeTime,omitempty"`
	Hours     string           `json:"hours,omitempty"`
	IsClosed  bool             `json:"isClosed"`
}

// GroupDays folds the week into maximal runs of consecutive weekdays sharing
// location, address, open/close times and closed flag. Monday to Sunday is
// scanned in order and a run ending on Sunday joins one starting on Monday.
// Weekdays without an entry break runs; duplicate entries after the first
// are ignored.
func GroupDays(days []entity.ScheduleDay) []DayGroup {
	groups := []DayGroup{}
	inRun := false

	for _, weekday := range entity.Week {
		day := FindDay(days, weekday)
		if day == nil {
			inRun = false

			continue
		}

		if inRun && groups[len(groups)-1].sameDisplay(day) {
			groups[len(groups)-1].Days = append(groups[len(groups)-1].Days, weekday)

			continue
		}

		groups = append(groups, newDayGroup(weekday, day))
		inRun = true
	}

	if len(groups) > 1 {
		first, last := groups[0], groups[len(groups)-1]
		if first.Days[0] == entity.Monday && last.Days[len(last.Days)-1] == entity.Sunday && first.sameGroup(last) {
			last.Days = append(last.Days, first.Days...)
			groups = append(groups[1:len(groups)-1], last)
		}
	}

	for i := range groups {
		groups[i].Label = label(groups[i].Days)
	}

	return groups
}

func newDayGroup(weekday entity.Weekday, day *entity.ScheduleDay) DayGroup {
	return DayGroup{
		Days:      []entity.Weekday{weekday},
		Location:  day.Location,
		Address:   day.Address,
		OpenTime:  day.OpenTime,
		CloseTime: day.CloseTime,
		Hours:     FormatTimeRange(day.OpenTime, day.CloseTime),
		IsClosed:  day.IsClosed,
	}
}

func (g DayGroup) sameDisplay(day *entity.ScheduleDay) bool {
	return g.sameGroup(newDayGroup(day.Day, day))
}

func (g DayGroup) sameGroup(o DayGroup) bool {
	return g.Location == o.Location &&
		g.Address == o.Address &&
		g.OpenTime == o.OpenTime &&
		g.CloseTime == o.CloseTime &&
		g.IsClosed == o.IsClosed
}

func label(days []entity.Weekday) string {
	if len(days) == 1 {
		return days[0].Short()
	}

	return days[0].Short() + "–" + days[len(days)-1].Short()
}
