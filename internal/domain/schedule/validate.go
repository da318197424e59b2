package schedule

import (
	"fmt"

	"foodtruck/internal/domain/entity"
)

// Warnings lists non-fatal problems with a schedule document. Duplicate
// weekdays are allowed but only the first entry is ever used.
func Warnings(schedule entity.WeeklySchedule) []string {
	warnings := []string{}
	seen := make(map[entity.Weekday]int, len(entity.Week))

	for i, day := range schedule.Days {
		weekday := normalizeWeekday(day.Day)
		if first, ok := seen[weekday]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"days[%d]: duplicate entry for %s, only days[%d] is used", i, weekday, first))
		} else {
			seen[weekday] = i
		}

		if (day.OpenTime == "") != (day.CloseTime == "") {
			warnings = append(warnings, fmt.Sprintf(
				"days[%d]: %s has only one of openTime/closeTime", i, weekday))
		}

		if day.OpenTime == "" && day.CloseTime == "" && day.Hours != "" {
			if _, _, err := ParseLegacyHours(day.Hours); err != nil {
				warnings = append(warnings, fmt.Sprintf(
					"days[%d]: %s hours %q cannot be read and is treated as closed", i, weekday, day.Hours))
			}
		}

		if day.ClosureTimestamp != nil && !day.IsClosed {
			warnings = append(warnings, fmt.Sprintf(
				"days[%d]: %s has closureTimestamp without isClosed", i, weekday))
		}
	}

	return warnings
}
