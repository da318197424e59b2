package schedule

import (
	"testing"

	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atPark(weekday entity.Weekday) entity.ScheduleDay {
	return entity.ScheduleDay{Day: weekday, Location: "Park", OpenTime: "11:00", CloseTime: "14:00"}
}

func TestGroupDays(t *testing.T) {
	tests := []struct {
		name   string
		days   []entity.ScheduleDay
		labels []string
	}{
		{
			name:   "empty week",
			days:   nil,
			labels: []string{},
		},
		{
			name: "whole week",
			days: []entity.ScheduleDay{
				atPark(entity.Sunday), atPark(entity.Monday), atPark(entity.Tuesday), atPark(entity.Wednesday),
				atPark(entity.Thursday), atPark(entity.Friday), atPark(entity.Saturday),
			},
			labels: []string{"Mon–Sun"},
		},
		{
			name: "weekend wraps into monday",
			days: []entity.ScheduleDay{
				atPark(entity.Monday), atPark(entity.Tuesday),
				{Day: entity.Wednesday, Location: "Harbor", OpenTime: "17:00", CloseTime: "21:00"},
				atPark(entity.Saturday), atPark(entity.Sunday),
			},
			labels: []string{"Wed", "Sat–Tue"},
		},
		{
			name:   "missing weekday breaks the run",
			days:   []entity.ScheduleDay{atPark(entity.Monday), atPark(entity.Wednesday)},
			labels: []string{"Mon", "Wed"},
		},
		{
			name: "closed flag splits the run",
			days: []entity.ScheduleDay{
				atPark(entity.Monday),
				func() entity.ScheduleDay { d := atPark(entity.Tuesday); d.IsClosed = true; return d }(),
				atPark(entity.Wednesday),
			},
			labels: []string{"Mon", "Tue", "Wed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := GroupDays(tt.days)

			labels := make([]string, 0, len(groups))
			for _, g := range groups {
				labels = append(labels, g.Label)
			}
			assert.Equal(t, tt.labels, labels)
		})
	}
}

func TestGroupDays_WrappedGroupDays(t *testing.T) {
	groups := GroupDays([]entity.ScheduleDay{
		atPark(entity.Monday),
		{Day: entity.Thursday, Location: "Harbor"},
		atPark(entity.Sunday),
	})

	require.Len(t, groups, 2)
	assert.Equal(t, []entity.Weekday{entity.Thursday}, groups[0].Days)
	assert.Equal(t, []entity.Weekday{entity.Sunday, entity.Monday}, groups[1].Days)
	assert.Equal(t, "Sun–Mon", groups[1].Label)
	assert.Equal(t, "11:00 AM - 2:00 PM", groups[1].Hours)
	assert.Equal(t, "Park", groups[1].Location)
}

func TestGroupDays_FirstEntryPerWeekdayWins(t *testing.T) {
	groups := GroupDays([]entity.ScheduleDay{
		atPark(entity.Monday),
		{Day: entity.Monday, Location: "Ignored"},
		atPark(entity.Tuesday),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "Mon–Tue", groups[0].Label)
	assert.Equal(t, "Park", groups[0].Location)
}
