package schedule

import (
	"testing"
	"time"

	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetToday(t *testing.T) {
	loadLocation(t, "America/New_York")
	e := newTestEngine()

	days := []entity.ScheduleDay{
		{Day: entity.Monday, Location: "first monday"},
		{Day: entity.Tuesday, Location: "tuesday"},
		{Day: entity.Monday, Location: "second monday"},
	}

	// 02:00 UTC Tuesday is 22:00 Monday in New York.
	now := time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{name: "explicit zone", timezone: "America/New_York", want: "first monday"},
		{name: "empty zone uses now location", timezone: "", want: "tuesday"},
		{name: "unknown zone uses now location", timezone: "Nowhere/Special", want: "tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.GetToday(days, now, tt.timezone)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Location)
		})
	}
}

func TestGetToday_Missing(t *testing.T) {
	days := []entity.ScheduleDay{{Day: entity.Friday}}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Nil(t, newTestEngine().GetToday(days, now, ""))
	assert.Nil(t, newTestEngine().GetToday(nil, now, ""))
}

func TestGetToday_ReturnsPointerIntoSlice(t *testing.T) {
	days := []entity.ScheduleDay{{Day: entity.Monday}}
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	got := newTestEngine().GetToday(days, now, "")
	require.NotNil(t, got)
	got.Location = "changed"

	assert.Equal(t, "changed", days[0].Location)
}

func TestFindDay_NormalizesStoredNames(t *testing.T) {
	days := []entity.ScheduleDay{{Day: "monday", Location: "lower"}}

	got := FindDay(days, entity.Monday)

	require.NotNil(t, got)
	assert.Equal(t, "lower", got.Location)
	assert.Nil(t, FindDay(days, entity.Tuesday))
}

func TestToday_UsesEntryZone(t *testing.T) {
	loadLocation(t, "America/New_York")
	la := loadLocation(t, "America/Los_Angeles")
	e := newTestEngine()

	schedule := entity.WeeklySchedule{
		PrimaryTimezone: "America/New_York",
		Days:            []entity.ScheduleDay{{Day: entity.Monday, Timezone: "America/Los_Angeles"}},
	}
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	day, local := e.Today(schedule, now)

	require.NotNil(t, day)
	assert.Equal(t, la.String(), local.Location().String())
	assert.True(t, local.Equal(now))
}
