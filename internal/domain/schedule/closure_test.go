package schedule

import (
	"testing"
	"time"

	"foodtruck/internal/domain/constants"
	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func closedDay(open, closing string, stamp *time.Time) entity.ScheduleDay {
	day := hoursDay(entity.Monday, open, closing)
	day.IsClosed = true
	day.ClosureTimestamp = stamp

	return day
}

func TestIsOpen(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	e := newTestEngine()
	now := monday(ny, 12, 30)
	earlierToday := monday(ny, 9, 0).UTC()
	yesterday := monday(ny, 12, 0).AddDate(0, 0, -1).UTC()
	open := hoursDay(entity.Monday, "11:00", "14:00")

	tests := []struct {
		name string
		day  *entity.ScheduleDay
		want bool
	}{
		{name: "no entry", day: nil, want: false},
		{name: "within hours", day: &open, want: true},
		{name: "closure stamped today", day: ptr(closedDay("11:00", "14:00", &earlierToday)), want: false},
		{name: "stale closure falls through to hours", day: ptr(closedDay("11:00", "14:00", &yesterday)), want: true},
		{name: "stale closure outside hours", day: ptr(closedDay("15:00", "18:00", &yesterday)), want: false},
		{name: "closure without timestamp never expires", day: ptr(closedDay("11:00", "14:00", nil)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.IsOpen(tt.day, now)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, e.IsOpen(tt.day, now), "repeated evaluation must agree")
		})
	}
}

func TestIsOpen_ClosureWithoutTimestampDaysLater(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := closedDay("00:00", "23:59", nil)

	assert.False(t, newTestEngine().IsOpen(&day, monday(ny, 12, 0).AddDate(0, 0, 14)))
}

func TestIsOpen_DoesNotMutateDay(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	yesterday := monday(ny, 12, 0).AddDate(0, 0, -1).UTC()
	day := closedDay("11:00", "14:00", &yesterday)
	before := day.Clone()

	newTestEngine().IsOpen(&day, monday(ny, 12, 0))

	assert.Equal(t, before, day)
}

func TestIsClosureActive_ZonePolicy(t *testing.T) {
	loadLocation(t, "America/Los_Angeles")

	// 06:00 UTC on Mar 10 is still Mar 9 in Los Angeles.
	stamp := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	day := closedDay("00:00", "23:59", &stamp)
	day.Timezone = "America/Los_Angeles"

	clockZone := NewEngine(Options{ClosureCheckZone: constants.ClosureCheckZoneClock}, nil)
	entryZone := NewEngine(Options{ClosureCheckZone: constants.ClosureCheckZoneEntry}, nil)

	assert.True(t, clockZone.IsClosureActive(&day, now), "same UTC date is still active")
	assert.False(t, entryZone.IsClosureActive(&day, now), "earlier Los Angeles date is stale")
}

func TestIsClosureActive_FutureStampStaysActive(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	tomorrow := monday(ny, 9, 0).AddDate(0, 0, 1).UTC()
	day := closedDay("11:00", "14:00", &tomorrow)

	assert.True(t, newTestEngine().IsClosureActive(&day, monday(ny, 12, 0)))
}

func ptr[T any](v T) *T {
	return &v
}
