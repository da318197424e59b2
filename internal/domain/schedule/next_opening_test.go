package schedule

import (
	"testing"
	"time"

	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOpening(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	e := newTestEngine()
	todayStamp := monday(ny, 8, 0).UTC()

	closedMonday := weekSchedule()
	closedMonday.Days[0].IsClosed = true
	closedMonday.Days[0].ClosureTimestamp = &todayStamp

	tuesdayHeld := weekSchedule()
	tuesdayHeld.Days[1].IsClosed = true

	mondayOnly := weekSchedule()
	mondayOnly.Days = mondayOnly.Days[:1]

	tests := []struct {
		name     string
		schedule entity.WeeklySchedule
		now      time.Time
		want     time.Time
		wantOK   bool
	}{
		{name: "later today", schedule: weekSchedule(), now: monday(ny, 9, 0), want: monday(ny, 11, 0), wantOK: true},
		{name: "after closing", schedule: weekSchedule(), now: monday(ny, 15, 0), want: monday(ny, 11, 0).AddDate(0, 0, 1), wantOK: true},
		{name: "closed today", schedule: closedMonday, now: monday(ny, 9, 0), want: monday(ny, 11, 0).AddDate(0, 0, 1), wantOK: true},
		{name: "unstamped closure on a later day", schedule: tuesdayHeld, now: monday(ny, 15, 0), want: monday(ny, 11, 0).AddDate(0, 0, 7), wantOK: true},
		{name: "same weekday next week", schedule: mondayOnly, now: monday(ny, 15, 0), want: monday(ny, 11, 0).AddDate(0, 0, 7), wantOK: true},
		{name: "no days", schedule: entity.WeeklySchedule{}, now: monday(ny, 9, 0), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.NextOpening(tt.schedule, tt.now)

			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
				assert.True(t, e.IsOpenAt(tt.schedule, got), "not open at %s", got)
			}
		})
	}
}
