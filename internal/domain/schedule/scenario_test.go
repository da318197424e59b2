package schedule

import (
	"testing"
	"time"

	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_CloseForTheDayThenSweep(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	e := newTestEngine()
	tuesday := func(hh, mm int) time.Time { return monday(ny, hh, mm).AddDate(0, 0, 1) }

	schedule := weekSchedule()

	today, local := e.Today(schedule, monday(ny, 13, 59))
	require.NotNil(t, today)
	assert.True(t, e.IsOpen(today, local))

	today, local = e.Today(schedule, monday(ny, 14, 1))
	assert.False(t, e.IsOpen(today, local))

	schedule, changed := e.SetTodayClosed(schedule, true, monday(ny, 12, 0))
	require.True(t, changed)

	today, local = e.Today(schedule, monday(ny, 12, 30))
	assert.False(t, e.IsOpen(today, local))

	schedule, cleared := e.ResetOutdatedClosures(schedule, tuesday(0, 1))
	assert.Equal(t, 1, cleared)
	assert.False(t, FindDay(schedule.Days, entity.Monday).IsClosed)
	assert.Nil(t, FindDay(schedule.Days, entity.Monday).ClosureTimestamp)

	today, local = e.Today(schedule, tuesday(11, 30))
	require.NotNil(t, today)
	assert.Equal(t, entity.Tuesday, today.Day)
	assert.True(t, e.IsOpen(today, local))
}
