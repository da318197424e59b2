package schedule

import (
	"testing"
	"time"

	"foodtruck/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPickupOptions_SixtyMinutesToClose(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "11:00", "13:00")

	got := newTestEngine().BuildPickupOptions(&day, monday(ny, 12, 0))

	assert.False(t, got.ASAPOnly)
	assert.Equal(t, monday(ny, 13, 0), got.Close)
	assert.Equal(t, monday(ny, 12, 30), got.LastOrderable)
	assert.Equal(t, []time.Time{
		monday(ny, 12, 15),
		monday(ny, 12, 20),
		monday(ny, 12, 25),
		monday(ny, 12, 30),
	}, got.Slots)
}

func TestBuildPickupOptions_RoundsUpToStep(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "11:00", "13:00")
	now := monday(ny, 12, 2).Add(30 * time.Second)

	got := newTestEngine().BuildPickupOptions(&day, now)

	require.NotEmpty(t, got.Slots)
	assert.Equal(t, monday(ny, 12, 20), got.Slots[0])
	assert.Equal(t, monday(ny, 12, 30), got.Slots[len(got.Slots)-1])
}

func TestBuildPickupOptions_TwentyMinutesToClose(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "11:00", "13:00")

	got := newTestEngine().BuildPickupOptions(&day, monday(ny, 12, 40))

	assert.True(t, got.ASAPOnly)
	assert.Empty(t, got.Slots)
	assert.NotNil(t, got.Slots)
}

func TestBuildPickupOptions_ExactlyThirtyMinutesToClose(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "11:00", "13:00")

	got := newTestEngine().BuildPickupOptions(&day, monday(ny, 12, 30))

	assert.True(t, got.ASAPOnly)
	assert.Empty(t, got.Slots)
}

func TestBuildPickupOptions_DefaultWindowWithoutHours(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	now := monday(ny, 12, 0)

	for name, day := range map[string]*entity.ScheduleDay{
		"no entry":       nil,
		"no usable time": {Day: entity.Monday, Hours: "whenever"},
	} {
		t.Run(name, func(t *testing.T) {
			got := newTestEngine().BuildPickupOptions(day, now)

			assert.Equal(t, monday(ny, 14, 0), got.Close)
			assert.False(t, got.ASAPOnly)
			require.Len(t, got.Slots, 16)
			assert.Equal(t, monday(ny, 12, 15), got.Slots[0])
			assert.Equal(t, monday(ny, 13, 30), got.Slots[15])
		})
	}
}

func TestBuildPickupOptions_CapsSlots(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "08:00", "22:00")

	got := newTestEngine().BuildPickupOptions(&day, monday(ny, 9, 0))

	require.Len(t, got.Slots, 24)
	assert.Equal(t, monday(ny, 9, 15), got.Slots[0])
	assert.Equal(t, monday(ny, 11, 10), got.Slots[23])
}

func TestBuildPickupOptions_SlotInvariants(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "10:00", "15:00")
	e := newTestEngine()

	for minute := 0; minute < 5*60; minute += 7 {
		now := monday(ny, 10, 0).Add(time.Duration(minute) * time.Minute)
		got := e.BuildPickupOptions(&day, now)

		for i, slot := range got.Slots {
			assert.Zero(t, slot.Minute()%5, "slot %s not on a 5 minute boundary", slot)
			assert.False(t, slot.Before(now.Add(15*time.Minute)), "slot %s inside prep time", slot)
			assert.False(t, slot.After(got.LastOrderable), "slot %s after last orderable", slot)
			if i > 0 {
				assert.Equal(t, 5*time.Minute, slot.Sub(got.Slots[i-1]))
			}
		}
	}
}

func TestBuildPickupOptions_OvernightAfterMidnight(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "22:00", "02:00")
	tuesday := func(hh, mm int) time.Time { return monday(ny, hh, mm).AddDate(0, 0, 1) }

	got := newTestEngine().BuildPickupOptions(&day, tuesday(1, 0))

	assert.False(t, got.ASAPOnly)
	assert.Equal(t, tuesday(2, 0), got.Close)
	assert.Equal(t, []time.Time{tuesday(1, 15), tuesday(1, 20), tuesday(1, 25), tuesday(1, 30)}, got.Slots)
}

func TestBuildPickupOptions_ASAPLockFloor(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	day := hoursDay(entity.Monday, "11:00", "13:00")
	e := NewEngine(Options{ASAPLockFloor: 15 * time.Minute}, nil)

	assert.True(t, e.BuildPickupOptions(&day, monday(ny, 12, 40)).ASAPOnly, "20 minutes left")
	assert.False(t, e.BuildPickupOptions(&day, monday(ny, 12, 50)).ASAPOnly, "10 minutes left")
	assert.True(t, newTestEngine().BuildPickupOptions(&day, monday(ny, 12, 50)).ASAPOnly, "no floor configured")
}

func TestPickupOptions_HasSlot(t *testing.T) {
	ny := loadLocation(t, "America/New_York")
	opts := PickupOptions{Slots: []time.Time{monday(ny, 12, 15), monday(ny, 12, 20)}}

	assert.True(t, opts.HasSlot(monday(ny, 12, 20).UTC()))
	assert.False(t, opts.HasSlot(monday(ny, 12, 17)))
}
