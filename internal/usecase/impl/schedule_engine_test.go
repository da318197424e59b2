package impl

import (
	"testing"
	"time"

	"foodtruck/config"
	"foodtruck/internal/domain/constants"
	"foodtruck/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduleEngine(t *testing.T) {
	t.Run("missing section keeps defaults", func(t *testing.T) {
		engine := NewScheduleEngine(&config.Config{}, newDiscardLogger())

		assert.Equal(t, schedule.DefaultOptions(), engine.Options())
	})

	t.Run("configured values override", func(t *testing.T) {
		cfg := &config.Config{Schedule: &config.ScheduleConfig{
			DefaultTimezone:      "UTC",
			PickupBufferMinutes:  20,
			SlotStepMinutes:      10,
			PrepMinutes:          5,
			MaxSlots:             12,
			DefaultWindowMinutes: 60,
			ASAPLockFloorMinutes: 5,
			ClosureCheckZone:     constants.ClosureCheckZoneEntry,
		}}

		opts := NewScheduleEngine(cfg, newDiscardLogger()).Options()

		assert.Equal(t, "UTC", opts.DefaultTimezone)
		assert.Equal(t, 20*time.Minute, opts.PickupBuffer)
		assert.Equal(t, 10*time.Minute, opts.SlotStep)
		assert.Equal(t, 5*time.Minute, opts.PrepTime)
		assert.Equal(t, 12, opts.MaxSlots)
		assert.Equal(t, time.Hour, opts.DefaultWindow)
		assert.Equal(t, 5*time.Minute, opts.ASAPLockFloor)
		assert.Equal(t, constants.ClosureCheckZoneEntry, opts.ClosureCheckZone)
	})
}
