package schedule

import (
	"time"

	"foodtruck/internal/domain/entity"
)

// PickupOptions is the set of pickup choices offered at a given instant.
type PickupOptions struct {
	// Slots are the future pickup times, ascending and SlotStep apart.
	Slots []time.Time `json:"slots"`

	// ASAPOnly is set near closing, when scheduled pickup is not offered.
	ASAPOnly bool `json:"asapOnly"`

	// Close is the effective closing instant used for the cutoff.
	Close time.Time `json:"close"`

	// LastOrderable is Close minus the pickup buffer.
	LastOrderable time.Time `json:"lastOrderable"`
}

// HasSlot reports whether t is exactly one of the offered slots.
func (p PickupOptions) HasSlot(t time.Time) bool {
	for _, slot := range p.Slots {
		if slot.Equal(t) {
			return true
		}
	}

	return false
}

// BuildPickupOptions lists pickup slots for day at now.
//
// Closing time comes from the day's window around now, or now plus the
// default window when the day has no usable hours. Slots start at now rounded
// up to the slot step plus prep time and stop at the last orderable instant.
func (e *Engine) BuildPickupOptions(day *entity.ScheduleDay, now time.Time) PickupOptions {
	closeAt := now.Add(e.opts.DefaultWindow)
	if w, ok := e.ResolveWindow(day, now); ok {
		closeAt = w.Close
	}

	lastOrderable := closeAt.Add(-e.opts.PickupBuffer)
	opts := PickupOptions{
		Slots:         []time.Time{},
		ASAPOnly:      e.asapOnly(closeAt.Sub(now)),
		Close:         closeAt,
		LastOrderable: lastOrderable,
	}

	if !now.Before(lastOrderable) {
		return opts
	}

	for slot := ceilTo(now, e.opts.SlotStep).Add(e.opts.PrepTime); !slot.After(lastOrderable); slot = slot.Add(e.opts.SlotStep) {
		if len(opts.Slots) == e.opts.MaxSlots {
			break
		}
		opts.Slots = append(opts.Slots, slot)
	}

	return opts
}

func (e *Engine) asapOnly(remaining time.Duration) bool {
	if remaining > e.opts.PickupBuffer {
		return false
	}

	if e.opts.ASAPLockFloor > 0 && remaining <= e.opts.ASAPLockFloor {
		return false
	}

	return true
}

// ceilTo rounds t up to the next multiple of step within t's location.
// Values already on a boundary are unchanged.
func ceilTo(t time.Time, step time.Duration) time.Time {
	_, offset := t.Zone()
	shift := time.Duration(offset) * time.Second

	rounded := t.Add(shift).Truncate(step).Add(-shift)
	if rounded.Before(t) {
		rounded = rounded.Add(step)
	}

	return rounded.In(t.Location())
}
