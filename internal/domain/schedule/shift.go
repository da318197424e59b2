package schedule

import (
	"time"

	"foodtruck/internal/domain/entity"
)

// Shift is the schedule entry that governs an instant, with that instant
// expressed in the entry's zone.
type Shift struct {
	Day    *entity.ScheduleDay
	Now    time.Time
	Window Window

	// HasWindow is false when the entry has no usable hours.
	HasWindow bool

	// Overnight marks a shift that opened on the previous calendar day.
	Overnight bool
}

// IsShiftOpen applies the closure precedence to the governing entry and checks
// now against the shift's own window.
func (e *Engine) IsShiftOpen(s Shift) bool {
	if s.Day == nil || !s.HasWindow {
		return false
	}

	if e.IsClosureActive(s.Day, s.Now) {
		return false
	}

	return s.Window.Contains(s.Now)
}

// CurrentShift returns the entry whose hours govern now. Yesterday's entry
// governs while its overnight window is still running; otherwise today's
// entry does, and only for the window that opens today.
func (e *Engine) CurrentShift(schedule entity.WeeklySchedule, now time.Time) Shift {
	if tail, ok := e.overnightTail(schedule, now); ok {
		return tail
	}

	day, local := e.Today(schedule, now)
	s := Shift{Day: day, Now: local}
	if day != nil {
		s.Window, s.HasWindow = e.windowOpeningOn(day, local)
	}

	return s
}

// IsOpenAt is the schedule-level open decision used for status and orders.
func (e *Engine) IsOpenAt(schedule entity.WeeklySchedule, now time.Time) bool {
	return e.IsShiftOpen(e.CurrentShift(schedule, now))
}

func (e *Engine) overnightTail(schedule entity.WeeklySchedule, now time.Time) (Shift, bool) {
	local := now.In(e.Location(schedule.PrimaryTimezone))
	prev := FindDay(schedule.Days, entity.WeekdayOf(local.AddDate(0, 0, -1)))
	if prev == nil {
		return Shift{}, false
	}

	at := e.Localize(schedule, prev, now)
	w, ok := e.windowOpeningOn(prev, at.AddDate(0, 0, -1))
	if !ok || !w.Contains(at) {
		return Shift{}, false
	}

	s := Shift{Day: prev, Now: at, Window: w, HasWindow: true, Overnight: true}
	if !e.IsShiftOpen(s) {
		return Shift{}, false
	}

	return s, true
}

// windowOpeningOn anchors the day's hours to the window opening on t's date.
// An overnight window closes on the following date.
func (e *Engine) windowOpeningOn(day *entity.ScheduleDay, t time.Time) (Window, bool) {
	open, closing, ok := e.Hours(day)
	if !ok {
		return Window{}, false
	}

	w := Window{Open: open.On(t), Close: closing.On(t)}
	if closing.Before(open) {
		w.Close = closing.On(t.AddDate(0, 0, 1))
	}

	return w, true
}
