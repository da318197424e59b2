package schedule

import (
	"log/slog"
	"time"

	"foodtruck/internal/domain/entity"
)

// Window is a concrete open interval. Both ends are inclusive.
type Window struct {
	Open  time.Time
	Close time.Time
}

// Contains reports whether t lies within the window, boundaries included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Open) && !t.After(w.Close)
}

// Hours returns the usable open/close clock times of day. Structured times
// win; a malformed structured pair falls through to the legacy hours text.
func (e *Engine) Hours(day *entity.ScheduleDay) (ClockTime, ClockTime, bool) {
	if day == nil {
		return ClockTime{}, ClockTime{}, false
	}

	if day.OpenTime != "" && day.CloseTime != "" {
		open, closing, err := ParseStructuredHours(day.OpenTime, day.CloseTime)
		if err == nil {
			return open, closing, true
		}

		e.logger.Debug("Malformed structured hours, trying legacy hours",
			slog.String("day", day.Day.String()),
			slog.String("openTime", day.OpenTime),
			slog.String("closeTime", day.CloseTime),
			slog.Any("error", err),
		)
	}

	if day.Hours != "" {
		open, closing, err := ParseLegacyHours(day.Hours)
		if err == nil {
			return open, closing, true
		}

		e.logger.Debug("Malformed legacy hours",
			slog.String("day", day.Day.String()),
			slog.String("hours", day.Hours),
			slog.Any("error", err),
		)
	}

	return ClockTime{}, ClockTime{}, false
}

// ResolveWindow anchors the day's hours around now, in now's location.
//
// For an overnight window (close before open) the window that began
// yesterday is returned while it is still running, so 22:00-02:00 covers
// 01:30. Otherwise the window opening on now's date is returned.
func (e *Engine) ResolveWindow(day *entity.ScheduleDay, now time.Time) (Window, bool) {
	open, closing, ok := e.Hours(day)
	if !ok {
		return Window{}, false
	}

	w := Window{Open: open.On(now), Close: closing.On(now)}
	if !closing.Before(open) {
		return w, true
	}

	yesterday := now.AddDate(0, 0, -1)
	running := Window{Open: open.On(yesterday), Close: closing.On(now)}
	if running.Contains(now) {
		return running, true
	}

	w.Close = closing.On(now.AddDate(0, 0, 1))

	return w, true
}

// IsWithinHours reports whether now falls inside the day's hours.
// Unusable hours are treated as closed.
func (e *Engine) IsWithinHours(day *entity.ScheduleDay, now time.Time) bool {
	w, ok := e.ResolveWindow(day, now)

	return ok && w.Contains(now)
}
