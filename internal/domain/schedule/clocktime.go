package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"foodtruck/internal/errors"
)

var (
	// ErrMalformedClockTime is returned for anything that is not a valid "HH:MM".
	ErrMalformedClockTime = errors.New("malformed clock time")

	// ErrMalformedHours is returned for legacy hours text that cannot be parsed.
	ErrMalformedHours = errors.New("malformed legacy hours")
)

var (
	clockTimePattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	legacyHoursPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s+(AM|PM)\s+-\s+(\d+):(\d+)\s+(AM|PM)`)
)

// ClockTime is a wall-clock time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a 24h "HH:MM" value.
func ParseClockTime(s string) (ClockTime, error) {
	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, errors.Wrapf(ErrMalformedClockTime, "%q", s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return newClockTime(s, hour, minute)
}

// IsClockTime reports whether s is a valid "HH:MM" value.
func IsClockTime(s string) bool {
	_, err := ParseClockTime(s)

	return err == nil
}

func newClockTime(raw string, hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, errors.Wrapf(ErrMalformedClockTime, "%q out of range", raw)
	}

	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

// Before reports whether c is earlier in the day than o.
func (c ClockTime) Before(o ClockTime) bool {
	return c.Minutes() < o.Minutes()
}

// On anchors c to the calendar date of t in t's location.
func (c ClockTime) On(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, t.Location())
}

// String formats c as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Format12 formats c as "h:mm AM".
func (c ClockTime) Format12() string {
	period := "AM"
	if c.Hour >= 12 {
		period = "PM"
	}

	hour := c.Hour % 12
	if hour == 0 {
		hour = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour, c.Minute, period)
}

// ParseStructuredHours parses an openTime/closeTime pair.
func ParseStructuredHours(openTime, closeTime string) (ClockTime, ClockTime, error) {
	open, err := ParseClockTime(openTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, errors.Wrap(err, "openTime")
	}

	closing, err := ParseClockTime(closeTime)
	if err != nil {
		return ClockTime{}, ClockTime{}, errors.Wrap(err, "closeTime")
	}

	return open, closing, nil
}

// ParseLegacyHours parses "H:MM AM - H:MM PM" text. The pattern may appear
// anywhere in the string and the period is case-insensitive.
func ParseLegacyHours(hours string) (ClockTime, ClockTime, error) {
	m := legacyHoursPattern.FindStringSubmatch(hours)
	if m == nil {
		return ClockTime{}, ClockTime{}, errors.Wrapf(ErrMalformedHours, "%q", hours)
	}

	open, err := legacyClockTime(hours, m[1], m[2], m[3])
	if err != nil {
		return ClockTime{}, ClockTime{}, err
	}

	closing, err := legacyClockTime(hours, m[4], m[5], m[6])
	if err != nil {
		return ClockTime{}, ClockTime{}, err
	}

	return open, closing, nil
}

func legacyClockTime(raw, hourText, minuteText, period string) (ClockTime, error) {
	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return ClockTime{}, errors.Wrapf(ErrMalformedHours, "%q", raw)
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return ClockTime{}, errors.Wrapf(ErrMalformedHours, "%q", raw)
	}

	if hour < 1 || hour > 12 {
		return ClockTime{}, errors.Wrapf(ErrMalformedHours, "%q hour out of range", raw)
	}

	// 12 AM is midnight, 12 PM is noon.
	hour %= 12
	if strings.EqualFold(period, "PM") {
		hour += 12
	}

	ct, err := newClockTime(raw, hour, minute)
	if err != nil {
		return ClockTime{}, errors.Wrapf(ErrMalformedHours, "%q", raw)
	}

	return ct, nil
}

// FormatTimeRange renders "HH:MM" open and close times as "h:mm AM - h:mm PM".
// Either value being malformed yields an empty string.
func FormatTimeRange(openTime, closeTime string) string {
	open, closing, err := ParseStructuredHours(openTime, closeTime)
	if err != nil {
		return ""
	}

	return open.Format12() + " - " + closing.Format12()
}
