// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Weekday is the canonical English weekday name used as the schedule lookup key.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Week lists the weekdays in display order, Monday first.
var Week = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByKey = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// WeekdayOf returns the canonical weekday name of t in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return FromTimeWeekday(t.Weekday())
}

// FromTimeWeekday converts a time.Weekday to its canonical name.
func FromTimeWeekday(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}

	return Week[int(d)-1]
}

// ParseWeekday normalizes casing and surrounding whitespace.
// It returns false for anything that is not one of the seven names.
func ParseWeekday(s string) (Weekday, bool) {
	day, ok := weekdayByKey[strings.ToLower(strings.TrimSpace(s))]

	return day, ok
}

// String returns the string representation of the Weekday.
func (d Weekday) String() string {
	return string(d)
}

// IsValid reports whether d is one of the canonical names.
func (d Weekday) IsValid() bool {
	return d.Index() >= 0
}

// Index returns the Monday-based position of d, or -1.
func (d Weekday) Index() int {
	for i, w := range Week {
		if w == d {
			return i
		}
	}

	return -1
}

// Short returns the three-letter label, e.g. "Mon".
func (d Weekday) Short() string {
	if !d.IsValid() {
		return string(d)
	}

	return string(d)[:3]
}

// Next returns the following weekday, wrapping Sunday to Monday.
func (d Weekday) Next() Weekday {
	i := d.Index()
	if i < 0 {
		return d
	}

	return Week[(i+1)%len(Week)]
}
