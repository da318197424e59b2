// Package entity contains the core business objects of the project.
package entity

import "time"

// Coordinates is a display-only map position.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ScheduleDay is one weekly recurring slot of a tenant's schedule.
type ScheduleDay struct {
	Day      Weekday `json:"day" validate:"required,weekday"`
	Location string  `json:"location,omitempty"`
	Address  string  `json:"address,omitempty"`

	// OpenTime and CloseTime are "HH:MM" 24h clock times and the source of
	// truth for hours. CloseTime before OpenTime spans midnight.
	OpenTime  string `json:"openTime,omitempty" validate:"omitempty,hhmm"`
	CloseTime string `json:"closeTime,omitempty" validate:"omitempty,hhmm"`

	// Hours is the legacy "H:MM AM - H:MM PM" text, read only when the
	// structured times are unusable.
	Hours string `json:"hours,omitempty"`

	// IsClosed is the manual "closed today" override. ClosureTimestamp records
	// when it was last set and drives its expiry.
	IsClosed         bool       `json:"isClosed"`
	ClosureTimestamp *time.Time `json:"closureTimestamp,omitempty"`

	// Timezone overrides the schedule's primary zone for this entry.
	Timezone string `json:"timezone,omitempty" validate:"omitempty,timezone"`

	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// WeeklySchedule is the schedule document stored on the tenant record.
// Days is unordered and may hold several entries for the same weekday.
type WeeklySchedule struct {
	Title           string        `json:"title,omitempty"`
	Description     string        `json:"description,omitempty"`
	PrimaryTimezone string        `json:"primaryTimezone,omitempty" validate:"omitempty,timezone"`
	Days            []ScheduleDay `json:"days" validate:"dive"`
}

// Clone returns a deep copy so mutation rules never alias the caller's document.
func (s WeeklySchedule) Clone() WeeklySchedule {
	cloned := s
	if s.Days == nil {
		return cloned
	}

	cloned.Days = make([]ScheduleDay, len(s.Days))
	for i, day := range s.Days {
		cloned.Days[i] = day.Clone()
	}

	return cloned
}

// Clone returns a deep copy of the day.
func (d ScheduleDay) Clone() ScheduleDay {
	cloned := d
	if d.ClosureTimestamp != nil {
		ts := *d.ClosureTimestamp
		cloned.ClosureTimestamp = &ts
	}
	if d.Coordinates != nil {
		coords := *d.Coordinates
		cloned.Coordinates = &coords
	}

	return cloned
}
