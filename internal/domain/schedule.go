package domain

import "time"

// FocusSchedule is a recurring focus window: on each enabled weekday a
// session of DurationMin minutes is meant to begin StartMinute minutes
// after local midnight. Delivery (reminders, auto-start) is a collaborator
// concern; this record only describes the recurrence.
type FocusSchedule struct {
	ID          string
	Label       string
	Days        Weekdays
	StartMinute int // minutes after midnight, [0, 1439]
	DurationMin int
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Weekdays is a bitmask of time.Weekday values (bit 0 = Sunday).
type Weekdays uint8

// WeekdaysAll has every day of the week set.
const WeekdaysAll Weekdays = 0x7f

// Has reports whether the given weekday is set.
func (d Weekdays) Has(day time.Weekday) bool {
	return d&(1<<uint(day)) != 0
}

// With returns the mask with the given weekday set.
func (d Weekdays) With(day time.Weekday) Weekdays {
	return d | (1 << uint(day))
}

// Count returns the number of days set.
func (d Weekdays) Count() int {
	n := 0
	for day := time.Sunday; day <= time.Saturday; day++ {
		if d.Has(day) {
			n++
		}
	}
	return n
}
