package schedule

import (
	"sort"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// NextOccurrence returns the next instant at or after now when the schedule
// fires, evaluated in now's location. The second return is false when the
// schedule is disabled or has no weekdays set.
func NextOccurrence(s *domain.FocusSchedule, now time.Time) (time.Time, bool) {
	if !s.Enabled || s.Days == 0 {
		return time.Time{}, false
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Eight days covers the wrap past a same-day start minute already behind us.
	for offset := 0; offset <= 7; offset++ {
		day := midnight.AddDate(0, 0, offset)
		if !s.Days.Has(day.Weekday()) {
			continue
		}
		candidate := day.Add(time.Duration(s.StartMinute) * time.Minute)
		if !candidate.Before(now) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// Upcoming is a schedule paired with its next firing instant.
type Upcoming struct {
	Schedule *domain.FocusSchedule
	At       time.Time
}

// NextAcross returns the upcoming occurrence for every schedule that has
// one, earliest first. Disabled schedules are skipped.
func NextAcross(schedules []*domain.FocusSchedule, now time.Time) []Upcoming {
	var out []Upcoming
	for _, s := range schedules {
		at, ok := NextOccurrence(s, now)
		if !ok {
			continue
		}
		out = append(out, Upcoming{Schedule: s, At: at})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
