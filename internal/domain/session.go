package domain

import "time"

// FocusSession represents one focus/detox interval. DurationMin is committed
// at creation and immutable afterward; ActualSeconds records the elapsed
// wall-clock time at finalization, clamped to the committed duration.
type FocusSession struct {
	ID            string
	StartTime     time.Time
	EndTime       *time.Time
	DurationMin   int
	ActualSeconds int
	StopReason    StopReason
	CreatedAt     time.Time
}

// Active reports whether the session has not been finalized yet.
func (s *FocusSession) Active() bool {
	return s.EndTime == nil
}

// TotalSeconds returns the committed duration in seconds.
func (s *FocusSession) TotalSeconds() int {
	return s.DurationMin * 60
}

// RemainingAt derives the remaining seconds at the given instant from the
// absolute start time and the committed duration, floored at zero. This is
// the authoritative recomputation; persisted checkpoints are cache only.
func (s *FocusSession) RemainingAt(now time.Time) int {
	elapsed := int(now.Sub(s.StartTime).Seconds())
	remaining := s.TotalSeconds() - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Finalize marks the session ended at the given instant with the given
// reason. The committed duration is untouched; actual elapsed time is
// recorded separately, clamped to [0, TotalSeconds].
func (s *FocusSession) Finalize(endTime time.Time, reason StopReason) {
	end := endTime
	s.EndTime = &end
	s.StopReason = reason

	actual := int(endTime.Sub(s.StartTime).Seconds())
	if actual < 0 {
		actual = 0
	}
	if actual > s.TotalSeconds() {
		actual = s.TotalSeconds()
	}
	s.ActualSeconds = actual
}
