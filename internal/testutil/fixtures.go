package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// FocusSession options
type SessionOption func(*domain.FocusSession)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.FocusSession) {
		s.StartTime = t
		s.CreatedAt = t
	}
}

func WithFinalized(endTime time.Time, reason domain.StopReason) SessionOption {
	return func(s *domain.FocusSession) {
		s.Finalize(endTime, reason)
	}
}

// NewTestSession creates an active focus session with the given committed
// duration in minutes, started now.
func NewTestSession(durationMin int, opts ...SessionOption) *domain.FocusSession {
	now := time.Now().UTC()
	s := &domain.FocusSession{
		ID:          uuid.New().String(),
		StartTime:   now,
		DurationMin: durationMin,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BlocklistEntry options
type BlocklistOption func(*domain.BlocklistEntry)

func WithBlockKind(k domain.BlockKind) BlocklistOption {
	return func(e *domain.BlocklistEntry) {
		e.Kind = k
	}
}

func NewTestBlocklistEntry(pattern string, opts ...BlocklistOption) *domain.BlocklistEntry {
	e := &domain.BlocklistEntry{
		ID:        uuid.New().String(),
		Kind:      domain.BlockApp,
		Pattern:   pattern,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FocusSchedule options
type ScheduleOption func(*domain.FocusSchedule)

func WithDays(days domain.Weekdays) ScheduleOption {
	return func(s *domain.FocusSchedule) {
		s.Days = days
	}
}

func WithDisabled() ScheduleOption {
	return func(s *domain.FocusSchedule) {
		s.Enabled = false
	}
}

// NewTestSchedule creates an enabled schedule starting at the given minute
// after midnight on every day of the week.
func NewTestSchedule(label string, startMinute, durationMin int, opts ...ScheduleOption) *domain.FocusSchedule {
	now := time.Now().UTC()
	s := &domain.FocusSchedule{
		ID:          uuid.New().String(),
		Label:       label,
		Days:        domain.WeekdaysAll,
		StartMinute: startMinute,
		DurationMin: durationMin,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
