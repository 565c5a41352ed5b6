package schedule

import (
	"testing"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-10 is a Tuesday.
var tuesdayNoon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func sched(days domain.Weekdays, startMinute int) *domain.FocusSchedule {
	return &domain.FocusSchedule{
		Label:       "test",
		Days:        days,
		StartMinute: startMinute,
		DurationMin: 25,
		Enabled:     true,
	}
}

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		name  string
		sched *domain.FocusSchedule
		now   time.Time
		want  time.Time
		ok    bool
	}{
		{
			name:  "later today",
			sched: sched(domain.Weekdays(0).With(time.Tuesday), 14*60),
			now:   tuesdayNoon,
			want:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "exactly now",
			sched: sched(domain.Weekdays(0).With(time.Tuesday), 12*60),
			now:   tuesdayNoon,
			want:  tuesdayNoon,
			ok:    true,
		},
		{
			name:  "missed today rolls to next week",
			sched: sched(domain.Weekdays(0).With(time.Tuesday), 9*60),
			now:   tuesdayNoon,
			want:  time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "next enabled weekday",
			sched: sched(domain.Weekdays(0).With(time.Monday).With(time.Friday), 8*60),
			now:   tuesdayNoon,
			want:  time.Date(2026, 3, 13, 8, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "every day at midnight",
			sched: sched(domain.WeekdaysAll, 0),
			now:   tuesdayNoon,
			want:  time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "no days set",
			sched: sched(0, 9*60),
			now:   tuesdayNoon,
			ok:    false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NextOccurrence(tc.sched, tc.now)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNextOccurrence_DisabledSchedule(t *testing.T) {
	s := sched(domain.WeekdaysAll, 9*60)
	s.Enabled = false

	_, ok := NextOccurrence(s, tuesdayNoon)
	assert.False(t, ok)
}

func TestNextAcross_SortedByFiringTime(t *testing.T) {
	evening := sched(domain.Weekdays(0).With(time.Tuesday), 20*60)
	evening.Label = "evening"
	afternoon := sched(domain.Weekdays(0).With(time.Tuesday), 14*60)
	afternoon.Label = "afternoon"
	disabled := sched(domain.WeekdaysAll, 13*60)
	disabled.Enabled = false

	upcoming := NextAcross([]*domain.FocusSchedule{evening, afternoon, disabled}, tuesdayNoon)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "afternoon", upcoming[0].Schedule.Label)
	assert.Equal(t, "evening", upcoming[1].Schedule.Label)
}
