package service

import (
	"context"
	"testing"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func seedFinished(t *testing.T, repo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
}, started time.Time, durationMin, actualSeconds int, reason domain.StopReason) {
	t.Helper()
	s := testutil.NewTestSession(durationMin,
		testutil.WithStartedAt(started),
		testutil.WithFinalized(started.Add(time.Duration(actualSeconds)*time.Second), reason),
	)
	require.NoError(t, repo.Create(context.Background(), s))
}

func TestStatsSummary_Rollups(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewStatsService(sessions)
	ctx := context.Background()

	day := func(offset int, hour int) time.Time {
		return time.Date(2026, 3, 10+offset, hour, 0, 0, 0, time.UTC)
	}

	// Today: one full 25m session, one stopped after 10m.
	seedFinished(t, sessions, day(0, 9), 25, 1500, domain.StopExpired)
	seedFinished(t, sessions, day(0, 14), 25, 600, domain.StopExplicit)
	// Yesterday and the day before: full sessions (streak material).
	seedFinished(t, sessions, day(-1, 9), 50, 3000, domain.StopExpired)
	seedFinished(t, sessions, day(-2, 9), 25, 1500, domain.StopExpired)
	// Three days ago: only an abandoned session, breaks the streak.
	seedFinished(t, sessions, day(-3, 9), 25, 300, domain.StopExplicit)
	// Nine days ago: outside the 7-day window, counts all-time only.
	seedFinished(t, sessions, day(-9, 9), 25, 1500, domain.StopExpired)
	// An in-flight session never counts.
	require.NoError(t, sessions.Create(ctx,
		testutil.NewTestSession(25, testutil.WithStartedAt(day(0, 17)))))

	summary, err := svc.Summary(ctx, statsNow)
	require.NoError(t, err)

	assert.Equal(t, PeriodStats{Sessions: 2, Completed: 1, FocusSeconds: 2100}, summary.Today)
	assert.Equal(t, PeriodStats{Sessions: 5, Completed: 3, FocusSeconds: 6900}, summary.Last7Days)
	assert.Equal(t, PeriodStats{Sessions: 6, Completed: 4, FocusSeconds: 8400}, summary.AllTime)
	assert.Equal(t, 3, summary.StreakDays)
	assert.InDelta(t, 0.5, summary.Today.CompletionRate(), 1e-9)
}

func TestStatsSummary_StreakSurvivesQuietToday(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewStatsService(sessions)
	ctx := context.Background()

	// Completions yesterday and the day before, nothing yet today.
	for offset := 1; offset <= 2; offset++ {
		started := statsNow.AddDate(0, 0, -offset)
		seedFinished(t, sessions, started, 25, 1500, domain.StopExpired)
	}

	summary, err := svc.Summary(ctx, statsNow)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.StreakDays, "a quiet today does not break yesterday's streak")
	assert.Equal(t, PeriodStats{}, summary.Today)
}

func TestStatsSummary_Empty(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewStatsService(sessions)

	summary, err := svc.Summary(context.Background(), statsNow)
	require.NoError(t, err)
	assert.Equal(t, &StatsSummary{}, summary)
	assert.Zero(t, summary.AllTime.CompletionRate())
}

func TestStatsListDaily(t *testing.T) {
	sessions, _, _ := setupRepos(t)
	svc := NewStatsService(sessions)
	ctx := context.Background()

	day := func(offset int) time.Time {
		return time.Date(2026, 3, 10+offset, 9, 0, 0, 0, time.UTC)
	}
	seedFinished(t, sessions, day(0), 25, 1500, domain.StopExpired)
	seedFinished(t, sessions, day(0).Add(3*time.Hour), 25, 900, domain.StopExplicit)
	seedFinished(t, sessions, day(-2), 50, 3000, domain.StopExpired)
	// Outside the requested window.
	seedFinished(t, sessions, day(-8), 25, 1500, domain.StopExpired)

	daily, err := svc.ListDaily(ctx, statsNow, 7)
	require.NoError(t, err)
	require.Len(t, daily, 2, "empty days are omitted")

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), daily[0].Date)
	assert.Equal(t, 1, daily[0].Sessions)
	assert.Equal(t, 3000, daily[0].FocusSeconds)

	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), daily[1].Date)
	assert.Equal(t, 2, daily[1].Sessions)
	assert.Equal(t, 2400, daily[1].FocusSeconds)
}

func TestPeriodStats_Derived(t *testing.T) {
	p := PeriodStats{Sessions: 4, Completed: 3, FocusSeconds: 6000}
	assert.InDelta(t, 0.75, p.CompletionRate(), 1e-9)
	assert.Equal(t, 1500, p.AvgFocusSeconds())

	var empty PeriodStats
	assert.Zero(t, empty.CompletionRate())
	assert.Zero(t, empty.AvgFocusSeconds())
}
