package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
)

type statsService struct {
	sessions repository.SessionRepo
}

func NewStatsService(sessions repository.SessionRepo) StatsService {
	return &statsService{sessions: sessions}
}

// Summary aggregates finished sessions into today / last-7-days / all-time
// rollups plus the current daily streak. An in-flight session is excluded
// until it finalizes.
func (s *statsService) Summary(ctx context.Context, now time.Time) (*StatsSummary, error) {
	now = now.UTC()
	all, err := s.sessions.ListRange(ctx, time.Time{}, now)
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}

	dayStart := startOfDay(now)
	weekStart := dayStart.AddDate(0, 0, -6)

	summary := &StatsSummary{}
	completedDays := make(map[time.Time]bool)

	for _, sess := range all {
		if sess.Active() {
			continue
		}
		accumulate(&summary.AllTime, sess)
		if !sess.StartTime.Before(weekStart) {
			accumulate(&summary.Last7Days, sess)
		}
		if !sess.StartTime.Before(dayStart) {
			accumulate(&summary.Today, sess)
		}
		if sess.StopReason == domain.StopExpired {
			completedDays[startOfDay(sess.StartTime)] = true
		}
	}

	summary.StreakDays = streakFrom(dayStart, completedDays)
	return summary, nil
}

// ListDaily returns per-day rollups for the most recent days, oldest first.
// Days with no sessions are omitted.
func (s *statsService) ListDaily(ctx context.Context, now time.Time, days int) ([]DayStats, error) {
	if days <= 0 {
		days = 7
	}
	now = now.UTC()
	from := startOfDay(now).AddDate(0, 0, -(days - 1))

	sessions, err := s.sessions.ListRange(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("loading session history: %w", err)
	}

	byDay := make(map[time.Time]*DayStats)
	for _, sess := range sessions {
		if sess.Active() {
			continue
		}
		day := startOfDay(sess.StartTime)
		stats, ok := byDay[day]
		if !ok {
			stats = &DayStats{Date: day}
			byDay[day] = stats
		}
		stats.Sessions++
		stats.FocusSeconds += sess.ActualSeconds
	}

	out := make([]DayStats, 0, len(byDay))
	for _, stats := range byDay {
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func accumulate(p *PeriodStats, sess *domain.FocusSession) {
	p.Sessions++
	p.FocusSeconds += sess.ActualSeconds
	if sess.StopReason == domain.StopExpired {
		p.Completed++
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// streakFrom counts consecutive days with at least one completed session,
// walking backwards from today. A day without a completion yet today does
// not break a streak that ran through yesterday.
func streakFrom(today time.Time, completedDays map[time.Time]bool) int {
	day := today
	if !completedDays[day] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for completedDays[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
