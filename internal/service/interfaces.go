package service

import (
	"context"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

type HistoryService interface {
	GetByID(ctx context.Context, id string) (*domain.FocusSession, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.FocusSession, error)
	Delete(ctx context.Context, id string) error
}

// PeriodStats aggregates finished sessions over a time window.
type PeriodStats struct {
	Sessions     int
	Completed    int
	FocusSeconds int
}

// CompletionRate is the fraction of finished sessions that ran to their
// full planned duration. Zero when no sessions finished in the period.
func (p PeriodStats) CompletionRate() float64 {
	if p.Sessions == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Sessions)
}

// AvgFocusSeconds is the mean focus time per finished session in the period.
func (p PeriodStats) AvgFocusSeconds() int {
	if p.Sessions == 0 {
		return 0
	}
	return p.FocusSeconds / p.Sessions
}

// DayStats is a per-day rollup for history charts.
type DayStats struct {
	Date         time.Time
	Sessions     int
	FocusSeconds int
}

// StatsSummary is the aggregate view shown by the stats command.
type StatsSummary struct {
	Today      PeriodStats
	Last7Days  PeriodStats
	AllTime    PeriodStats
	StreakDays int
}

type StatsService interface {
	Summary(ctx context.Context, now time.Time) (*StatsSummary, error)
	ListDaily(ctx context.Context, now time.Time, days int) ([]DayStats, error)
}

type BlocklistService interface {
	Add(ctx context.Context, kind domain.BlockKind, pattern string) (*domain.BlocklistEntry, error)
	List(ctx context.Context) ([]*domain.BlocklistEntry, error)
	ListByKind(ctx context.Context, kind domain.BlockKind) ([]*domain.BlocklistEntry, error)
	Remove(ctx context.Context, id string) error
}

type ScheduleService interface {
	Create(ctx context.Context, s *domain.FocusSchedule) error
	GetByID(ctx context.Context, id string) (*domain.FocusSchedule, error)
	List(ctx context.Context, enabledOnly bool) ([]*domain.FocusSchedule, error)
	Update(ctx context.Context, s *domain.FocusSchedule) error
	SetEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}
