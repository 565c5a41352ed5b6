package repository

import (
	"context"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// Checkpoint is the best-effort recovery cache persisted by the countdown
// controller: the absolute start instant and the last observed remaining
// seconds. It accelerates UI paint on relaunch; the authoritative remaining
// time is always recomputed from the session's start time and committed
// duration.
type Checkpoint struct {
	StartTime        time.Time
	RemainingSeconds int
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.FocusSession) error
	// Finalize persists the end_time, stop_reason and actual_seconds of an
	// already-finalized domain session. The committed duration is not touched.
	Finalize(ctx context.Context, s *domain.FocusSession) error
	// GetActive returns the session with absent end_time, or nil if none.
	// stray is the number of additional active rows found beyond the most
	// recently started one; anything above zero is a data-integrity problem
	// for the caller to report.
	GetActive(ctx context.Context) (s *domain.FocusSession, stray int, err error)
	GetByID(ctx context.Context, id string) (*domain.FocusSession, error)
	// ListRecent returns up to limit sessions, most recently started first.
	ListRecent(ctx context.Context, limit int) ([]*domain.FocusSession, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*domain.FocusSession, error)
	Delete(ctx context.Context, id string) error
}

type StateRepo interface {
	SaveCheckpoint(ctx context.Context, cp Checkpoint) error
	// LoadCheckpoint returns nil without error when no checkpoint is stored.
	LoadCheckpoint(ctx context.Context) (*Checkpoint, error)
	// ClearCheckpoint is idempotent.
	ClearCheckpoint(ctx context.Context) error
}

type BlocklistRepo interface {
	Create(ctx context.Context, e *domain.BlocklistEntry) error
	List(ctx context.Context) ([]*domain.BlocklistEntry, error)
	ListByKind(ctx context.Context, kind domain.BlockKind) ([]*domain.BlocklistEntry, error)
	Delete(ctx context.Context, id string) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.FocusSchedule) error
	GetByID(ctx context.Context, id string) (*domain.FocusSchedule, error)
	List(ctx context.Context, enabledOnly bool) ([]*domain.FocusSchedule, error)
	Update(ctx context.Context, s *domain.FocusSchedule) error
	Delete(ctx context.Context, id string) error
}
