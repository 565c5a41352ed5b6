package countdown

import (
	"context"
	"io"
	"log/slog"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// Analytics receives finalized sessions for inclusion in rollups. The
// controller submits best-effort: an analytics failure never fails a stop.
type Analytics interface {
	SessionFinalized(ctx context.Context, s *domain.FocusSession)
}

// NoopAnalytics ignores all sessions.
type NoopAnalytics struct{}

func (NoopAnalytics) SessionFinalized(context.Context, *domain.FocusSession) {}

type logAnalytics struct {
	logger *slog.Logger
}

// NewLogAnalytics writes finalized sessions to the provided writer.
func NewLogAnalytics(w io.Writer) Analytics {
	if w == nil {
		return NoopAnalytics{}
	}
	return &logAnalytics{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (a *logAnalytics) SessionFinalized(ctx context.Context, s *domain.FocusSession) {
	a.logger.InfoContext(ctx, "session_finalized",
		"session_id", s.ID,
		"reason", string(s.StopReason),
		"duration_min", s.DurationMin,
		"actual_seconds", s.ActualSeconds,
	)
}
