// Package blocker defines the app/site blocking collaborator. Actual
// enforcement is performed by platform-native services; this module only
// tells the enforcer when a focus session begins and ends and which
// patterns apply. Enforcement errors are reported back but callers treat
// them as best-effort.
package blocker

import (
	"context"
	"io"
	"log/slog"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// Enforcer is notified of focus-session boundaries.
type Enforcer interface {
	BlockingStarted(ctx context.Context, entries []*domain.BlocklistEntry) error
	BlockingStopped(ctx context.Context) error
}

// NoopEnforcer performs no enforcement.
type NoopEnforcer struct{}

func (NoopEnforcer) BlockingStarted(context.Context, []*domain.BlocklistEntry) error { return nil }
func (NoopEnforcer) BlockingStopped(context.Context) error                           { return nil }

type logEnforcer struct {
	logger *slog.Logger
}

// NewLogEnforcer writes enforcement transitions to the provided writer.
func NewLogEnforcer(w io.Writer) Enforcer {
	if w == nil {
		return NoopEnforcer{}
	}
	return &logEnforcer{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (e *logEnforcer) BlockingStarted(ctx context.Context, entries []*domain.BlocklistEntry) error {
	e.logger.InfoContext(ctx, "blocking", "event", "started", "entries", len(entries))
	return nil
}

func (e *logEnforcer) BlockingStopped(ctx context.Context) error {
	e.logger.InfoContext(ctx, "blocking", "event", "stopped")
	return nil
}
