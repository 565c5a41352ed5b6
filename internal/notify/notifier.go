// Package notify defines the local-notification collaborator. The engine
// requests reminders around session boundaries; delivery is platform work
// that lives outside this module, so the default implementations log or do
// nothing. Notification failures must never fail a session transition.
package notify

import (
	"context"
	"io"
	"log/slog"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// Notifier receives session lifecycle notifications.
type Notifier interface {
	SessionStarted(ctx context.Context, durationMin int)
	SessionEnded(ctx context.Context, reason domain.StopReason, durationMin int)
}

// NoopNotifier ignores all notifications.
type NoopNotifier struct{}

func (NoopNotifier) SessionStarted(context.Context, int)                  {}
func (NoopNotifier) SessionEnded(context.Context, domain.StopReason, int) {}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier writes notification events to the provided writer.
func NewLogNotifier(w io.Writer) Notifier {
	if w == nil {
		return NoopNotifier{}
	}
	return &logNotifier{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (n *logNotifier) SessionStarted(ctx context.Context, durationMin int) {
	n.logger.InfoContext(ctx, "notification", "event", "focus_started", "duration_min", durationMin)
}

func (n *logNotifier) SessionEnded(ctx context.Context, reason domain.StopReason, durationMin int) {
	n.logger.InfoContext(ctx, "notification", "event", "focus_ended", "reason", string(reason), "duration_min", durationMin)
}
