// Package countdown implements the focus-session state machine: a
// controller that owns the single active session, ticks it down once per
// second, and reconciles elapsed wall-clock time after the process was
// suspended or killed. Remaining time is always recomputed from the
// session's absolute start instant and committed duration; the persisted
// checkpoint is only a paint-fast cache.
package countdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/blocker"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/db"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/notify"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/repository"
)

// Duration bounds for a focus session, in seconds (5 minutes to 8 hours).
const (
	MinDurationSeconds = 300
	MaxDurationSeconds = 28800
)

const tickInterval = time.Second

// ErrInvalidDuration is returned by Start for durations outside
// [MinDurationSeconds, MaxDurationSeconds]. No state changes.
var ErrInvalidDuration = errors.New("duration outside allowed range")

// Snapshot is the controller's observable state.
type Snapshot struct {
	Active           bool
	RemainingSeconds int
	TotalSeconds     int
}

// ProgressRatio returns completed fraction in [0, 1].
func (s Snapshot) ProgressRatio() float64 {
	if s.TotalSeconds == 0 {
		return 0
	}
	return float64(s.TotalSeconds-s.RemainingSeconds) / float64(s.TotalSeconds)
}

// Controller owns the active focus session and the one-second tick.
// All mutation of the live state goes through it; the store is only ever
// written by Start, Stop and the tick checkpoint.
type Controller struct {
	sessions repository.SessionRepo
	state    repository.StateRepo
	uow      db.UnitOfWork

	clock     Clock
	newTicker TickerFactory
	notifier  notify.Notifier
	analytics Analytics
	enforcer  blocker.Enforcer
	blocklist repository.BlocklistRepo
	logger    *slog.Logger

	mu        sync.Mutex
	session   *domain.FocusSession
	remaining int
	ticker    Ticker
	stopCh    chan struct{}
	gen       uint64 // incremented on every arm/disarm so stale ticks are dropped
}

// Option configures a Controller.
type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) { ctl.clock = c }
}

func WithTickerFactory(f TickerFactory) Option {
	return func(ctl *Controller) { ctl.newTicker = f }
}

func WithNotifier(n notify.Notifier) Option {
	return func(ctl *Controller) { ctl.notifier = n }
}

func WithAnalytics(a Analytics) Option {
	return func(ctl *Controller) { ctl.analytics = a }
}

func WithLogger(l *slog.Logger) Option {
	return func(ctl *Controller) { ctl.logger = l }
}

// WithBlocker attaches a distraction-blocking enforcer. The blocklist is
// read when a session starts; entries added mid-session apply from the
// next session.
func WithBlocker(e blocker.Enforcer, entries repository.BlocklistRepo) Option {
	return func(ctl *Controller) {
		ctl.enforcer = e
		ctl.blocklist = entries
	}
}

// NewController creates an idle controller. Call Recover to adopt a
// session persisted by a previous process.
func NewController(sessions repository.SessionRepo, state repository.StateRepo, uow db.UnitOfWork, opts ...Option) *Controller {
	c := &Controller{
		sessions:  sessions,
		state:     state,
		uow:       uow,
		clock:     SystemClock(),
		newTicker: NewRealTicker,
		notifier:  notify.NoopNotifier{},
		analytics: NoopAnalytics{},
		enforcer:  blocker.NoopEnforcer{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new focus session of the given duration in seconds.
// Durations commit in whole minutes: a value that is not a minute
// multiple is rounded to the nearest minute, and the rounded value is
// what the session counts down from.
// If a session is already running it is finalized first, in the same
// transaction that creates the new one, so the store never holds two
// active sessions. On persistence failure nothing changes: a running
// prior session keeps running.
func (c *Controller) Start(ctx context.Context, durationSeconds int) error {
	if durationSeconds < MinDurationSeconds || durationSeconds > MaxDurationSeconds {
		return fmt.Errorf("duration %ds: %w", durationSeconds, ErrInvalidDuration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	next := &domain.FocusSession{
		ID:          uuid.New().String(),
		StartTime:   now,
		DurationMin: (durationSeconds + 30) / 60,
		CreatedAt:   now,
	}

	// Finalize a copy of the prior session; the live one is only replaced
	// once the transaction commits.
	var handover *domain.FocusSession
	if c.session != nil {
		prior := *c.session
		prior.Finalize(now, domain.StopExplicit)
		handover = &prior
	}

	err := c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txState := repository.NewSQLiteStateRepo(tx)

		if handover != nil {
			if err := txSessions.Finalize(ctx, handover); err != nil {
				return err
			}
		}
		if err := txSessions.Create(ctx, next); err != nil {
			return err
		}
		return txState.SaveCheckpoint(ctx, repository.Checkpoint{
			StartTime:        now,
			RemainingSeconds: next.TotalSeconds(),
		})
	})
	if err != nil {
		return fmt.Errorf("starting focus session: %w", err)
	}

	if handover != nil {
		c.analytics.SessionFinalized(ctx, handover)
	}

	c.session = next
	c.remaining = next.TotalSeconds()
	c.armLocked()

	c.notifier.SessionStarted(ctx, next.DurationMin)
	c.engageBlocking(ctx)
	return nil
}

// Stop finalizes the active session with the given reason. Idempotent:
// stopping an idle controller is a no-op. On persistence failure the
// in-memory state still transitions to idle (a stuck "active" timer is
// worse than a stale history record) and the error is returned so the
// caller knows the durable record may be inconsistent.
func (c *Controller) Stop(ctx context.Context, reason domain.StopReason) error {
	c.mu.Lock()
	return c.finishLocked(ctx, reason)
}

// stopIfCurrent finalizes the session identified by id, or does nothing
// when another session has since taken its place. Expiry runs outside the
// tick lock, so the session a tick saw at zero may already have been
// replaced by a handover; finalizing by identity keeps the replacement
// session alive.
func (c *Controller) stopIfCurrent(ctx context.Context, id string, reason domain.StopReason) error {
	c.mu.Lock()
	if c.session == nil || c.session.ID != id {
		c.mu.Unlock()
		return nil
	}
	return c.finishLocked(ctx, reason)
}

// finishLocked finalizes the active session. Called with c.mu held;
// releases it before touching the store.
func (c *Controller) finishLocked(ctx context.Context, reason domain.StopReason) error {
	if c.session == nil {
		c.mu.Unlock()
		return nil
	}
	c.disarmLocked()
	sess := *c.session
	c.session = nil
	c.remaining = 0
	now := c.clock.Now()
	c.mu.Unlock()

	sess.Finalize(now, reason)

	// Blocking ends with the in-memory session, persistence outcome aside.
	c.releaseBlocking(ctx)

	err := c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSessionRepo(tx).Finalize(ctx, &sess); err != nil {
			return err
		}
		return repository.NewSQLiteStateRepo(tx).ClearCheckpoint(ctx)
	})
	if err != nil {
		return fmt.Errorf("stopping focus session: %w", err)
	}

	c.notifier.SessionEnded(ctx, reason, sess.DurationMin)
	c.analytics.SessionFinalized(ctx, &sess)
	return nil
}

// Recover reconciles the controller with the store on launch or on
// foreground transition. Remaining time is recomputed from the stored
// absolute start time and committed duration, never from the checkpoint,
// so the countdown is immune to missed ticks and process death. A session
// that expired while suspended is finalized immediately.
func (c *Controller) Recover(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()

	sess, stray, err := c.sessions.GetActive(ctx)
	if err != nil {
		c.mu.Unlock()
		return Snapshot{}, fmt.Errorf("recovering focus session: %w", err)
	}
	if stray > 0 {
		c.logger.Warn("data integrity: multiple active focus sessions in store",
			"kept", sess.ID, "extra", stray)
	}

	if sess == nil {
		c.disarmLocked()
		c.session = nil
		c.remaining = 0
		c.mu.Unlock()
		if err := c.state.ClearCheckpoint(ctx); err != nil {
			c.logger.Warn("clearing stray checkpoint", "error", err)
		}
		c.releaseBlocking(ctx)
		return Snapshot{}, nil
	}

	now := c.clock.Now()
	remaining := sess.RemainingAt(now)

	if remaining == 0 {
		// Expired while suspended: adopt it just long enough to stop.
		c.disarmLocked()
		c.session = sess
		c.remaining = 0
		c.mu.Unlock()
		if err := c.stopIfCurrent(ctx, sess.ID, domain.StopExpired); err != nil {
			return Snapshot{}, err
		}
		return Snapshot{}, nil
	}

	c.disarmLocked()
	c.session = sess
	c.remaining = remaining
	c.armLocked()
	c.mu.Unlock()

	if err := c.state.SaveCheckpoint(ctx, repository.Checkpoint{
		StartTime:        sess.StartTime,
		RemainingSeconds: remaining,
	}); err != nil {
		c.logger.Warn("refreshing recovery checkpoint", "error", err)
	}

	c.engageBlocking(ctx)
	return c.Snapshot(), nil
}

// Snapshot returns the controller's current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Snapshot{}
	}
	return Snapshot{
		Active:           true,
		RemainingSeconds: c.remaining,
		TotalSeconds:     c.session.TotalSeconds(),
	}
}

// Cached returns a snapshot derived from the persisted checkpoint without
// touching the session table. It lets a UI paint a plausible countdown
// before Recover completes; the value may be stale and must be replaced
// by the recovered snapshot.
func (c *Controller) Cached(ctx context.Context) (*Snapshot, error) {
	cp, err := c.state.LoadCheckpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading checkpoint: %w", err)
	}
	if cp == nil {
		return nil, nil
	}
	remaining := cp.RemainingSeconds
	if remaining < 0 {
		remaining = 0
	}
	return &Snapshot{Active: remaining > 0, RemainingSeconds: remaining}, nil
}

// armLocked starts the tick loop, disarming any previous one first so
// exactly one timer is ever armed. Caller holds c.mu.
func (c *Controller) armLocked() {
	c.disarmLocked()
	c.gen++
	gen := c.gen
	t := c.newTicker(tickInterval)
	stop := make(chan struct{})
	c.ticker = t
	c.stopCh = stop
	go c.runLoop(t, stop, gen)
}

// disarmLocked stops the tick loop if armed. Idempotent. Caller holds c.mu.
func (c *Controller) disarmLocked() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stopCh)
	c.ticker = nil
	c.stopCh = nil
	c.gen++
}

func (c *Controller) runLoop(t Ticker, stop chan struct{}, gen uint64) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			c.handleTick(gen)
		}
	}
}

// handleTick advances the countdown by one second. Ticks from a disarmed
// loop (stale generation) are dropped.
func (c *Controller) handleTick(gen uint64) {
	c.mu.Lock()
	if c.session == nil || gen != c.gen {
		c.mu.Unlock()
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
	remaining := c.remaining
	start := c.session.StartTime
	id := c.session.ID
	c.mu.Unlock()

	ctx := context.Background()
	// Cache write only; failure never interrupts the countdown.
	if err := c.state.SaveCheckpoint(ctx, repository.Checkpoint{
		StartTime:        start,
		RemainingSeconds: remaining,
	}); err != nil {
		c.logger.Warn("persisting tick checkpoint", "error", err)
	}

	if remaining == 0 {
		if err := c.stopIfCurrent(ctx, id, domain.StopExpired); err != nil {
			c.logger.Warn("finalizing expired focus session", "error", err)
		}
	}
}

// engageBlocking loads the blocklist and asks the enforcer to apply it.
// Enforcement failures never interrupt the countdown.
func (c *Controller) engageBlocking(ctx context.Context) {
	var entries []*domain.BlocklistEntry
	if c.blocklist != nil {
		var err error
		entries, err = c.blocklist.List(ctx)
		if err != nil {
			c.logger.Warn("loading blocklist", "error", err)
		}
	}
	if err := c.enforcer.BlockingStarted(ctx, entries); err != nil {
		c.logger.Warn("starting distraction blocking", "error", err)
	}
}

func (c *Controller) releaseBlocking(ctx context.Context) {
	if err := c.enforcer.BlockingStopped(ctx); err != nil {
		c.logger.Warn("stopping distraction blocking", "error", err)
	}
}
