package cli

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubController struct {
	snap      countdown.Snapshot
	stopCalls int
	stopErr   error
}

func (s *stubController) Snapshot() countdown.Snapshot { return s.snap }

func (s *stubController) Stop(ctx context.Context, reason domain.StopReason) error {
	s.stopCalls++
	s.snap = countdown.Snapshot{}
	return s.stopErr
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTimer_TickRefreshesSnapshot(t *testing.T) {
	ctrl := &stubController{snap: countdown.Snapshot{Active: true, RemainingSeconds: 1500, TotalSeconds: 1500}}
	m := newTimerModel(ctrl)

	ctrl.snap.RemainingSeconds = 1499
	updated, cmd := m.Update(timerTickMsg(time.Now()))
	m = updated.(timerModel)

	assert.Equal(t, 1499, m.snapshot.RemainingSeconds)
	assert.NotNil(t, cmd, "an active session schedules the next tick")
	assert.Contains(t, m.View(), "24:59")
}

func TestTimer_QuitsWhenSessionEnds(t *testing.T) {
	ctrl := &stubController{snap: countdown.Snapshot{Active: true, RemainingSeconds: 1, TotalSeconds: 300}}
	m := newTimerModel(ctrl)

	ctrl.snap = countdown.Snapshot{}
	updated, cmd := m.Update(timerTickMsg(time.Now()))
	m = updated.(timerModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.View(), "Session complete")
	assert.Zero(t, ctrl.stopCalls, "natural expiry is finalized by the controller, not the view")
}

func TestTimer_StopKey(t *testing.T) {
	ctrl := &stubController{snap: countdown.Snapshot{Active: true, RemainingSeconds: 900, TotalSeconds: 1500}}
	m := newTimerModel(ctrl)

	updated, cmd := m.Update(keyMsg('s'))
	m = updated.(timerModel)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 1, ctrl.stopCalls)
	assert.Contains(t, m.View(), "Session stopped")
}

func TestTimer_BackgroundKeyLeavesSessionRunning(t *testing.T) {
	ctrl := &stubController{snap: countdown.Snapshot{Active: true, RemainingSeconds: 900, TotalSeconds: 1500}}
	m := newTimerModel(ctrl)

	_, cmd := m.Update(keyMsg('q'))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Zero(t, ctrl.stopCalls, "backgrounding never stops the session")
}
