package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
)

// timerController is the slice of the countdown controller the timer view
// needs. The countdown keeps running in the background; the view only reads
// snapshots and forwards a stop request.
type timerController interface {
	Snapshot() countdown.Snapshot
	Stop(ctx context.Context, reason domain.StopReason) error
}

type timerKeyMap struct {
	Stop key.Binding
	Quit key.Binding
}

var timerKeys = timerKeyMap{
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop session"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "background"),
	),
}

type timerTickMsg time.Time

type timerModel struct {
	ctrl     timerController
	bar      progress.Model
	snapshot countdown.Snapshot
	stopErr  error
	stopped  bool
}

func newTimerModel(ctrl timerController) timerModel {
	bar := progress.New(
		progress.WithSolidFill(string(formatter.ColorGreen)),
		progress.WithoutPercentage(),
	)
	bar.Width = 36
	return timerModel{
		ctrl:     ctrl,
		bar:      bar,
		snapshot: ctrl.Snapshot(),
	}
}

func timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m timerModel) Init() tea.Cmd {
	return timerTick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		m.snapshot = m.ctrl.Snapshot()
		if !m.snapshot.Active {
			return m, tea.Quit
		}
		return m, timerTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timerKeys.Stop):
			m.stopErr = m.ctrl.Stop(context.Background(), domain.StopExplicit)
			m.stopped = true
			m.snapshot = m.ctrl.Snapshot()
			return m, tea.Quit
		case key.Matches(msg, timerKeys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	timerClockStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Bold(true)
	timerHelpStyle = lipgloss.NewStyle().
			Foreground(formatter.ColorDim)
)

func (m timerModel) View() string {
	if !m.snapshot.Active {
		if m.stopped {
			return formatter.StyleYellow.Render("Session stopped.") + "\n"
		}
		return formatter.StyleGreen.Render("Session complete. Nice work.") + "\n"
	}

	var b []string
	b = append(b,
		formatter.StyleGreen.Render("● Focusing"),
		"",
		timerClockStyle.Render(formatter.FormatClock(m.snapshot.RemainingSeconds)),
		m.bar.ViewAs(m.snapshot.ProgressRatio()),
		"",
		timerHelpStyle.Render("s stop · q background"),
	)
	return formatter.RenderBox("", lipgloss.JoinVertical(lipgloss.Left, b...)) + "\n"
}

// runTimer shows the live countdown until the session ends or the user
// backgrounds it. A stop failure surfaces after the program exits.
func runTimer(ctrl timerController) error {
	m := newTimerModel(ctrl)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(timerModel); ok && fm.stopErr != nil {
		return fm.stopErr
	}
	return nil
}
