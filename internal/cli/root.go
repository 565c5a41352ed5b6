package cli

import (
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/countdown"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the countdown controller and service interfaces
// used by CLI commands.
type App struct {
	Countdown *countdown.Controller
	History   service.HistoryService
	Stats     service.StatsService
	Blocklist service.BlocklistService
	Schedules service.ScheduleService

	// DefaultDurationMin is used when start is invoked without a duration.
	DefaultDurationMin int

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive sessions get the live countdown view and forms.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "neuroblock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "neuroblock",
		Short: "Focus session timer and distraction blocker",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newHistoryCmd(app),
		newStatsCmd(app),
		newBlocklistCmd(app),
		newScheduleCmd(app),
	)

	return root
}
