package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var noUI bool

	cmd := &cobra.Command{
		Use:   "start [minutes]",
		Short: "Start a focus session",
		Long: "Start a focus session of the given length in minutes. A session " +
			"that is already running is stopped and replaced atomically.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Adopt any session a previous process left running so a
			// replacement start finalizes it instead of orphaning it.
			if _, err := app.Countdown.Recover(ctx); err != nil {
				return err
			}

			minutes, err := resolveDuration(app, args)
			if err != nil {
				return err
			}

			if err := app.Countdown.Start(ctx, minutes*60); err != nil {
				return err
			}

			if app.interactive() && !noUI {
				return runTimer(app.Countdown)
			}

			fmt.Printf("Focus session started: %s\n", formatter.FormatMinutes(minutes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noUI, "no-ui", false, "Start without the live countdown view")

	return cmd
}

// resolveDuration picks the session length: positional argument, then an
// interactive picker, then the configured default.
func resolveDuration(app *App, args []string) (int, error) {
	if len(args) == 1 {
		minutes, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: expected minutes", args[0])
		}
		return minutes, nil
	}
	if app.interactive() {
		return promptDuration(app.DefaultDurationMin)
	}
	return app.DefaultDurationMin, nil
}
