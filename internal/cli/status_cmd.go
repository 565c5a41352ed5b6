package cli

import (
	"context"
	"fmt"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			snap, err := app.Countdown.Recover(ctx)
			if err != nil {
				return err
			}

			if watch && snap.Active && app.interactive() {
				return runTimer(app.Countdown)
			}

			fmt.Print(formatter.RenderStatus(snap))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Attach the live countdown view to a running session")

	return cmd
}
