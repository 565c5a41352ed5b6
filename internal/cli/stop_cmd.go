package cli

import (
	"context"
	"fmt"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running focus session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			snap, err := app.Countdown.Recover(ctx)
			if err != nil {
				return err
			}
			if !snap.Active {
				fmt.Println("No focus session running.")
				return nil
			}

			if err := app.Countdown.Stop(ctx, domain.StopExplicit); err != nil {
				return err
			}
			fmt.Println("Focus session stopped.")
			return nil
		},
	}
}
