package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var daily int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show focus statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			if daily > 0 {
				days, err := app.Stats.ListDaily(ctx, now, daily)
				if err != nil {
					return err
				}
				fmt.Print(formatter.RenderDaily(days))
				fmt.Println()
				return nil
			}

			summary, err := app.Stats.Summary(ctx, now)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderStatsSummary(summary))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&daily, "daily", 0, "Show a per-day breakdown for the last N days instead")

	return cmd
}
