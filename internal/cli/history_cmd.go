package cli

import (
	"context"
	"fmt"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past focus sessions",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryRemoveCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent focus sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.History.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions yet.")
				return nil
			}

			headers := []string{"ID", "STARTED", "PLANNED", "FOCUSED", "OUTCOME"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.HumanTimestamp(s.StartTime),
					formatter.FormatMinutes(s.DurationMin),
					formatter.FormatSeconds(s.ActualSeconds),
					formatter.StopReasonPill(s.StopReason),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions to show")

	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed session %s\n", args[0])
			return nil
		},
	}
}
