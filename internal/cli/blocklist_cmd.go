package cli

import (
	"context"
	"fmt"

	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/cli/formatter"
	"github.com/kxvtzyqvmp-ctrl/Neuroblock-os-sub001/internal/domain"
	"github.com/spf13/cobra"
)

func newBlocklistCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocklist",
		Short: "Manage blocked apps and sites",
	}

	cmd.AddCommand(
		newBlocklistAddCmd(app),
		newBlocklistListCmd(app),
		newBlocklistRemoveCmd(app),
	)

	return cmd
}

func newBlocklistAddCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add PATTERN",
		Short: "Add an app or site to the blocklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Blocklist.Add(context.Background(), domain.BlockKind(kind), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Blocking %s %q (%s)\n", entry.Kind, entry.Pattern, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "site", "Entry kind: app or site")

	return cmd
}

func newBlocklistListCmd(app *App) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List blocklist entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var entries []*domain.BlocklistEntry
			var err error
			if kind != "" {
				entries, err = app.Blocklist.ListByKind(ctx, domain.BlockKind(kind))
			} else {
				entries, err = app.Blocklist.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("Blocklist is empty.")
				return nil
			}

			headers := []string{"ID", "KIND", "PATTERN", "ADDED"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					formatter.BlockKindBadge(e.Kind),
					e.Pattern,
					formatter.HumanTimestamp(e.CreatedAt),
				})
			}

			fmt.Print(formatter.RenderBox("Blocklist", formatter.RenderTable(headers, rows)))
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter by kind: app or site")

	return cmd
}

func newBlocklistRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a blocklist entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Blocklist.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed blocklist entry %s\n", args[0])
			return nil
		},
	}
}
