package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"promptvault/internal/journal"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently delivered activations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.JournalEnabled {
				return fmt.Errorf("activation journal is disabled in config")
			}

			store, err := journal.Open(cfg.StateDir)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No activations recorded")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show")
	return cmd
}

func renderHistory(entries []journal.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		delivered := ""
		if !entry.DeliveredAt.IsZero() {
			delivered = entry.DeliveredAt.Local().Format(time.DateTime)
		}
		rows = append(rows, []string{delivered, entry.Source, entry.URL})
	}
	return renderTable([]string{"Delivered", "Source", "URL"}, rows)
}
