package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"assetkit/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var runID string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			records, err := logs.Tail(cfg.LogPath(), logs.Options{Limit: lines, RunID: runID})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintf(out, "No log records in %s\n", cfg.LogPath())
				return nil
			}
			for _, line := range records {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show records from this run ID")
	return cmd
}
