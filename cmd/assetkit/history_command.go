package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"assetkit/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var toolFlag string

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show past strip and vocab runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			reqCtx := commandContextOf(cmd)

			if len(args) == 1 {
				run, err := store.Get(reqCtx, strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				items, err := store.Items(reqCtx, run.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Run %s (%s) %s\n", run.ID, run.Tool, run.Status)
				if run.Summary != "" {
					fmt.Fprintln(out, run.Summary)
				}
				if len(items) == 0 {
					return nil
				}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					rows = append(rows, []string{item.Name, item.Status, item.Message})
				}
				fmt.Fprintln(out, renderTable([]string{"File", "Status", "Detail"}, rows, nil))
				return nil
			}

			tool := history.Tool(strings.ToLower(strings.TrimSpace(toolFlag)))
			switch tool {
			case "", history.ToolStrip, history.ToolVocab:
			default:
				return fmt.Errorf("unknown tool %q (want strip or vocab)", toolFlag)
			}

			runs, err := store.List(reqCtx, history.ListFilter{Tool: tool, Limit: limit})
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					string(run.Tool),
					string(run.Status),
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					formatDuration(run.Duration()),
					run.Summary,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Tool", "Status", "Started", "Duration", "Summary"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().StringVar(&toolFlag, "tool", "", "Only show runs of this tool (strip, vocab)")
	return cmd
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
