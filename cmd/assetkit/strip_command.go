package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"assetkit/internal/bgstrip"
	"assetkit/internal/config"
	"assetkit/internal/history"
	"assetkit/internal/logging"
)

type stripFlags struct {
	dir       string
	threshold int
	outputDir string
	dryRun    bool
}

func newStripCommand(ctx *commandContext) *cobra.Command {
	flags := &stripFlags{}

	cmd := &cobra.Command{
		Use:   "strip [files...]",
		Short: "Make light sprite backgrounds transparent",
		Long: "Rewrites every pixel whose red, green and blue channels all reach the threshold\n" +
			"to be fully transparent. Files default to the configured sprite list and are\n" +
			"rewritten in place unless --output-dir is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg, args)
			if err != nil {
				return err
			}
			return runStrip(cmd, ctx, cfg, opts)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Directory holding the sprite images")
	cmd.Flags().IntVar(&flags.threshold, "threshold", bgstrip.DefaultThreshold, "Minimum channel value treated as background (0-255)")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Write results here instead of overwriting the sources")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Count matching pixels without writing files")
	return cmd
}

func (f *stripFlags) options(cmd *cobra.Command, cfg *config.Config, args []string) (bgstrip.Options, error) {
	threshold := cfg.Stripper.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = f.threshold
	}
	if threshold < 0 || threshold > 255 {
		return bgstrip.Options{}, fmt.Errorf("threshold must be between 0 and 255, got %d", threshold)
	}

	dir := cfg.Stripper.Dir
	if strings.TrimSpace(f.dir) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(f.dir))
		if err != nil {
			return bgstrip.Options{}, fmt.Errorf("resolve --dir: %w", err)
		}
		dir = expanded
	}

	outputDir := cfg.Stripper.OutputDir
	if strings.TrimSpace(f.outputDir) != "" {
		expanded, err := config.ExpandPath(strings.TrimSpace(f.outputDir))
		if err != nil {
			return bgstrip.Options{}, fmt.Errorf("resolve --output-dir: %w", err)
		}
		outputDir = expanded
	}

	files := cfg.Stripper.Files
	if len(args) > 0 {
		files = make([]string, 0, len(args))
		for _, arg := range args {
			name := strings.TrimSpace(arg)
			if name == "" {
				continue
			}
			if filepath.Base(name) != name {
				return bgstrip.Options{}, fmt.Errorf("file %q must be a name inside the sprite directory", arg)
			}
			files = append(files, name)
		}
	}

	return bgstrip.Options{
		Dir:       dir,
		Files:     files,
		Threshold: uint8(threshold),
		OutputDir: outputDir,
		LockPath:  filepath.Join(cfg.Paths.StateDir, "strip.lock"),
		DryRun:    f.dryRun,
	}, nil
}

func runStrip(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, opts bgstrip.Options) error {
	session, err := ctx.beginRun(commandContextOf(cmd), cfg, history.ToolStrip)
	if err != nil {
		return err
	}
	defer session.close()

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	opts.OnOutcome = func(o bgstrip.Outcome) {
		fmt.Fprintln(out, renderOutcome(o, opts.DryRun, colorize))
	}

	result, err := bgstrip.NewStripper(opts, session.logger).Run(session.ctx)
	if len(result.Outcomes) > 0 {
		if recErr := session.store.AddItems(context.WithoutCancel(session.ctx), session.run.ID, outcomeItems(result)); recErr != nil {
			session.logger.Warn("failed to record strip outcomes", logging.Error(recErr))
		}
	}
	if err != nil {
		session.finish(history.RunFailed, err.Error())
		return err
	}

	summary := fmt.Sprintf("Processed %d/%d images.", result.Processed(), result.Total())
	printStripSummary(out, result, opts.DryRun)
	session.finish(stripStatus(result), summary)
	return nil
}

func renderOutcome(o bgstrip.Outcome, dryRun, colorize bool) string {
	var line, color string
	switch o.Status {
	case bgstrip.StatusProcessed:
		color = ansiGreen
		if dryRun {
			line = fmt.Sprintf("✓ Would clear %d pixels: %s", o.Cleared, o.Name)
		} else {
			line = fmt.Sprintf("✓ Processed: %s", o.Name)
		}
	case bgstrip.StatusNotFound:
		color = ansiYellow
		line = fmt.Sprintf("⚠ Not found: %s", o.Name)
	default:
		color = ansiRed
		line = fmt.Sprintf("✗ Error processing %s: %v", o.Name, o.Err)
	}
	if colorize {
		return color + line + ansiReset
	}
	return line
}

func printStripSummary(out io.Writer, result bgstrip.BatchResult, dryRun bool) {
	fmt.Fprintln(out)
	if dryRun {
		fmt.Fprintf(out, "Dry run: %d/%d images would be processed.\n", result.Processed(), result.Total())
		return
	}
	fmt.Fprintf(out, "Processed %d/%d images.\n", result.Processed(), result.Total())
}

func outcomeItems(result bgstrip.BatchResult) []history.RunItem {
	items := make([]history.RunItem, 0, len(result.Outcomes))
	for _, o := range result.Outcomes {
		item := history.RunItem{Name: o.Name, Status: string(o.Status)}
		switch {
		case o.Err != nil:
			item.Message = o.Err.Error()
		case o.Status == bgstrip.StatusProcessed:
			item.Message = fmt.Sprintf("%d pixels cleared", o.Cleared)
		}
		items = append(items, item)
	}
	return items
}

func stripStatus(result bgstrip.BatchResult) history.RunStatus {
	switch {
	case result.Total() > 0 && result.Processed() == 0:
		return history.RunFailed
	case result.Processed() < result.Total():
		return history.RunPartial
	default:
		return history.RunSucceeded
	}
}
