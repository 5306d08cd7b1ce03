package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"assetkit/internal/config"
	"assetkit/internal/history"
	"assetkit/internal/vocab"
)

func newVocabCommand(ctx *commandContext) *cobra.Command {
	vocabCmd := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary list utilities",
	}
	vocabCmd.AddCommand(newVocabSortCommand(ctx))
	return vocabCmd
}

func newVocabSortCommand(ctx *commandContext) *cobra.Command {
	var inputFlag, outputFlag string
	var check bool

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Regroup the vocabulary list by difficulty with dinosaurs last",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input := cfg.Vocab.Input
			if strings.TrimSpace(inputFlag) != "" {
				if input, err = config.ExpandPath(strings.TrimSpace(inputFlag)); err != nil {
					return fmt.Errorf("resolve --input: %w", err)
				}
			}
			// A configured output only pairs with the configured input.
			var output string
			switch {
			case strings.TrimSpace(outputFlag) != "":
				if output, err = config.ExpandPath(strings.TrimSpace(outputFlag)); err != nil {
					return fmt.Errorf("resolve --output: %w", err)
				}
			case strings.TrimSpace(inputFlag) == "":
				output = cfg.VocabOutput()
			}

			return runVocabSort(cmd, ctx, cfg, input, output, check)
		},
	}

	cmd.Flags().StringVar(&inputFlag, "input", "", "Vocabulary source file")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Destination file (default: <input>_sorted)")
	cmd.Flags().BoolVar(&check, "check", false, "Parse and report without writing")
	return cmd
}

func runVocabSort(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, input, output string, check bool) error {
	session, err := ctx.beginRun(commandContextOf(cmd), cfg, history.ToolVocab)
	if err != nil {
		return err
	}
	defer session.close()

	sorter := vocab.NewSorter(vocab.Options{
		Marker:   cfg.Vocab.Marker,
		Sentinel: cfg.Vocab.SentinelCategory,
	}, session.logger)

	var report vocab.Report
	if check {
		report, err = sorter.Check(session.ctx, input)
	} else {
		report, err = sorter.Resort(session.ctx, input, output)
	}
	if err != nil {
		session.finish(history.RunFailed, err.Error())
		return err
	}

	out := cmd.OutOrStdout()
	printVocabReport(out, report, check)

	summary := fmt.Sprintf("sorted %d entries into %s", report.Total, report.Output)
	if check {
		summary = fmt.Sprintf("checked %d entries in %s", report.Total, report.Input)
	}
	session.finish(history.RunSucceeded, summary)
	return nil
}

func printVocabReport(out io.Writer, report vocab.Report, check bool) {
	if check {
		fmt.Fprintln(out, "✅ Check passed, nothing written.")
	} else {
		fmt.Fprintln(out, "✅ Sort complete!")
	}
	fmt.Fprintln(out, "📊 Statistics:")
	for _, level := range vocab.Levels {
		fmt.Fprintf(out, "  Level %d: %d items\n", level, report.LevelCounts[level])
	}
	fmt.Fprintf(out, "  🦕 Dinosaurs: %d items\n", report.Dinosaurs)
	fmt.Fprintf(out, "  📦 Total: %d items\n", report.Total)
	if report.Excluded > 0 {
		fmt.Fprintf(out, "  ⚠ Excluded (missing difficulty, category or id): %d\n", report.Excluded)
	}
	if report.Unterminated {
		fmt.Fprintln(out, "  ⚠ An unterminated entry at the end of the list was dropped")
	}

	if len(report.Categories) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderTable(
			[]string{"Category", "Items", "Bucket"},
			categoryRows(report.Categories),
			[]columnAlignment{alignLeft, alignRight, alignLeft},
		))
	}

	if !check {
		fmt.Fprintf(out, "\n✅ Saved to: %s\n", report.Output)
		fmt.Fprintln(out, "📝 Review it, then replace the original with:")
		fmt.Fprintf(out, "   %s\n", report.MoveCommand())
	}
}

func categoryRows(categories []vocab.CategoryCount) [][]string {
	caser := cases.Title(language.Und)
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		bucket := "levels"
		if c.Dinosaur {
			bucket = "dinosaurs"
		}
		rows = append(rows, []string{caser.String(c.Category), strconv.Itoa(c.Count), bucket})
	}
	return rows
}
