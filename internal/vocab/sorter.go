package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"assetkit/internal/config"
	"assetkit/internal/fileutil"
	"assetkit/internal/logging"
)

// ErrSameOutput is returned when the output path resolves to the input.
var ErrSameOutput = errors.New("output path must differ from input")

// CategoryCount is the number of kept entries in one category.
type CategoryCount struct {
	Category string
	Count    int
	Dinosaur bool
}

// Report summarizes a resort.
type Report struct {
	Input  string
	Output string
	// LevelCounts maps each of Levels to its bucket size.
	LevelCounts  map[int]int
	Dinosaurs    int
	Total        int
	Excluded     int
	Unterminated bool
	// Categories is ordered by category name.
	Categories []CategoryCount
	// Written is false for check-only runs.
	Written bool
}

// MoveCommand is the shell command that replaces the input with the output.
func (r Report) MoveCommand() string {
	return fmt.Sprintf("mv %s %s", r.Output, r.Input)
}

// Options configures a Sorter. Empty fields take package defaults.
type Options struct {
	Marker   string
	Sentinel string
}

// Sorter reads, regroups and writes vocabulary files.
type Sorter struct {
	marker   string
	sentinel string
	logger   *slog.Logger
}

// NewSorter constructs a Sorter. A nil logger discards output.
func NewSorter(opts Options, logger *slog.Logger) *Sorter {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if opts.Sentinel == "" {
		opts.Sentinel = DefaultSentinel
	}
	return &Sorter{
		marker:   opts.Marker,
		sentinel: opts.Sentinel,
		logger:   logging.NewComponentLogger(logger, "vocab"),
	}
}

// Resort reads inputPath and writes the regrouped list to outputPath, or to
// the _sorted sibling of inputPath when outputPath is empty. The input is
// never modified and nothing is written when parsing fails.
func Resort(inputPath, outputPath string) (Report, error) {
	return NewSorter(Options{}, nil).Resort(context.Background(), inputPath, outputPath)
}

// Resort is the configured form of the package-level Resort.
func (s *Sorter) Resort(ctx context.Context, inputPath, outputPath string) (Report, error) {
	if outputPath == "" {
		outputPath = config.SortedSibling(inputPath)
	}
	same, err := samePath(inputPath, outputPath)
	if err != nil {
		return Report{}, err
	}
	if same {
		return Report{}, fmt.Errorf("%w: %s", ErrSameOutput, outputPath)
	}

	doc, report, err := s.load(ctx, inputPath)
	if err != nil {
		return report, err
	}
	rendered, err := Render(doc)
	if err != nil {
		return report, err
	}
	if err := fileutil.WriteFileAtomic(outputPath, []byte(rendered), 0o644); err != nil {
		return report, fmt.Errorf("write %s: %w", outputPath, err)
	}

	report.Output = outputPath
	report.Written = true
	logging.WithContext(ctx, s.logger).Info("vocabulary resorted",
		logging.String("input", inputPath),
		logging.String("output", outputPath),
		logging.Int("total", report.Total),
		logging.Int("excluded", report.Excluded),
	)
	return report, nil
}

// Check parses and validates inputPath and reports what a resort would
// produce without writing anything.
func (s *Sorter) Check(ctx context.Context, inputPath string) (Report, error) {
	doc, report, err := s.load(ctx, inputPath)
	if err != nil {
		return report, err
	}
	if _, err := doc.Buckets(); err != nil {
		return report, err
	}
	return report, nil
}

func (s *Sorter) load(ctx context.Context, inputPath string) (*Document, Report, error) {
	report := Report{Input: inputPath}
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, report, fmt.Errorf("read %s: %w", inputPath, err)
	}
	doc, err := Parse(string(data), s.marker, s.sentinel)
	if err != nil {
		return nil, report, fmt.Errorf("parse %s: %w", inputPath, err)
	}

	logger := logging.WithContext(ctx, s.logger)
	if doc.Excluded > 0 {
		logger.Warn("entries missing sort fields were dropped",
			logging.String(logging.FieldFile, inputPath),
			logging.Int("excluded", doc.Excluded),
		)
	}
	if doc.Unterminated {
		logger.Warn("unterminated entry at end of list was dropped",
			logging.String(logging.FieldFile, inputPath),
		)
	}

	summarize(&report, doc)
	return doc, report, nil
}

func summarize(report *Report, doc *Document) {
	report.LevelCounts = make(map[int]int, len(Levels))
	for _, level := range Levels {
		report.LevelCounts[level] = 0
	}
	byCategory := make(map[string]*CategoryCount)
	for _, e := range doc.Entries {
		if e.IsDinosaur() {
			report.Dinosaurs++
		} else {
			report.LevelCounts[e.Difficulty]++
		}
		cc, ok := byCategory[e.Category]
		if !ok {
			cc = &CategoryCount{Category: e.Category, Dinosaur: e.IsDinosaur()}
			byCategory[e.Category] = cc
		}
		cc.Count++
	}
	report.Total = len(doc.Entries)
	report.Excluded = doc.Excluded
	report.Unterminated = doc.Unterminated

	report.Categories = make([]CategoryCount, 0, len(byCategory))
	for _, cc := range byCategory {
		report.Categories = append(report.Categories, *cc)
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		return report.Categories[i].Category < report.Categories[j].Category
	})
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", b, err)
	}
	return absA == absB, nil
}
