package bgstrip

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"assetkit/internal/fileutil"
	"assetkit/internal/logging"
)

// Status is the result classification for one file in a batch.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusNotFound  Status = "not_found"
	StatusFailed    Status = "error"
)

// ErrLocked is returned when another run holds the stripper lock.
var ErrLocked = errors.New("another strip run is in progress")

// Options configures a Stripper batch.
type Options struct {
	Dir       string
	Files     []string
	Threshold uint8
	// OutputDir receives processed files; empty rewrites them in place.
	OutputDir string
	// LockPath, when set, is held with an exclusive flock for the whole batch.
	LockPath string
	// DryRun decodes and counts but never writes.
	DryRun bool
	// OnOutcome is called after each file, in list order.
	OnOutcome func(Outcome)
}

// Outcome records what happened to a single file.
type Outcome struct {
	Name    string
	Path    string
	Status  Status
	Cleared int
	Err     error
}

// BatchResult aggregates outcomes in list order.
type BatchResult struct {
	Outcomes []Outcome
}

// Processed counts files that were stripped successfully.
func (r BatchResult) Processed() int { return r.count(StatusProcessed) }

// Missing counts files that did not exist.
func (r BatchResult) Missing() int { return r.count(StatusNotFound) }

// Failed counts files that could not be decoded or written.
func (r BatchResult) Failed() int { return r.count(StatusFailed) }

// Total is the size of the configured file list.
func (r BatchResult) Total() int { return len(r.Outcomes) }

func (r BatchResult) count(status Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Stripper runs the background transform over a fixed list of files.
type Stripper struct {
	opts   Options
	logger *slog.Logger
}

// NewStripper constructs a Stripper. A nil logger discards output.
func NewStripper(opts Options, logger *slog.Logger) *Stripper {
	return &Stripper{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "bgstrip"),
	}
}

// Run processes every configured file sequentially. Missing files and
// per-file failures are recorded as outcomes and never stop the batch; the
// returned error is reserved for lock contention, an unusable sprite
// directory, and cancellation.
func (s *Stripper) Run(ctx context.Context) (BatchResult, error) {
	logger := logging.WithContext(ctx, s.logger)

	if s.opts.LockPath != "" {
		lock := flock.New(s.opts.LockPath)
		ok, err := lock.TryLock()
		if err != nil {
			return BatchResult{}, fmt.Errorf("acquire lock %s: %w", s.opts.LockPath, err)
		}
		if !ok {
			return BatchResult{}, fmt.Errorf("%w (lock %s)", ErrLocked, s.opts.LockPath)
		}
		defer func() { _ = lock.Unlock() }()
	}

	// A missing directory surfaces as per-file not_found outcomes below.
	writable := !s.opts.DryRun && strings.TrimSpace(s.opts.OutputDir) == ""
	if err := fileutil.CheckDirectory(s.opts.Dir, writable); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return BatchResult{}, fmt.Errorf("sprite directory: %w", err)
	}

	logger.Info("strip batch started",
		slog.String("dir", s.opts.Dir),
		slog.Int("files", len(s.opts.Files)),
		slog.Int("threshold", int(s.opts.Threshold)),
		slog.Bool("dry_run", s.opts.DryRun),
	)

	result := BatchResult{Outcomes: make([]Outcome, 0, len(s.opts.Files))}
	for _, name := range s.opts.Files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		outcome := s.processOne(name)
		s.logOutcome(logger, outcome)
		result.Outcomes = append(result.Outcomes, outcome)
		if s.opts.OnOutcome != nil {
			s.opts.OnOutcome(outcome)
		}
	}

	logger.Info("strip batch finished",
		slog.Int("processed", result.Processed()),
		slog.Int("missing", result.Missing()),
		slog.Int("failed", result.Failed()),
		slog.Int("total", result.Total()),
	)
	return result, nil
}

func (s *Stripper) processOne(name string) Outcome {
	path := filepath.Join(s.opts.Dir, name)
	outcome := Outcome{Name: name, Path: path}

	exists, err := fileutil.Exists(path)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}
	if !exists {
		outcome.Status = StatusNotFound
		return outcome
	}

	if s.opts.DryRun {
		img, err := loadImage(path)
		if err != nil {
			outcome.Status = StatusFailed
			outcome.Err = err
			return outcome
		}
		_, outcome.Cleared = StripImage(img, s.opts.Threshold)
		outcome.Status = StatusProcessed
		return outcome
	}

	cleared, err := Process(path, s.outputPath(name), s.opts.Threshold)
	if err != nil {
		outcome.Status = StatusFailed
		outcome.Err = err
		return outcome
	}
	outcome.Cleared = cleared
	outcome.Status = StatusProcessed
	return outcome
}

func (s *Stripper) outputPath(name string) string {
	if strings.TrimSpace(s.opts.OutputDir) == "" {
		return ""
	}
	return filepath.Join(s.opts.OutputDir, name)
}

func (s *Stripper) logOutcome(logger *slog.Logger, o Outcome) {
	attrs := []logging.Attr{
		logging.String(logging.FieldFile, o.Name),
		logging.String("status", string(o.Status)),
	}
	switch o.Status {
	case StatusProcessed:
		attrs = append(attrs, logging.Int("cleared", o.Cleared))
		logger.Info("image processed", logging.Args(attrs...)...)
	case StatusNotFound:
		logger.Warn("image not found", logging.Args(append(attrs, logging.String("path", o.Path))...)...)
	default:
		logger.Error("image failed", logging.Args(append(attrs, logging.Error(o.Err))...)...)
	}
}
