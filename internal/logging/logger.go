package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"assetkit/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level       string
	Format      string
	OutputPaths []string
}

// CloseFunc releases the log files a logger writes to. It is safe to call
// more than once.
type CloseFunc func() error

func noopClose() error { return nil }

// New constructs a slog logger using the provided options. The returned
// CloseFunc closes any log files opened for OutputPaths.
func New(opts Options) (*slog.Logger, CloseFunc, error) {
	handler, closeFn, err := newHandler(opts)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(handler), closeFn, nil
}

func newHandler(opts Options) (slog.Handler, CloseFunc, error) {
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	addSource := level <= slog.LevelDebug

	outputWriter, closeFn, err := openWriters(defaultSlice(opts.OutputPaths, []string{"stdout"}))
	if err != nil {
		return nil, nil, err
	}

	if format == "json" {
		return newJSONHandler(outputWriter, levelVar, addSource), closeFn, nil
	}
	return newPrettyHandler(outputWriter, levelVar, addSource), closeFn, nil
}

// NewFromConfig creates the run logger. Records always land in the state
// directory log file using the configured format; verbose runs also echo them
// to stderr through the console handler. Callers close the log file with the
// returned CloseFunc when the run ends.
func NewFromConfig(cfg *config.Config, runID string, verbose bool) (*slog.Logger, CloseFunc, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console", OutputPaths: []string{"stderr"}})
	}

	if err := os.MkdirAll(cfg.Paths.StateDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure log directory: %w", err)
	}

	fileHandler, closeFn, err := newHandler(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{cfg.LogPath()},
	})
	if err != nil {
		return nil, nil, err
	}

	handlers := []slog.Handler{fileHandler}
	if verbose {
		stderrHandler, _, err := newHandler(Options{
			Level:       cfg.Logging.Level,
			Format:      "console",
			OutputPaths: []string{"stderr"},
		})
		if err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		handlers = append(handlers, stderrHandler)
	}

	handler := TeeHandler(handlers...)
	if runID != "" {
		handler = newRunIDHandler(handler, runID)
	}
	return slog.New(handler), closeFn, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func defaultSlice(value []string, fallback []string) []string {
	if len(value) == 0 {
		return slices.Clone(fallback)
	}
	return slices.Clone(value)
}

// openWriters resolves output paths to one writer. stdout and stderr are
// never closed; files are closed together by the returned CloseFunc.
func openWriters(outputPaths []string) (io.Writer, CloseFunc, error) {
	seen := map[string]struct{}{}
	var (
		writers []io.Writer
		files   []*os.File
	)
	closeAll := func() error {
		var errs []error
		for _, f := range files {
			if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	for _, path := range outputPaths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}

		switch trimmed {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := ensureLogDir(trimmed); err != nil {
				_ = closeAll()
				return nil, nil, err
			}
			file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
			if err != nil {
				_ = closeAll()
				return nil, nil, fmt.Errorf("open log file %s: %w", trimmed, err)
			}
			files = append(files, file)
			writers = append(writers, file)
		}
	}

	if len(files) == 0 {
		closeAll = noopClose
	}
	switch len(writers) {
	case 0:
		return os.Stdout, closeAll, nil
	case 1:
		return writers[0], closeAll, nil
	default:
		return io.MultiWriter(writers...), closeAll, nil
	}
}

func ensureLogDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	opts := slog.HandlerOptions{
		Level:     lvl,
		AddSource: addSource,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			case slog.SourceKey:
				if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
					attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return attr
		},
	}
	return slog.NewJSONHandler(w, &opts)
}
