package logs

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Options selects which lines Tail returns.
type Options struct {
	// Limit keeps only the last Limit matching lines; zero or less keeps all.
	Limit int
	// RunID restricts output to lines that mention this run.
	RunID string
}

// Tail returns the trailing lines of the log file at path. A missing file
// yields no lines and no error.
func Tail(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("log path %q is a directory", path)
	}

	runID := strings.TrimSpace(opts.RunID)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if opts.Limit <= 0 {
		var lines []string
		for scanner.Scan() {
			if line := scanner.Text(); matches(line, runID) {
				lines = append(lines, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log file: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, opts.Limit)
	count, idx := 0, 0
	for scanner.Scan() {
		line := scanner.Text()
		if !matches(line, runID) {
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % opts.Limit
		if count < opts.Limit {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := make([]string, count)
	if count == opts.Limit {
		for i := range lines {
			lines[i] = ring[(idx+i)%opts.Limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

func matches(line, runID string) bool {
	return runID == "" || strings.Contains(line, runID)
}
