package logs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"assetkit/internal/logs"
)

func writeLog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetkit.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTailLastLines(t *testing.T) {
	path := writeLog(t, "a", "b", "c")

	lines, err := logs.Tail(path, logs.Options{Limit: 2})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "b" || lines[1] != "c" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
}

func TestTailAllLinesWhenLimitUnset(t *testing.T) {
	path := writeLog(t, "a", "b", "c")

	lines, err := logs.Tail(path, logs.Options{})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("expected all lines, got %#v", lines)
	}
}

func TestTailFiltersByRun(t *testing.T) {
	path := writeLog(t,
		"INFO strip batch started run_id=run-1",
		"INFO strip batch started run_id=run-2",
		"WARN image not found run_id=run-1",
		"INFO run finished run_id=run-2",
	)

	lines, err := logs.Tail(path, logs.Options{Limit: 5, RunID: "run-1"})
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(lines) != 2 || !strings.Contains(lines[1], "image not found") {
		t.Fatalf("unexpected filtered lines: %#v", lines)
	}
}

func TestTailMissingFile(t *testing.T) {
	lines, err := logs.Tail(filepath.Join(t.TempDir(), "absent.log"), logs.Options{Limit: 10})
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %#v", lines)
	}
}
