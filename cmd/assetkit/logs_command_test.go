package main

import (
	"context"
	"strings"
	"testing"

	"assetkit/internal/history"
	"assetkit/internal/testsupport"
)

func TestLogsCommandFiltersByRun(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Vocab.Input, []byte(cliVocab))

	if _, _, err := runCLI(t, []string{"vocab", "sort"}, env.configPath); err != nil {
		t.Fatalf("first vocab sort: %v", err)
	}
	if _, _, err := runCLI(t, []string{"vocab", "sort", "--check"}, env.configPath); err != nil {
		t.Fatalf("second vocab sort: %v", err)
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	runs, err := store.List(context.Background(), history.ListFilter{Tool: history.ToolVocab})
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	first := runs[1]

	out, _, err := runCLI(t, []string{"logs", "--lines", "0", "--run", first.ID}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "vocabulary resorted")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.Contains(line, first.ID) {
			t.Fatalf("line from another run leaked through filter: %q", line)
		}
	}
}
