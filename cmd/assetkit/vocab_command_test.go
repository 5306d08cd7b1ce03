package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"assetkit/internal/testsupport"
)

const cliVocab = `export type VocabItem = { id: string; difficulty: number; category: string };

export const VOCAB_LIST: VocabItem[] = [
  { id: 'apple', difficulty: 2, category: 'fruit' },
  { id: 'bear', difficulty: 1, category: 'animal' },
  { id: 'trex', difficulty: 1, category: 'dinosaur' },
];
`

func TestVocabSortCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Vocab.Input, []byte(cliVocab))

	out, _, err := runCLI(t, []string{"vocab", "sort"}, env.configPath)
	if err != nil {
		t.Fatalf("vocab sort: %v", err)
	}
	output := env.cfg.VocabOutput()
	requireContains(t, out, "Level 1: 1 items")
	requireContains(t, out, "Level 2: 1 items")
	requireContains(t, out, "Level 3: 0 items")
	requireContains(t, out, "Dinosaurs: 1 items")
	requireContains(t, out, "Total: 3 items")
	requireContains(t, out, "Fruit")
	requireContains(t, out, "mv "+output+" "+env.cfg.Vocab.Input)

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	sorted := string(data)
	bear := strings.Index(sorted, "'bear'")
	apple := strings.Index(sorted, "'apple'")
	trex := strings.Index(sorted, "'trex'")
	if bear < 0 || apple < 0 || trex < 0 || !(bear < apple && apple < trex) {
		t.Fatalf("unexpected order in output:\n%s", sorted)
	}

	hist, _, err := runCLI(t, []string{"history", "--tool", "vocab"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, hist, "succeeded")
}

func TestVocabSortCheckWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(testsupport.BaseDir(env.cfg), "other", "words.ts")
	testsupport.WriteFile(t, input, []byte(cliVocab))

	out, _, err := runCLI(t, []string{"vocab", "sort", "--check", "--input", input}, env.configPath)
	if err != nil {
		t.Fatalf("vocab sort --check: %v", err)
	}
	requireContains(t, out, "Check passed")
	if _, err := os.Stat(filepath.Join(filepath.Dir(input), "words_sorted.ts")); !os.IsNotExist(err) {
		t.Fatalf("check mode wrote output, stat err=%v", err)
	}
}

func TestVocabSortMissingMarkerFails(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Vocab.Input, []byte("export const OTHER = [];\n"))

	if _, _, err := runCLI(t, []string{"vocab", "sort"}, env.configPath); err == nil {
		t.Fatal("expected missing marker error")
	}
	if _, err := os.Stat(env.cfg.VocabOutput()); !os.IsNotExist(err) {
		t.Fatalf("no output expected, stat err=%v", err)
	}
}
