package main

import (
	"image/color"
	"path/filepath"
	"testing"

	"assetkit/internal/testsupport"
)

func TestStripCommandReportsEachFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSprites("rabbit_win.png", "dino_win.png"))
	sprite := filepath.Join(env.cfg.Stripper.Dir, "rabbit_win.png")
	testsupport.WritePNG(t, sprite, testsupport.NewNRGBA(t, 2, 1,
		color.NRGBA{255, 255, 255, 255},
		color.NRGBA{12, 34, 56, 255},
	))

	out, _, err := runCLI(t, []string{"strip"}, env.configPath)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	requireContains(t, out, "✓ Processed: rabbit_win.png")
	requireContains(t, out, "⚠ Not found: dino_win.png")
	requireContains(t, out, "Processed 1/2 images.")

	img := testsupport.ReadNRGBA(t, sprite)
	if img.NRGBAAt(0, 0).A != 0 || img.NRGBAAt(1, 0).A != 255 {
		t.Fatalf("sprite not stripped: %v %v", img.NRGBAAt(0, 0), img.NRGBAAt(1, 0))
	}

	out, _, err = runCLI(t, []string{"history", "--tool", "strip"}, env.configPath)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "partial")
	requireContains(t, out, "Processed 1/2 images.")
}

func TestStripCommandFilesAndThresholdFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	sprite := filepath.Join(env.cfg.Stripper.Dir, "custom.png")
	testsupport.WritePNG(t, sprite, testsupport.NewNRGBA(t, 1, 1, color.NRGBA{200, 200, 200, 255}))
	outDir := filepath.Join(testsupport.BaseDir(env.cfg), "out")

	out, _, err := runCLI(t, []string{"strip", "--threshold", "200", "--output-dir", outDir, "custom.png"}, env.configPath)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	requireContains(t, out, "Processed 1/1 images.")

	if got := testsupport.ReadNRGBA(t, filepath.Join(outDir, "custom.png")).NRGBAAt(0, 0).A; got != 0 {
		t.Fatalf("expected stripped output, alpha=%d", got)
	}
	if got := testsupport.ReadNRGBA(t, sprite).NRGBAAt(0, 0).A; got != 255 {
		t.Fatalf("source should be untouched, alpha=%d", got)
	}
}

func TestStripCommandContinuesPastCorruptFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSprites("bad.png"))
	testsupport.WriteFile(t, filepath.Join(env.cfg.Stripper.Dir, "bad.png"), []byte("nope"))

	out, _, err := runCLI(t, []string{"strip"}, env.configPath)
	if err != nil {
		t.Fatalf("strip should not fail on per-file errors: %v", err)
	}
	requireContains(t, out, "✗ Error processing bad.png:")
	requireContains(t, out, "Processed 0/1 images.")
}

func TestStripCommandRejectsInvalidInput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"strip", "--threshold", "300"}, env.configPath); err == nil {
		t.Fatal("expected threshold error")
	}
	if _, _, err := runCLI(t, []string{"strip", "../escape.png"}, env.configPath); err == nil {
		t.Fatal("expected error for path outside sprite dir")
	}
}
