package history_test

import (
	"context"
	"errors"
	"testing"

	"assetkit/internal/history"
	"assetkit/internal/testsupport"
)

func TestOpenAppliesMigrationsAndRecordsRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	ctx := context.Background()
	run, err := store.Begin(ctx, history.ToolStrip)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if run.ID == "" {
		t.Fatal("expected run ID to be assigned")
	}

	items := []history.RunItem{
		{Name: "dino_up.png", Status: "processed"},
		{Name: "dino_win.png", Status: "not_found"},
		{Name: "rabbit_win.png", Status: "error", Message: "decode: bad header"},
	}
	if err := store.AddItems(ctx, run.ID, items); err != nil {
		t.Fatalf("AddItems failed: %v", err)
	}
	if err := store.Finish(ctx, run.ID, history.RunPartial, "Processed 1/3 images."); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	fetched, err := store.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.Status != history.RunPartial || fetched.Summary != "Processed 1/3 images." {
		t.Fatalf("unexpected run: %#v", fetched)
	}
	if fetched.FinishedAt.IsZero() || fetched.Duration() < 0 {
		t.Fatalf("expected finish timestamp, got %#v", fetched)
	}

	gotItems, err := store.Items(ctx, run.ID)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(gotItems) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(gotItems))
	}
	for i, item := range gotItems {
		if item.Name != items[i].Name || item.Status != items[i].Status || item.Message != items[i].Message {
			t.Fatalf("item %d mismatch: got %#v want %#v", i, item, items[i])
		}
	}
}

func TestReopenKeepsHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	first, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	run, err := first.Begin(context.Background(), history.ToolVocab)
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	second := testsupport.MustOpenHistory(t, cfg)
	fetched, err := second.Get(context.Background(), run.ID)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if fetched.Status != history.RunRunning {
		t.Fatalf("expected running status, got %q", fetched.Status)
	}
}

func TestListFiltersAndOrdersNewestFirst(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)
	ctx := context.Background()

	var ids []string
	for _, tool := range []history.Tool{history.ToolStrip, history.ToolVocab, history.ToolStrip} {
		run, err := store.Begin(ctx, tool)
		if err != nil {
			t.Fatalf("Begin failed: %v", err)
		}
		ids = append(ids, run.ID)
	}

	all, err := store.List(ctx, history.ListFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 || all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Fatalf("unexpected order: %#v", all)
	}

	strips, err := store.List(ctx, history.ListFilter{Tool: history.ToolStrip, Limit: 1})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(strips) != 1 || strips[0].ID != ids[2] {
		t.Fatalf("unexpected filtered runs: %#v", strips)
	}
}

func TestFinishUnknownRun(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenHistory(t, cfg)

	err := store.Finish(context.Background(), "missing", history.RunFailed, "")
	if !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, history.ErrRunNotFound) {
		t.Fatalf("expected ErrRunNotFound from Get, got %v", err)
	}
}
