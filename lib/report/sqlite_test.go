package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreSaveAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	first := sampleReport()
	first.StartedAt = time.Now().Add(-time.Hour)
	second := sampleReport()

	if err := store.SaveReport(ctx, first); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}
	if err := store.SaveReport(ctx, second); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	reports, err := store.ListReports(ctx)
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}

	// Newest first
	if reports[0].RunID != second.RunID || reports[1].RunID != first.RunID {
		t.Errorf("expected order [%s %s], got [%s %s]",
			second.RunID, first.RunID, reports[0].RunID, reports[1].RunID)
	}

	got := reports[0]
	if got.DatasetSize != 1000 || got.Seed != 42 || got.Iterations != 5 {
		t.Errorf("run parameters not preserved: %+v", got)
	}

	if len(got.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got.Results))
	}
	// Insertion order preserved
	if got.Results[0].Name != "Complex Operations" || got.Results[1].Name != "String Operations" {
		t.Errorf("unexpected result order: %q, %q", got.Results[0].Name, got.Results[1].Name)
	}
	if got.Results[0].AvgMs != 11 || got.Results[0].MinMs != 10 || got.Results[0].MaxMs != 12 {
		t.Errorf("summary values not preserved: %+v", got.Results[0])
	}
}

func TestStoreCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "results.db")
	store, err := NewStore(dbPath)
	if err != nil {
		t.Fatalf("failed to create store in nested directory: %v", err)
	}
	store.Close()
}
