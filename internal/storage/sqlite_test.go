package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/tmp/farm.db", "/tmp/farm.db"},
		{"relative/farm.db", "relative/farm.db"},
		{"~/.farm/farm.db", filepath.Join(home, ".farm", "farm.db")},
	}

	for _, tc := range tests {
		got, err := ExpandHome(tc.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunResult{
		RunID:      "run-1",
		Player:     "alice",
		Difficulty: "hard",
		Seed:       42,
		Turns:      17,
		Mature:     7,
		Sown:       20,
		Reaped:     3,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	run, err := store.RunByID("run-1")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for saved run")
	}
	if run.ID != id || run.Player != "alice" || run.Difficulty != "hard" ||
		run.Seed != 42 || run.Turns != 17 || run.Mature != 7 || run.Sown != 20 || run.Reaped != 3 {
		t.Errorf("RunByID() = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run != nil {
		t.Errorf("Expected nil for missing run, got %+v", run)
	}
}

func TestStoreSaveRunDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunResult{RunID: "r", Turns: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID("r")
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Player != "local" || run.Difficulty != "normal" {
		t.Errorf("defaults = player %q difficulty %q, want local/normal", run.Player, run.Difficulty)
	}
}

func TestStoreSaveRunErrors(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunResult{Turns: 3}); err == nil {
		t.Error("Expected error for empty run id")
	}

	if _, err := store.SaveRun(RunResult{RunID: "dup", Turns: 3}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	_, err := store.SaveRun(RunResult{RunID: "dup", Turns: 4})
	if err == nil {
		t.Fatal("Expected error when saving the same run twice")
	}
	if !strings.HasPrefix(err.Error(), "storage:") {
		t.Errorf("error %q is not prefixed with storage:", err)
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	for i, turns := range []int{30, 12, 45, 12, 20} {
		if _, err := store.SaveRun(RunResult{RunID: string(rune('a' + i)), Turns: turns}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.BestRuns(3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Fewest turns first; ties keep insertion order
	want := []struct {
		runID string
		turns int
	}{{"b", 12}, {"d", 12}, {"e", 20}}
	for i, w := range want {
		if runs[i].RunID != w.runID || runs[i].Turns != w.turns {
			t.Errorf("runs[%d] = %s/%d, want %s/%d", i, runs[i].RunID, runs[i].Turns, w.runID, w.turns)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"first", "second", "third"} {
		if _, err := store.SaveRun(RunResult{RunID: id, Turns: 10}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].RunID != "third" || runs[1].RunID != "second" {
		t.Errorf("RecentRuns() order = %s, %s", runs[0].RunID, runs[1].RunID)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty store
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestTurns != 0 || stats.AvgTurns != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	for i, turns := range []int{10, 20, 30} {
		store.SaveRun(RunResult{RunID: string(rune('x' + i)), Turns: turns})
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.BestTurns != 10 {
		t.Errorf("BestTurns = %d, want 10", stats.BestTurns)
	}
	if stats.AvgTurns != 20 {
		t.Errorf("AvgTurns = %v, want 20", stats.AvgTurns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunResult{RunID: "a", Turns: 5})
	store.SaveRun(RunResult{RunID: "b", Turns: 6})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.BestRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	// The run id is free again after a clear
	if _, err := store.SaveRun(RunResult{RunID: "a", Turns: 5}); err != nil {
		t.Errorf("SaveRun() after clear failed: %v", err)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "farm.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(RunResult{RunID: "kept", Turns: 8})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	run, err := store.RunByID("kept")
	if err != nil || run == nil || run.Turns != 8 {
		t.Errorf("RunByID() after reopen = %+v, %v", run, err)
	}
}
