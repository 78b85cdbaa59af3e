package storage

import (
	"path/filepath"
	"testing"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open("")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	store, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreOpenBadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "missing", "dir", "runs.db")
	if _, err := Open(dsn); err == nil {
		t.Error("Expected an error for a database in a missing directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openMemory(t)

	runs := []Run{
		{Player: "alice", Score: 100, Stage: 1, Outcome: "game_over", Ticks: 900},
		{Score: 50, Stage: 1, Outcome: "quit"},
		{Player: "bob", Score: 200, Stage: 2, Outcome: "game_over", Ticks: 1800},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", top)
	}
	if top[0].Player != "bob" || top[0].Stage != 2 || top[0].Ticks != 1800 || top[0].Outcome != "game_over" {
		t.Errorf("Unexpected top run: %+v", top[0])
	}
	if top[2].Player != "local" {
		t.Errorf("Expected empty player to default to local, got %q", top[2].Player)
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openMemory(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100, Stage: 1, Outcome: "game_over"})
	}
	// Same score as the best, saved later.
	store.SaveRun(Run{Player: "late", Score: 500, Stage: 3, Outcome: "game_over"})

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[0].Player != "local" || top[1].Player != "late" || top[2].Score != 400 {
		t.Errorf("Runs not in expected order: %+v", top)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openMemory(t)

	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{Score: i * 10, Stage: 1, Outcome: "game_over"})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 40 || recent[1].Score != 30 {
		t.Errorf("Expected newest first [40 30], got %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openMemory(t)

	// No runs yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for an empty journal, got %d", high)
	}

	store.SaveRun(Run{Score: 100, Stage: 1, Outcome: "game_over"})
	store.SaveRun(Run{Score: 300, Stage: 2, Outcome: "game_over"})
	store.SaveRun(Run{Score: 200, Stage: 2, Outcome: "quit"})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRunCount(t *testing.T) {
	store := openMemory(t)

	store.SaveRun(Run{Score: 100, Stage: 1, Outcome: "game_over"})
	store.SaveRun(Run{Score: 200, Stage: 1, Outcome: "game_over"})

	n, err := store.RunCount()
	if err != nil || n != 2 {
		t.Fatalf("RunCount() = %d, %v; expected 2", n, err)
	}
}

func TestStoreIsolatedPerOpen(t *testing.T) {
	a := openMemory(t)
	b := openMemory(t)

	a.SaveRun(Run{Score: 100, Stage: 1, Outcome: "game_over"})
	n, _ := b.RunCount()
	if n != 0 {
		t.Errorf("in-memory journals should not share rows, got %d", n)
	}
}
