package storage

import (
	"os"
	"path/filepath"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

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

func TestStoreLoadIntMissingKey(t *testing.T) {
	store := openTestStore(t)

	v, err := store.LoadInt("nothing-here")
	if err != nil {
		t.Fatalf("LoadInt() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("missing key should load as 0, got %d", v)
	}
}

func TestStoreHighScoreIsMonotonic(t *testing.T) {
	store := openTestStore(t)
	const key = "goldenFlyHighScore"

	for _, s := range []int{5, 12, 3, 12, 9} {
		if err := store.SaveHighScore(key, s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}

	high, err := store.LoadHighScore(key)
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("high score = %d, expected 12", high)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	const key = "goldenFlyHighScore"

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(key, 31); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.LoadHighScore(key)
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if high != 31 {
		t.Errorf("high score after reopen = %d, expected 31", high)
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveRun("goldenfly", s); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun("other", 500); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("goldenfly", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("runs not sorted descending: %v", runs)
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("goldenfly", (i+1)*100)
	}

	runs, err := store.TopRuns("goldenfly", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("goldenfly", 100)
	store.SaveRun("other", 300)
	store.SaveHighScore("goldenFlyHighScore", 100)

	if err := store.ClearRuns("goldenfly"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("goldenfly", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	others, _ := store.TopRuns("other", 10)
	if len(others) != 1 {
		t.Errorf("other game's runs should not be affected")
	}

	high, _ := store.LoadHighScore("goldenFlyHighScore")
	if high != 100 {
		t.Errorf("ClearRuns should keep the high score, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("goldenfly")
	if err != nil {
		t.Fatalf("Stats() on empty history failed: %v", err)
	}
	if empty.RunsCount != 0 || empty.BestRun != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, s := range []int{10, 20, 30} {
		store.SaveRun("goldenfly", s)
	}

	stats, err := store.Stats("goldenfly")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.BestRun != 30 {
		t.Errorf("BestRun = %d, expected 30", stats.BestRun)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 60 {
		t.Errorf("TotalScore = %d, expected 60", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
