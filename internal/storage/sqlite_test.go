package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
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

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.spacytrade/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".spacytrade", "scores.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}
	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 4200, 900} {
		if _, err := store.SaveScore("spacytrade", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("spacytrade_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("spacytrade", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 4200 || scores[1].Score != 900 || scores[2].Score != 200 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	classic, err := store.TopScores("spacytrade_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("spacytrade")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("spacytrade", 100)
	store.SaveScore("spacytrade", 300)
	store.SaveScore("spacytrade", 200)

	high, err = store.HighScore("spacytrade")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		Variant:   "spacytrade",
		Seed:      42,
		Ticks:     5400,
		TickRate:  60,
		FinalCash: -100,
		Revenue:   12600,
		Harvested: 31,
		Decayed:   4,
		Reason:    "bankrupt",
		Journal:   "/tmp/run.jsonl.zst",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveRun() should assign a run ID")
	}

	r, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("saved run not found")
	}
	if r.Seed != 42 || r.Ticks != 5400 || r.TickRate != 60 || r.FinalCash != -100 || r.Revenue != 12600 ||
		r.Harvested != 31 || r.Decayed != 4 || r.Reason != "bankrupt" || r.Journal != "/tmp/run.jsonl.zst" {
		t.Errorf("RunByID() = %+v", r)
	}

	if got := r.Duration(); got != 90*time.Second {
		t.Errorf("Duration() = %v, want 1m30s", got)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %+v, %v", missing, err)
	}

	if _, err := store.SaveRun(RunRecord{RunID: id, Variant: "spacytrade", Reason: "quit"}); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Variant: "spacytrade", Ticks: int64(i), Reason: "quit"})
	}
	store.SaveRun(RunRecord{Variant: "spacytrade_classic", Reason: "quit"})

	runs, err := store.RecentRuns("spacytrade", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Ticks != 4 || runs[2].Ticks != 2 {
		t.Errorf("runs not newest first: %+v", runs)
	}

	all, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 runs across variants, got %d", len(all))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("spacytrade")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{Variant: "spacytrade", Ticks: 100, Revenue: 500, Reason: "bankrupt"})
	store.SaveRun(RunRecord{Variant: "spacytrade", Ticks: 900, Revenue: 4200, Reason: "quit"})
	store.SaveRun(RunRecord{Variant: "spacytrade", Ticks: 300, Revenue: 1000, Reason: "bankrupt"})
	store.SaveRun(RunRecord{Variant: "spacytrade", Ticks: 1200, TickRate: 60, Reason: "quit"})

	stats, err := store.GetGameStats("spacytrade")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	// 900 ticks at the default rate outlast 1200 ticks at 60 per second.
	if stats.RunsCount != 4 || stats.BestRevenue != 4200 || stats.TotalRevenue != 5700 ||
		stats.Bankruptcies != 2 || stats.LongestRun != 30*time.Second {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestTicksDuration(t *testing.T) {
	tests := []struct {
		name     string
		ticks    int64
		tickRate int
		want     time.Duration
	}{
		{"default rate", 5400, 30, 3 * time.Minute},
		{"fast rate", 5400, 60, 90 * time.Second},
		{"slow rate", 50, 10, 5 * time.Second},
		{"unset rate", 90, 0, 3 * time.Second},
		{"zero ticks", 0, 60, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TicksDuration(tt.ticks, tt.tickRate); got != tt.want {
				t.Errorf("TicksDuration(%d, %d) = %v, want %v", tt.ticks, tt.tickRate, got, tt.want)
			}
		})
	}
}

func TestStoreMigratesLegacyRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			final_cash INTEGER NOT NULL DEFAULT 0,
			revenue INTEGER NOT NULL DEFAULT 0,
			harvested INTEGER NOT NULL DEFAULT 0,
			decayed INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			journal TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO runs (run_id, variant, ticks, reason) VALUES ('old', 'spacytrade', 1800, 'quit');
	`)
	db.Close()
	if err != nil {
		t.Fatalf("legacy schema failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on legacy database failed: %v", err)
	}
	defer store.Close()

	r, err := store.RunByID("old")
	if err != nil || r == nil {
		t.Fatalf("RunByID() = %+v, %v", r, err)
	}
	if r.TickRate != DefaultTickRate || r.Duration() != time.Minute {
		t.Errorf("legacy run tick rate = %d, duration = %v", r.TickRate, r.Duration())
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("spacytrade", 100)
	store.SaveRun(RunRecord{Variant: "spacytrade", Reason: "quit"})
	store.SaveScore("spacytrade_classic", 300)

	if err := store.ClearScores("spacytrade"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("spacytrade", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if runs, _ := store.RecentRuns("spacytrade", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if scores, _ := store.TopScores("spacytrade_classic", 10); len(scores) != 1 {
		t.Error("Other variants should not be affected by clearing")
	}
}
