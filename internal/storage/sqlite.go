// Package storage keeps the score table and the run history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is a single high score record. Score is the run's lifetime
// trade revenue.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RunRecord is the end-of-run history row.
type RunRecord struct {
	ID        int64
	RunID     string // uuid, also names the journal file
	Variant   string
	Seed      int64
	Ticks     int64
	TickRate  int // ticks per second the run was simulated at
	FinalCash int64
	Revenue   int64
	Harvested int
	Decayed   int
	Reason    string // "bankrupt", "quit"
	Journal   string // path of the event journal, empty if none
	CreatedAt time.Time
}

// DefaultTickRate is assumed for runs stored without a tick rate.
const DefaultTickRate = 30

// Duration is the simulated play time of the run.
func (r RunRecord) Duration() time.Duration {
	return TicksDuration(r.Ticks, r.TickRate)
}

// TicksDuration converts a tick count at tickRate ticks per second to time.
// A non-positive rate falls back to DefaultTickRate.
func TicksDuration(ticks int64, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return time.Duration(ticks) * time.Second / time.Duration(tickRate)
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			tick_rate INTEGER NOT NULL DEFAULT 30,
			final_cash INTEGER NOT NULL DEFAULT 0,
			revenue INTEGER NOT NULL DEFAULT 0,
			harvested INTEGER NOT NULL DEFAULT 0,
			decayed INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL,
			journal TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant, id DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return s.addColumn("runs", "tick_rate", "INTEGER NOT NULL DEFAULT 30")
}

// addColumn adds a column to a table created by an older schema.
func (s *Store) addColumn(table, column, decl string) error {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return err
	}
	found := false
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		found = found || name == column
	}
	rows.Close()
	if err := rows.Err(); err != nil || found {
		return err
	}
	_, err = s.db.Exec("ALTER TABLE " + table + " ADD COLUMN " + column + " " + decl)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game, highest first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveRun records a finished run. An empty RunID is filled with a new one.
// Returns the stored run ID.
func (s *Store) SaveRun(r RunRecord) (string, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	}
	if r.TickRate <= 0 {
		r.TickRate = DefaultTickRate
	}
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, variant, seed, ticks, tick_rate, final_cash, revenue, harvested, decayed, reason, journal)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Variant, r.Seed, r.Ticks, r.TickRate, r.FinalCash, r.Revenue,
		r.Harvested, r.Decayed, r.Reason, r.Journal,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.RunID, nil
}

const runColumns = `id, run_id, variant, seed, ticks, tick_rate, final_cash, revenue,
		harvested, decayed, reason, journal, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	err := row.Scan(&r.ID, &r.RunID, &r.Variant, &r.Seed, &r.Ticks, &r.TickRate, &r.FinalCash,
		&r.Revenue, &r.Harvested, &r.Decayed, &r.Reason, &r.Journal, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	r, err := scanRun(s.db.QueryRow(
		"SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// RecentRuns retrieves the most recent runs of a variant, newest first.
// An empty variant lists every variant.
func (s *Store) RecentRuns(variant string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GameStats contains aggregated run statistics for a variant.
type GameStats struct {
	GameID       string
	RunsCount    int
	BestRevenue  int64
	TotalRevenue int64
	Bankruptcies int
	LongestRun   time.Duration
	LastPlayed   time.Time
}

// GetGameStats aggregates the run history of a variant.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any
	var longestMillis int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(revenue), 0), COALESCE(SUM(revenue), 0),
		        COALESCE(SUM(reason = 'bankrupt'), 0), COALESCE(MAX(ticks * 1000 / MAX(tick_rate, 1)), 0), MAX(created_at)
		 FROM runs WHERE variant = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.BestRevenue, &stats.TotalRevenue,
		&stats.Bankruptcies, &longestMillis, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LongestRun = time.Duration(longestMillis) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime accepts both driver time values and SQLite text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
