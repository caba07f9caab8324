// Package storage provides SQLite-based persistence for puzzle completions
// and player preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// PrefZoom is the preference key for the grid zoom level.
const PrefZoom = "zoom"

// LocalPlayer is recorded for games played outside an SSH session.
const LocalPlayer = "local"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Completion is one solved puzzle.
type Completion struct {
	ID        int64
	PuzzleID  string
	Player    string
	Duration  time.Duration
	Words     int
	CreatedAt time.Time
}

// PuzzleStats contains aggregated statistics for one puzzle.
type PuzzleStats struct {
	PuzzleID   string
	Plays      int
	BestTime   time.Duration
	AvgTime    time.Duration
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			duration_ms INTEGER NOT NULL,
			words INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_puzzle ON completions(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(puzzle_id, duration_ms ASC);

		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveCompletion records a solved puzzle and returns the inserted ID.
// A zero CreatedAt means now.
func (s *Store) SaveCompletion(c Completion) (int64, error) {
	if c.PuzzleID == "" {
		return 0, errors.New("storage: completion without puzzle id")
	}
	if c.Player == "" {
		c.Player = LocalPlayer
	}
	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO completions (puzzle_id, player, duration_ms, words, created_at) VALUES (?, ?, ?, ?, ?)",
		c.PuzzleID, c.Player, c.Duration.Milliseconds(), c.Words, created.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestTimes retrieves the fastest N completions for a puzzle.
func (s *Store) BestTimes(puzzleID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, puzzle_id, player, duration_ms, words, created_at
		 FROM completions
		 WHERE puzzle_id = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		puzzleID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		var (
			c         Completion
			ms        int64
			createdAt any
		)
		if err := rows.Scan(&c.ID, &c.PuzzleID, &c.Player, &ms, &c.Words, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Duration = time.Duration(ms) * time.Millisecond
		c.CreatedAt = parseTime(createdAt)
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestTime returns the fastest completion time for a puzzle, or false if
// it was never solved.
func (s *Store) BestTime(puzzleID string) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM completions WHERE puzzle_id = ?",
		puzzleID,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearCompletions deletes all completions for a puzzle.
func (s *Store) ClearCompletions(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

// PuzzleStats retrieves aggregated statistics for a puzzle. A puzzle that
// was never solved returns zero stats.
func (s *Store) PuzzleStats(puzzleID string) (*PuzzleStats, error) {
	var (
		plays     int
		best, avg float64
		last      any
	)
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0), MAX(created_at)
		 FROM completions WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&plays, &best, &avg, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}

	return &PuzzleStats{
		PuzzleID:   puzzleID,
		Plays:      plays,
		BestTime:   msDuration(best),
		AvgTime:    msDuration(avg),
		LastPlayed: parseTime(last),
	}, nil
}

// AllPuzzleStats retrieves statistics for every puzzle that has been solved.
func (s *Store) AllPuzzleStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), MIN(duration_ms), AVG(duration_ms), MAX(created_at)
		 FROM completions
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var (
			ps        PuzzleStats
			best, avg float64
			last      any
		)
		if err := rows.Scan(&ps.PuzzleID, &ps.Plays, &best, &avg, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.BestTime = msDuration(best)
		ps.AvgTime = msDuration(avg)
		ps.LastPlayed = parseTime(last)
		stats[ps.PuzzleID] = &ps
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// SetPreference stores a preference value, replacing any previous one.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preference %s: %w", key, err)
	}
	return nil
}

// Preference returns a stored preference value and whether it exists.
func (s *Store) Preference(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read preference %s: %w", key, err)
	}
	return value, true, nil
}

// IntPreference reads an integer preference. Missing or malformed values
// return def.
func (s *Store) IntPreference(key string, def int) int {
	v, ok, err := s.Preference(key)
	if err != nil || !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// SetIntPreference stores an integer preference.
func (s *Store) SetIntPreference(key string, value int) error {
	return s.SetPreference(key, strconv.Itoa(value))
}

func msDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
