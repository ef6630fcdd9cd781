// Package storage provides the SQLite play journal.
// The journal records per-session statistics only; it never stores board
// state, so a session cannot be resumed from it.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// timeLayout is how timestamps are stored; it sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoLevel is returned when saving a session without a level ID.
var ErrNoLevel = errors.New("storage: session has no level id")

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// Session is one play of one level, from start or restart until the player
// left it.
type Session struct {
	ID        int64
	LevelID   string
	Ticks     uint64
	Moves     int
	Rejected  int
	Pushes    int
	Keys      int
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns how long the session lasted.
func (s Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}

// Summary aggregates all sessions of one level.
type Summary struct {
	LevelID    string
	Sessions   int
	Ticks      uint64
	Moves      int
	Rejected   int
	Pushes     int
	Keys       int
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0,
			pushes INTEGER NOT NULL DEFAULT 0,
			keys INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level_id, ended_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.LevelID == "" {
		return 0, ErrNoLevel
	}
	if sess.EndedAt.IsZero() {
		sess.EndedAt = time.Now()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = sess.EndedAt
	}

	result, err := s.db.Exec(
		`INSERT INTO sessions
		 (level_id, ticks, moves, rejected, pushes, keys, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.LevelID,
		int64(sess.Ticks),
		sess.Moves,
		sess.Rejected,
		sess.Pushes,
		sess.Keys,
		formatTime(sess.StartedAt),
		formatTime(sess.EndedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest sessions, newest first.
// An empty levelID returns sessions of every level.
func (s *Store) RecentSessions(levelID string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, ticks, moves, rejected, pushes, keys, started_at, ended_at
		 FROM sessions
		 WHERE ? = '' OR level_id = ?
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess           Session
			ticks          int64
			started, ended string
		)
		if err := rows.Scan(&sess.ID, &sess.LevelID, &ticks, &sess.Moves, &sess.Rejected,
			&sess.Pushes, &sess.Keys, &started, &ended); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Ticks = uint64(ticks)
		sess.StartedAt = parseTime(started)
		sess.EndedAt = parseTime(ended)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// LevelSummary aggregates every session of one level.
// A level that was never played returns a zero summary.
func (s *Store) LevelSummary(levelID string) (Summary, error) {
	sums, err := s.summaries("WHERE level_id = ?", levelID)
	if err != nil {
		return Summary{}, err
	}
	if len(sums) == 0 {
		return Summary{LevelID: levelID}, nil
	}
	return sums[0], nil
}

// Summaries aggregates sessions for every level that was played, ordered by level ID.
func (s *Store) Summaries() ([]Summary, error) {
	return s.summaries("")
}

func (s *Store) summaries(where string, args ...any) ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), SUM(ticks), SUM(moves), SUM(rejected),
		        SUM(pushes), SUM(keys), MAX(ended_at)
		 FROM sessions `+where+`
		 GROUP BY level_id
		 ORDER BY level_id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summary: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum   Summary
			ticks int64
			last  string
		)
		if err := rows.Scan(&sum.LevelID, &sum.Sessions, &ticks, &sum.Moves, &sum.Rejected,
			&sum.Pushes, &sum.Keys, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary: %w", err)
		}
		sum.Ticks = uint64(ticks)
		sum.LastPlayed = parseTime(last)
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// ClearLevel deletes all sessions of the given level.
func (s *Store) ClearLevel(levelID string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
