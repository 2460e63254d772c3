package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store manages activation journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one delivered activation.
type Entry struct {
	ID          string
	URL         string
	Source      string
	DeliveredAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS activations (
    id           TEXT PRIMARY KEY,
    url          TEXT NOT NULL,
    source       TEXT NOT NULL,
    delivered_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_activations_delivered_at
    ON activations (delivered_at DESC);
`

// Open initializes or connects to the journal database at dir/journal.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, "journal.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends a delivered activation.
func (s *Store) Record(ctx context.Context, id, url, source string) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO activations (id, url, source, delivered_at) VALUES (?, ?, ?, ?)`,
		id, url, source, timestamp,
	); err != nil {
		return fmt.Errorf("insert activation: %w", err)
	}
	return nil
}

// Recent returns up to limit activations, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, url, source, delivered_at FROM activations
         ORDER BY delivered_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query activations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var delivered string
		if err := rows.Scan(&entry.ID, &entry.URL, &entry.Source, &delivered); err != nil {
			return nil, fmt.Errorf("scan activation: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, delivered); parseErr == nil {
			entry.DeliveredAt = parsed
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activations: %w", err)
	}
	return entries, nil
}

// Count returns the total number of recorded activations.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activations: %w", err)
	}
	return count, nil
}
