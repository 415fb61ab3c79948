// Package history keeps the recent-documents list in a SQLite database in
// the user-data directory.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const FileName = "history.db"

type Action string

const (
	ActionOpen Action = "open"
	ActionSave Action = "save"
)

type Entry struct {
	Path       string
	App        string
	Action     Action
	AccessedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS recent_documents (
	path        TEXT PRIMARY KEY,
	app         TEXT NOT NULL,
	action      TEXT NOT NULL,
	accessed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_recent_documents_accessed
	ON recent_documents (accessed_at DESC);
`

// Open creates or opens the store inside dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Record upserts e. A zero AccessedAt means now.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Path == "" {
		return errors.New("history entry has no path")
	}
	if e.AccessedAt.IsZero() {
		e.AccessedAt = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO recent_documents (path, app, action, accessed_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(path) DO UPDATE SET
	app = excluded.app,
	action = excluded.action,
	accessed_at = excluded.accessed_at`,
		e.Path, e.App, string(e.Action), e.AccessedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record %s: %w", e.Path, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT path, app, action, accessed_at
FROM recent_documents
ORDER BY accessed_at DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent documents: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			action string
			nanos  int64
		)
		if err := rows.Scan(&e.Path, &e.App, &action, &nanos); err != nil {
			return nil, fmt.Errorf("scan recent document: %w", err)
		}
		e.Action = Action(action)
		e.AccessedAt = time.Unix(0, nanos)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
