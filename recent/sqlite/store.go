// Package sqlite provides a SQLite-backed recent-document store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/iw2rmb/typeout/internal/sqlitemigrate"
	"github.com/iw2rmb/typeout/recent"
	"github.com/iw2rmb/typeout/recent/sqlite/migrations"
)

// Store persists the recent list in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ recent.Store = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, recent.ErrNoPath
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, "."); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load returns stored entries in saved order.
func (s *Store) Load(ctx context.Context) ([]recent.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT name, content, path, opened_at FROM recent_documents ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query recent documents: %w", err)
	}
	defer rows.Close()

	var entries []recent.Entry
	for rows.Next() {
		var (
			e        recent.Entry
			openedAt int64
		)
		if err := rows.Scan(&e.Name, &e.Content, &e.Path, &openedAt); err != nil {
			return nil, fmt.Errorf("scan recent document: %w", err)
		}
		e.Timestamp = fromMillis(openedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent documents: %w", err)
	}
	return entries, nil
}

// Save replaces the stored list in a single transaction.
func (s *Store) Save(ctx context.Context, entries []recent.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM recent_documents`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear recent documents: %w", err)
	}
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recent_documents (name, content, path, opened_at, position)
			 VALUES (?, ?, ?, ?, ?)
			 ON CONFLICT(name) DO NOTHING`,
			e.Name, e.Content, e.Path, toMillis(e.Timestamp), i,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert recent document %q: %w", e.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
