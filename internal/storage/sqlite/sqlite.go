// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/members/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	search storage.SearchOptions
}

// Option configures a SQLiteStore.
type Option func(*SQLiteStore)

// WithSearchOptions sets how SearchMembers matches names.
func WithSearchOptions(opts storage.SearchOptions) Option {
	return func(s *SQLiteStore) {
		s.search = opts
	}
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and ensures the schema exists.
func New(dbPath string, opts ...Option) (*SQLiteStore, error) {
	s := &SQLiteStore{search: storage.DefaultSearchOptions()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.search.Validate(); err != nil {
		return nil, err
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One long-lived handle for the whole session.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s.db = db
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
