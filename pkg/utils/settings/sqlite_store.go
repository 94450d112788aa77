package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when no record has been saved under the key yet.
var ErrNotFound = errors.New("settings: record not found")

// SQLiteConfig configures the settings database.
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps everything in process.
	Path            string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// OpenSQLite opens the settings database and makes sure the table exists.
func OpenSQLite(ctx context.Context, cfg SQLiteConfig) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("open sqlite: path must not be empty")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// a single writer, and ":memory:" is per connection
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the key/value table holding settings records.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SQLiteStore keeps one settings record under a fixed key.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// NewSQLiteStore returns a store for the record named key (DefaultKey if empty).
func NewSQLiteStore(db *sql.DB, key string) *SQLiteStore {
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteStore{db: db, key: key}
}

// Key returns the record name.
func (s *SQLiteStore) Key() string { return s.key }

// LoadRaw returns the stored bytes, or ErrNotFound.
func (s *SQLiteStore) LoadRaw(ctx context.Context) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select settings %q: %w", s.key, err)
	}
	return []byte(value), nil
}

// SaveRaw replaces the stored bytes.
func (s *SQLiteStore) SaveRaw(ctx context.Context, data []byte) error {
	const upsert = `
INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
`
	if _, err := s.db.ExecContext(ctx, upsert, s.key, string(data)); err != nil {
		return fmt.Errorf("upsert settings %q: %w", s.key, err)
	}
	return nil
}

// Load reads and normalizes the record. An empty record counts as not found.
func (s *SQLiteStore) Load(ctx context.Context) (Settings, error) {
	data, err := s.LoadRaw(ctx)
	if err != nil {
		return Settings{}, err
	}
	if len(data) == 0 {
		return Settings{}, ErrNotFound
	}
	return Decode(data)
}

// Save writes the whole record in one statement.
func (s *SQLiteStore) Save(ctx context.Context, v Settings) error {
	data, err := Encode(v)
	if err != nil {
		return err
	}
	return s.SaveRaw(ctx, data)
}
