package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carediary/utils"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS daily_logs (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore keeps one row per storage key in a local database file.
type SQLiteStore struct {
	DB *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return &SQLiteStore{DB: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	timer := utils.TrackDBOperation("get", s.Backend())
	defer timer.ObserveDuration()

	var value []byte
	err := s.DB.QueryRowContext(ctx, "SELECT value FROM daily_logs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", "sqlite_get_failed")
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	timer := utils.TrackDBOperation("put", s.Backend())
	defer timer.ObserveDuration()

	_, err := s.DB.ExecContext(ctx, `
INSERT INTO daily_logs (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		utils.TrackError("database", "sqlite_put_failed")
		return err
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLiteStore) Close(context.Context) error {
	return s.DB.Close()
}

func (s *SQLiteStore) Backend() string { return "sqlite" }
