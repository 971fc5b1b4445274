package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
)

type sqliteBackend struct {
	db *sql.DB
}

// NewSQLiteStore returns a Store backed by the kv table.
func NewSQLiteStore(db *sql.DB, prefix string, log *zap.Logger) Store {
	return &kvStore{backend: &sqliteBackend{db: db}, prefix: prefix, log: log}
}

func (b *sqliteBackend) get(ctx context.Context, key string) (string, error) {
	var value string
	err := b.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (b *sqliteBackend) set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := b.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}
