package kv

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/sevenam/diamondstore/internal/db"
	"github.com/sevenam/diamondstore/internal/store"
)

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS kv_snapshots (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type snapshotRow struct {
	Value string `db:"value"`
}

type PostgresBackend struct {
	db db.DB
}

func NewPostgresBackend(database db.DB) *PostgresBackend {
	return &PostgresBackend{db: database}
}

func (pb *PostgresBackend) Init(ctx context.Context) error {
	if _, err := pb.db.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("failed to create kv_snapshots: %w", err)
	}
	return nil
}

func (pb *PostgresBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := pb.db.Get(ctx, &row, `SELECT value::text AS value FROM kv_snapshots WHERE key = $1`, key)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, store.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (pb *PostgresBackend) Save(ctx context.Context, key string, blob []byte) error {
	_, err := pb.db.Exec(ctx, `
		INSERT INTO kv_snapshots (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(blob))
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
