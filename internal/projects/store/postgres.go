package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps the serialized list in a single-row table, keyed by
// the same well-known key the other backends use. The list stays one opaque
// JSON document; postgres only contributes durability.
type PostgresBackend struct {
	pool *pgxpool.Pool
	key  string
}

// NewPostgresBackend creates a postgres-backed store backend and ensures
// its table exists.
func NewPostgresBackend(ctx context.Context, pool *pgxpool.Pool, key string) (*PostgresBackend, error) {
	if key == "" {
		key = DefaultKey
	}
	const schema = `
CREATE TABLE IF NOT EXISTS project_lists (
	store_key  TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure project_lists table: %w", err)
	}
	return &PostgresBackend{pool: pool, key: key}, nil
}

func (b *PostgresBackend) Load(ctx context.Context) ([]byte, bool, error) {
	const q = `SELECT payload FROM project_lists WHERE store_key = $1;`
	var data []byte
	err := b.pool.QueryRow(ctx, q, b.key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *PostgresBackend) Save(ctx context.Context, data []byte) error {
	const q = `
INSERT INTO project_lists (store_key, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (store_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now();
`
	_, err := b.pool.Exec(ctx, q, b.key, data)
	return err
}
