package postgres

import (
	"context"
	"database/sql"

	"docdraft/internal/repository"
)

// KeyValuePostgres is a PostgreSQL implementation of repository.KeyValueRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type KeyValuePostgres struct {
	db *sql.DB
}

// NewKeyValuePostgres creates a new KeyValuePostgres repository.
func NewKeyValuePostgres(db *sql.DB) *KeyValuePostgres {
	return &KeyValuePostgres{db: db}
}

var _ repository.KeyValueRepository = (*KeyValuePostgres)(nil)

// Get fetches the value stored under key.
func (r *KeyValuePostgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_store WHERE key = $1`
	var value []byte
	if err := r.db.QueryRowContext(ctx, q, key).Scan(&value); err != nil {
		return nil, err
	}
	return value, nil
}

// Put upserts the value and bumps updated_at.
func (r *KeyValuePostgres) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

// Delete removes key. It does not return an error if the key does not exist.
func (r *KeyValuePostgres) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_store WHERE key = $1`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
