package repository

import "context"

// KeyValueRepository stores opaque JSON values under fixed keys.
// Implementations only persist bytes; callers own the encoding.
type KeyValueRepository interface {
	// Get returns the value stored under key, or sql.ErrNoRows.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put inserts or replaces the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. It returns nil if the key did not exist.
	Delete(ctx context.Context, key string) error
}
