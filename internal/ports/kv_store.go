package ports

import "context"

// KeyValueStore is the persistent string map backing the session cache and
// the stored credential. Get reports a missing key with domain.ErrKeyNotFound.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	ListKeys(ctx context.Context) ([]string, error)
	DeleteMany(ctx context.Context, keys []string) error
}
