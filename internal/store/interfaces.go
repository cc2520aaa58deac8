package store

import "context"

// ConfigRepository persists configuration documents keyed by name. The
// store server uses a single well-known key, but the schema allows several
// sites to share one database.
type ConfigRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
