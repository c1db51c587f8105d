package store

import "context"

// Persisted record keys. The entry collection and the metadata summary are
// two logical records under the same key-value store.
const (
	DiskCacheKey = "DISK_CACHE"
	MetaInfoKey  = "META_INFO"
)

// KVStore is the durable key-value layer underneath the entry store. A
// missing key is not an error: Get returns (nil, nil).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
