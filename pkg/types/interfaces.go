package types

import "context"

// Cache defines the lookup/write contract consumed by the assistant service.
// Implementations never surface internal faults: a failed lookup is a miss
// (nil match) and a failed write is a logged no-op.
type Cache interface {
	Initialize(ctx context.Context) error
	FindMatch(ctx context.Context, query string) *CacheMatch
	FindFAQMatch(ctx context.Context, query string) *FAQItem
	SaveResponse(ctx context.Context, query, response string, metadata *EntryMetadata)
	ClearCache(ctx context.Context) error
	RefreshCache(ctx context.Context) error
	Stats() CacheStats
}
