package store

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecocart/assistcache/pkg/types"
)

// DefaultDiskCacheSize bounds how many entries the persisted collection may
// hold before the lowest-priority entries are dropped on write.
const DefaultDiskCacheSize = 1000

// EntryStore persists the full cache entry set as one serialized collection
// under a KVStore, plus a small metadata record under a second key.
//
// Storage is advisory, never fatal: every failure is caught and logged, and
// callers receive empty or default results instead of errors. A cache that
// cannot reach its disk tier still works from memory.
type EntryStore struct {
	kv         KVStore
	maxEntries int
	logger     zerolog.Logger
}

// NewEntryStore wraps a KVStore. maxEntries <= 0 selects the default disk
// capacity of 1000 entries.
func NewEntryStore(kv KVStore, maxEntries int, logger zerolog.Logger) *EntryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultDiskCacheSize
	}
	return &EntryStore{
		kv:         kv,
		maxEntries: maxEntries,
		logger:     logger.With().Str("component", "entry_store").Logger(),
	}
}

// LoadEntries returns the persisted entry collection. Missing or corrupt
// data yields an empty slice.
func (s *EntryStore) LoadEntries(ctx context.Context) []types.CacheEntry {
	data, err := s.kv.Get(ctx, DiskCacheKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read entry collection")
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var entries []types.CacheEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt entry collection; starting empty")
		return nil
	}
	return entries
}

// SaveEntry upserts one entry into the persisted collection by normalized
// query equality. The write is a full read-modify-write of the collection;
// when the capacity bound is exceeded, entries are ranked by priority
// (accessCount desc, lastAccessed desc tiebreak) and the tail is dropped.
//
// Because each call rewrites the whole collection, callers are expected to
// debounce writes rather than flush on every cache hit.
func (s *EntryStore) SaveEntry(ctx context.Context, entry types.CacheEntry) {
	s.SaveEntries(ctx, []types.CacheEntry{entry})
}

// SaveEntries upserts a batch of entries in a single read-modify-write pass.
// Used by the eviction path so relocating a burst of evicted entries costs
// one collection rewrite, not one per entry.
func (s *EntryStore) SaveEntries(ctx context.Context, batch []types.CacheEntry) {
	if len(batch) == 0 {
		return
	}

	entries := s.LoadEntries(ctx)

	for _, entry := range batch {
		normalized := types.NormalizeQuery(entry.Query)
		replaced := false
		for i := range entries {
			if types.NormalizeQuery(entries[i].Query) == normalized {
				entries[i] = entry
				replaced = true
				break
			}
		}
		if !replaced {
			entries = append(entries, entry)
		}
	}

	if len(entries) > s.maxEntries {
		SortByPriority(entries)
		dropped := len(entries) - s.maxEntries
		entries = entries[:s.maxEntries]
		s.logger.Debug().Int("dropped", dropped).Msg("disk cache over capacity; dropped lowest-priority entries")
	}

	data, err := json.Marshal(entries)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to serialize entry collection")
		return
	}
	if err := s.kv.Set(ctx, DiskCacheKey, data); err != nil {
		s.logger.Warn().Err(err).Int("entries", len(entries)).Msg("failed to write entry collection")
	}
}

// LoadMetadata returns the persisted summary record, or a zero value when
// missing or corrupt.
func (s *EntryStore) LoadMetadata(ctx context.Context) types.CacheMetadata {
	data, err := s.kv.Get(ctx, MetaInfoKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read cache metadata")
		return types.CacheMetadata{}
	}
	if len(data) == 0 {
		return types.CacheMetadata{}
	}

	var meta types.CacheMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		s.logger.Warn().Err(err).Msg("corrupt cache metadata; resetting")
		return types.CacheMetadata{}
	}
	return meta
}

// SaveMetadata persists the summary record, stamping LastUpdated.
func (s *EntryStore) SaveMetadata(ctx context.Context, meta types.CacheMetadata) {
	meta.LastUpdated = time.Now().UnixMilli()

	data, err := json.Marshal(meta)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to serialize cache metadata")
		return
	}
	if err := s.kv.Set(ctx, MetaInfoKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write cache metadata")
	}
}

// Clear removes both persisted records.
func (s *EntryStore) Clear(ctx context.Context) {
	if err := s.kv.Delete(ctx, DiskCacheKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete entry collection")
	}
	if err := s.kv.Delete(ctx, MetaInfoKey); err != nil {
		s.logger.Warn().Err(err).Msg("failed to delete cache metadata")
	}
}

// SortByPriority orders entries highest-priority first: accessCount
// descending, ties broken by lastAccessed descending.
func SortByPriority(entries []types.CacheEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].AccessCount != entries[j].AccessCount {
			return entries[i].AccessCount > entries[j].AccessCount
		}
		return entries[i].LastAccessed > entries[j].LastAccessed
	})
}
