package cache

import (
	"container/list"
	"context"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecocart/assistcache/internal/faq"
	"github.com/ecocart/assistcache/internal/similarity"
	"github.com/ecocart/assistcache/internal/store"
	"github.com/ecocart/assistcache/pkg/types"
)

// Default tuning values. Thresholds are asymmetric on purpose: FAQ answers
// are curated content, so a fuzzy hit must be more certain before we serve
// one in place of a live answer.
const (
	DefaultMemoryCacheSize    = 100
	DefaultFAQThreshold       = 0.75
	DefaultRegularThreshold   = 0.70
	DefaultMetadataFlushDelay = 5 * time.Second
	DefaultAccessFlushDelay   = 10 * time.Second
	DefaultLazyLoadBatchSize  = 20
)

// Config represents cache manager configuration.
type Config struct {
	MemoryCacheSize    int           `yaml:"memory_cache_size"`
	FAQThreshold       float64       `yaml:"faq_threshold"`
	RegularThreshold   float64       `yaml:"regular_threshold"`
	MetadataFlushDelay time.Duration `yaml:"metadata_flush_delay"`
	AccessFlushDelay   time.Duration `yaml:"access_flush_delay"`
	LazyLoadBatchSize  int           `yaml:"lazy_load_batch_size"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		MemoryCacheSize:    DefaultMemoryCacheSize,
		FAQThreshold:       DefaultFAQThreshold,
		RegularThreshold:   DefaultRegularThreshold,
		MetadataFlushDelay: DefaultMetadataFlushDelay,
		AccessFlushDelay:   DefaultAccessFlushDelay,
		LazyLoadBatchSize:  DefaultLazyLoadBatchSize,
	}
}

func (c *Config) applyDefaults() {
	if c.MemoryCacheSize <= 0 {
		c.MemoryCacheSize = DefaultMemoryCacheSize
	}
	if c.FAQThreshold <= 0 {
		c.FAQThreshold = DefaultFAQThreshold
	}
	if c.RegularThreshold <= 0 {
		c.RegularThreshold = DefaultRegularThreshold
	}
	if c.MetadataFlushDelay <= 0 {
		c.MetadataFlushDelay = DefaultMetadataFlushDelay
	}
	if c.AccessFlushDelay <= 0 {
		c.AccessFlushDelay = DefaultAccessFlushDelay
	}
	if c.LazyLoadBatchSize <= 0 {
		c.LazyLoadBatchSize = DefaultLazyLoadBatchSize
	}
}

// MetricsRecorder receives cache events. Implementations must be safe for
// concurrent use; a nil recorder disables metrics.
type MetricsRecorder interface {
	RecordHit(tier string)
	RecordMiss()
	RecordEvictions(count int)
	RecordCompressionSaved(bytes int)
	UpdateEntryCounts(memory, total int)
}

// Lookup tier labels reported to the metrics recorder.
const (
	TierMemory = "memory"
	TierIndex  = "index"
	TierDisk   = "disk"
)

// Manager is the tiered cache: a bounded in-memory LRU map in front of the
// persistent entry store, with three lookup indexes and similarity-based
// fuzzy matching.
//
// The manager is best-effort infrastructure for the offline assist feature:
// no public method ever surfaces an internal fault. Lookups degrade to
// misses and writes to logged no-ops, so a broken cache can never break the
// chat flow that calls it.
type Manager struct {
	mu      sync.Mutex
	config  *Config
	store   *store.EntryStore
	logger  zerolog.Logger
	metrics MetricsRecorder

	// Memory tier: entry map plus LRU order list (front = most recent).
	entries   map[string]*types.CacheEntry
	evictList *list.List
	elements  map[string]*list.Element

	// Indexes are best-effort discoverability caches, never the source of
	// truth. Evicted entries stay indexed; lookups check the memory map.
	queryIndex    map[string][]string
	faqIndex      map[string]*types.CacheEntry
	categoryIndex map[string][]string

	meta      types.CacheMetadata
	hits      uint64
	misses    uint64
	evictions uint64

	initialized bool
	fullyLoaded bool

	// Keys with access-stat updates not yet flushed to disk.
	dirty map[string]struct{}

	metaDebounce  *Debouncer
	entryDebounce *Debouncer
}

// lruKey is the value stored in the eviction list.
type lruKey struct {
	key string
}

// NewManager creates an uninitialized cache manager over the given entry
// store. Call Initialize before use; other public methods do so lazily.
func NewManager(entryStore *store.EntryStore, config *Config, logger zerolog.Logger) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	config.applyDefaults()

	m := &Manager{
		config:        config,
		store:         entryStore,
		logger:        logger.With().Str("component", "assist_cache").Logger(),
		entries:       make(map[string]*types.CacheEntry),
		evictList:     list.New(),
		elements:      make(map[string]*list.Element),
		queryIndex:    make(map[string][]string),
		faqIndex:      make(map[string]*types.CacheEntry),
		categoryIndex: make(map[string][]string),
		dirty:         make(map[string]struct{}),
		metaDebounce:  NewDebouncer(config.MetadataFlushDelay),
		entryDebounce: NewDebouncer(config.AccessFlushDelay),
	}
	return m
}

// AttachMetrics wires a metrics recorder. Must be called before Initialize.
func (m *Manager) AttachMetrics(rec MetricsRecorder) {
	m.metrics = rec
}

// Initialize loads metadata, preloads the highest-priority entries into
// memory, builds the lookup indexes, and seeds default content when the
// store is empty. Idempotent and safe to call multiple times; the remaining
// disk entries are indexed by a background task after Initialize returns.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return nil
	}

	m.resetStateLocked()
	m.meta = m.store.LoadMetadata(ctx)

	diskEntries := m.store.LoadEntries(ctx)
	if len(diskEntries) == 0 {
		diskEntries = defaultSeedEntries()
		m.store.SaveEntries(ctx, diskEntries)
		m.meta = recountMetadata(diskEntries)
		m.store.SaveMetadata(ctx, m.meta)
		m.logger.Info().Int("entries", len(diskEntries)).Msg("seeded default cache content")
	}

	// Preload highest-priority entries into memory: FAQ entries first, then
	// by access count, most recently accessed on ties.
	preload := make([]types.CacheEntry, len(diskEntries))
	copy(preload, diskEntries)
	sort.SliceStable(preload, func(i, j int) bool {
		fi, fj := isFAQEntry(&preload[i]), isFAQEntry(&preload[j])
		if fi != fj {
			return fi
		}
		if preload[i].AccessCount != preload[j].AccessCount {
			return preload[i].AccessCount > preload[j].AccessCount
		}
		return preload[i].LastAccessed > preload[j].LastAccessed
	})
	for i := range preload {
		if i >= m.config.MemoryCacheSize {
			break
		}
		entry := preload[i]
		m.insertMemoryLocked(keyFor(types.NormalizeQuery(entry.Query)), &entry)
	}

	m.initialized = true
	m.fullyLoaded = false
	memoryCount := len(m.entries)
	total := m.meta.TotalEntries
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.UpdateEntryCounts(memoryCount, total)
	}
	m.logger.Debug().Int("memory_entries", memoryCount).Int("total_entries", total).Msg("cache initialized")

	// Fire-and-forget: index the rest of the disk entries without blocking
	// callers.
	go m.lazyLoadRemainingEntries()

	return nil
}

// FindMatch looks up the best cached answer for the query: exact normalized
// match in memory, then indexed fuzzy candidates, then a full disk scan.
// Returns nil on miss. Internal faults are treated as misses, never errors.
func (m *Manager) FindMatch(ctx context.Context, query string) (match *types.CacheMatch) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Interface("panic", r).Str("query", query).Msg("cache lookup panicked; treating as miss")
			match = nil
		}
	}()

	if err := m.Initialize(ctx); err != nil {
		return nil
	}

	normalized := types.NormalizeQuery(query)
	key := keyFor(normalized)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage 1: exact normalized-key hit in memory.
	if entry, ok := m.entries[key]; ok {
		if match, ok := m.matchFromEntryLocked(key, entry, 1.0); ok {
			m.recordHitLocked(key, entry, TierMemory)
			return match
		}
	}

	// Stage 2: indexed candidates scored by similarity.
	if key, entry, score := m.bestIndexedCandidateLocked(normalized); entry != nil {
		if match, ok := m.matchFromEntryLocked(key, entry, score); ok {
			m.recordHitLocked(key, entry, TierIndex)
			return match
		}
	}

	// Stage 3: full disk scan, promoting a winner into memory.
	if match := m.diskScanLocked(ctx, normalized); match != nil {
		return match
	}

	m.misses++
	if m.metrics != nil {
		m.metrics.RecordMiss()
	}
	return nil
}

// FindFAQMatch filters FindMatch results to FAQ-sourced hits and resolves
// the answer against the static FAQ dataset by ID. Returns nil when the best
// match is not an FAQ or the ID is unknown.
func (m *Manager) FindFAQMatch(ctx context.Context, query string) *types.FAQItem {
	match := m.FindMatch(ctx, query)
	if match == nil || !match.IsFAQ || match.FAQID == "" {
		return nil
	}
	return faq.ByID(match.FAQID)
}

// SaveResponse stores an answer under the query's normalized key,
// compressing large responses, updating indexes and metadata counters, and
// scheduling debounced persistence. A failed save never surfaces to the
// caller.
func (m *Manager) SaveResponse(ctx context.Context, query, response string, metadata *types.EntryMetadata) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().Interface("panic", r).Str("query", query).Msg("cache write panicked; dropping entry")
		}
	}()

	if err := m.Initialize(ctx); err != nil {
		return
	}

	now := time.Now().UnixMilli()
	meta := metadata.Clone()
	if meta == nil {
		meta = &types.EntryMetadata{}
	}
	if meta.Source == "" {
		meta.Source = sourceAssistant
	}

	stored := response
	if len(response) > CompressionThreshold {
		if encoded, ok := compressResponse(response); ok {
			stored = encoded
			meta.Compressed = true
			meta.OriginalSize = len(response)
			if m.metrics != nil {
				m.metrics.RecordCompressionSaved(len(response) - len(encoded))
			}
		}
	}

	entry := &types.CacheEntry{
		Query:        query,
		Response:     stored,
		Timestamp:    now,
		AccessCount:  1,
		LastAccessed: now,
		Metadata:     meta,
	}

	m.mu.Lock()
	key := keyFor(types.NormalizeQuery(query))
	_, existed := m.entries[key]
	if existed {
		m.entries[key] = entry
		m.evictList.MoveToFront(m.elements[key])
		m.addToIndexesLocked(key, entry)
	} else {
		m.insertMemoryLocked(key, entry)
		m.meta.TotalEntries++
		if isFAQEntry(entry) {
			m.meta.FAQEntries++
		} else {
			m.meta.RegularEntries++
		}
	}
	m.dirty[key] = struct{}{}
	m.enforceCapacityLocked(ctx)
	memoryCount := len(m.entries)
	total := m.meta.TotalEntries
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.UpdateEntryCounts(memoryCount, total)
	}
	m.entryDebounce.Schedule(m.flushDirtyEntries)
	m.metaDebounce.Schedule(m.flushMetadata)
}

// ClearCache wipes memory, indexes, the disk store, and metadata counters.
// The manager returns to the uninitialized state; the next call re-runs
// Initialize (which re-seeds the default content).
func (m *Manager) ClearCache(ctx context.Context) error {
	m.metaDebounce.CancelPending()
	m.entryDebounce.CancelPending()

	m.mu.Lock()
	m.resetStateLocked()
	m.initialized = false
	m.fullyLoaded = false
	m.mu.Unlock()

	m.store.Clear(ctx)
	if m.metrics != nil {
		m.metrics.UpdateEntryCounts(0, 0)
	}
	m.logger.Info().Msg("cache cleared")
	return nil
}

// RefreshCache drops the initialized flag and re-runs Initialize, picking up
// externally-changed seed data.
func (m *Manager) RefreshCache(ctx context.Context) error {
	m.mu.Lock()
	m.initialized = false
	m.mu.Unlock()
	return m.Initialize(ctx)
}

// Stats returns a diagnostic snapshot.
func (m *Manager) Stats() types.CacheStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := types.CacheStats{
		MemoryEntries:     len(m.entries),
		TotalEntries:      m.meta.TotalEntries,
		FAQEntries:        m.meta.FAQEntries,
		RegularEntries:    m.meta.RegularEntries,
		QueryIndexSize:    len(m.queryIndex),
		FAQIndexSize:      len(m.faqIndex),
		CategoryIndexSize: len(m.categoryIndex),
		Hits:              m.hits,
		Misses:            m.misses,
		Evictions:         m.evictions,
		Initialized:       m.initialized,
		FullyLoaded:       m.fullyLoaded,
	}
	total := stats.Hits + stats.Misses
	if total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total)
	}
	return stats
}

// Close cancels pending debounced work and performs one best-effort final
// flush. Pending updates inside a debounce window are otherwise lost on
// process exit; the cache is rebuildable from the seed corpus, so that is an
// accepted tradeoff rather than a bug.
func (m *Manager) Close() error {
	m.metaDebounce.CancelPending()
	m.entryDebounce.CancelPending()
	m.flushDirtyEntries()
	m.flushMetadata()
	return nil
}

// Lookup stages

// bestIndexedCandidateLocked collects candidate keys whose indexed
// normalized query contains any word (longer than two characters) of the
// input, scores the candidates present in memory, and returns the best one
// passing its threshold. Ties keep the first candidate found.
func (m *Manager) bestIndexedCandidateLocked(normalized string) (string, *types.CacheEntry, float64) {
	words := indexWords(normalized)
	if len(words) == 0 {
		return "", nil, 0
	}

	candidates := make(map[string]struct{})
	for indexedQuery, keys := range m.queryIndex {
		for _, w := range words {
			if strings.Contains(indexedQuery, w) {
				for _, k := range keys {
					candidates[k] = struct{}{}
				}
				break
			}
		}
	}

	var (
		bestKey   string
		bestEntry *types.CacheEntry
		bestScore float64
	)
	for k := range candidates {
		entry, ok := m.entries[k]
		if !ok {
			// Indexed but evicted from memory; the disk scan covers it.
			continue
		}
		score := similarity.Score(normalized, types.NormalizeQuery(entry.Query))
		if score < m.thresholdFor(entry) {
			continue
		}
		if score > bestScore {
			bestKey, bestEntry, bestScore = k, entry, score
		}
	}
	return bestKey, bestEntry, bestScore
}

// diskScanLocked is the last-resort lookup: score every persisted entry,
// promote the winner into memory, and record the access.
func (m *Manager) diskScanLocked(ctx context.Context, normalized string) *types.CacheMatch {
	diskEntries := m.store.LoadEntries(ctx)
	if len(diskEntries) == 0 {
		return nil
	}

	bestIdx := -1
	bestScore := 0.0
	for i := range diskEntries {
		entry := &diskEntries[i]
		score := similarity.Score(normalized, types.NormalizeQuery(entry.Query))
		if score < m.thresholdFor(entry) {
			continue
		}
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 {
		return nil
	}

	winner := diskEntries[bestIdx]
	key := keyFor(types.NormalizeQuery(winner.Query))
	entry, inMemory := m.entries[key]
	if !inMemory {
		entry = &winner
		m.insertMemoryLocked(key, entry)
		m.enforceCapacityLocked(ctx)
	}

	match, ok := m.matchFromEntryLocked(key, entry, bestScore)
	if !ok {
		return nil
	}
	m.recordHitLocked(key, entry, TierDisk)
	return match
}

// matchFromEntryLocked builds a CacheMatch, decompressing the response when
// needed. A response that fails to decompress is corrupt: the entry is
// dropped from memory and the lookup treated as a miss, rather than handing
// the caller base64 garbage as an answer.
func (m *Manager) matchFromEntryLocked(key string, entry *types.CacheEntry, score float64) (*types.CacheMatch, bool) {
	response := entry.Response
	if entry.Metadata != nil && entry.Metadata.Compressed {
		decompressed, err := decompressResponse(entry.Response)
		if err != nil {
			m.logger.Warn().Err(err).Str("query", entry.Query).Msg("corrupt compressed entry; treating as miss")
			m.removeEntryLocked(key)
			return nil, false
		}
		response = decompressed
	}

	match := &types.CacheMatch{
		Query:      entry.Query,
		Response:   response,
		Similarity: score,
	}
	if entry.Metadata != nil {
		match.IsFAQ = entry.Metadata.IsFAQ
		match.FAQID = entry.Metadata.FAQID
		match.FAQCategory = entry.Metadata.FAQCategory
		match.Source = entry.Metadata.Source
	}
	return match, true
}

// recordHitLocked bumps access stats, refreshes LRU order, and schedules the
// debounced stat flush.
func (m *Manager) recordHitLocked(key string, entry *types.CacheEntry, tier string) {
	entry.AccessCount++
	entry.LastAccessed = time.Now().UnixMilli()
	if el, ok := m.elements[key]; ok {
		m.evictList.MoveToFront(el)
	}
	m.dirty[key] = struct{}{}
	m.hits++
	if m.metrics != nil {
		m.metrics.RecordHit(tier)
	}
	m.entryDebounce.Schedule(m.flushDirtyEntries)
}

func (m *Manager) thresholdFor(entry *types.CacheEntry) float64 {
	if isFAQEntry(entry) {
		return m.config.FAQThreshold
	}
	return m.config.RegularThreshold
}

// Memory tier maintenance

// insertMemoryLocked adds an entry to the memory map, LRU list, and all
// indexes. Callers enforce the capacity bound separately.
func (m *Manager) insertMemoryLocked(key string, entry *types.CacheEntry) {
	if el, ok := m.elements[key]; ok {
		m.evictList.Remove(el)
	}
	m.entries[key] = entry
	m.elements[key] = m.evictList.PushFront(&lruKey{key: key})
	m.addToIndexesLocked(key, entry)
}

// removeEntryLocked drops an entry from the memory map, LRU list, and
// indexes (used only for corrupt entries; eviction keeps index entries).
func (m *Manager) removeEntryLocked(key string) {
	entry, ok := m.entries[key]
	if !ok {
		return
	}
	if el, ok := m.elements[key]; ok {
		m.evictList.Remove(el)
		delete(m.elements, key)
	}
	delete(m.entries, key)
	delete(m.dirty, key)

	normalized := types.NormalizeQuery(entry.Query)
	delete(m.queryIndex, normalized)
	if entry.Metadata != nil {
		if entry.Metadata.FAQID != "" {
			delete(m.faqIndex, entry.Metadata.FAQID)
		}
		if entry.Metadata.FAQCategory != "" {
			category := strings.ToLower(entry.Metadata.FAQCategory)
			m.categoryIndex[category] = removeKey(m.categoryIndex[category], key)
			if len(m.categoryIndex[category]) == 0 {
				delete(m.categoryIndex, category)
			}
		}
	}
}

// enforceCapacityLocked evicts least-recently-used entries down to the
// memory limit. Every victim is written to disk before removal: eviction
// relocates data, it never loses it. Index entries for evicted keys are kept
// so the entries stay discoverable.
func (m *Manager) enforceCapacityLocked(ctx context.Context) {
	overflow := len(m.entries) - m.config.MemoryCacheSize
	if overflow <= 0 {
		return
	}

	victims := make([]types.CacheEntry, 0, overflow)
	victimKeys := make([]string, 0, overflow)
	for len(m.entries)-len(victimKeys) > m.config.MemoryCacheSize {
		el := m.evictList.Back()
		if el == nil {
			break
		}
		key := el.Value.(*lruKey).key
		if entry, ok := m.entries[key]; ok {
			victims = append(victims, *entry)
		}
		victimKeys = append(victimKeys, key)
		m.evictList.Remove(el)
	}

	// Persist before removing from memory.
	m.store.SaveEntries(ctx, victims)

	for _, key := range victimKeys {
		delete(m.entries, key)
		delete(m.elements, key)
		delete(m.dirty, key)
		m.evictions++
	}
	if m.metrics != nil {
		m.metrics.RecordEvictions(len(victimKeys))
	}
	m.logger.Debug().Int("evicted", len(victimKeys)).Msg("memory cache over capacity; relocated entries to disk")
}

// Index maintenance

// addToIndexesLocked records an entry in the query, FAQ, and category
// indexes. Idempotent for repeated inserts of the same key.
func (m *Manager) addToIndexesLocked(key string, entry *types.CacheEntry) {
	normalized := types.NormalizeQuery(entry.Query)
	m.queryIndex[normalized] = appendKey(m.queryIndex[normalized], key)

	if entry.Metadata == nil {
		return
	}
	if entry.Metadata.FAQID != "" {
		m.faqIndex[entry.Metadata.FAQID] = entry
	}
	if entry.Metadata.FAQCategory != "" {
		category := strings.ToLower(entry.Metadata.FAQCategory)
		m.categoryIndex[category] = appendKey(m.categoryIndex[category], key)
	}
}

// Background loading

// lazyLoadRemainingEntries indexes disk entries not resident in memory, in
// small batches with a scheduler yield in between so a multi-hundred-entry
// scan never starves foreground work. It only ever touches the indexes,
// never the memory map or the LRU list, so it cannot race destructively
// with a concurrent save's eviction pass.
func (m *Manager) lazyLoadRemainingEntries() {
	ctx := context.Background()
	diskEntries := m.store.LoadEntries(ctx)

	batch := m.config.LazyLoadBatchSize
	indexed := 0
	for start := 0; start < len(diskEntries); start += batch {
		end := start + batch
		if end > len(diskEntries) {
			end = len(diskEntries)
		}

		m.mu.Lock()
		if !m.initialized {
			// Cleared or refreshed mid-scan; abandon the stale snapshot.
			m.mu.Unlock()
			return
		}
		for i := start; i < end; i++ {
			entry := diskEntries[i]
			key := keyFor(types.NormalizeQuery(entry.Query))
			if _, inMemory := m.entries[key]; inMemory {
				continue
			}
			if entry.Metadata != nil && entry.Metadata.Compressed {
				if _, err := decompressResponse(entry.Response); err != nil {
					m.logger.Warn().Err(err).Str("query", entry.Query).Msg("skipping corrupt entry during lazy load")
					continue
				}
			}
			m.addToIndexesLocked(key, &entry)
			indexed++
		}
		m.mu.Unlock()

		runtime.Gosched()
	}

	m.mu.Lock()
	m.fullyLoaded = true
	m.mu.Unlock()
	m.logger.Debug().Int("indexed", indexed).Msg("lazy load complete")
}

// Debounced persistence

// flushDirtyEntries writes all entries with pending access-stat updates to
// disk in one batch.
func (m *Manager) flushDirtyEntries() {
	m.mu.Lock()
	if len(m.dirty) == 0 {
		m.mu.Unlock()
		return
	}
	batch := make([]types.CacheEntry, 0, len(m.dirty))
	for key := range m.dirty {
		if entry, ok := m.entries[key]; ok {
			batch = append(batch, *entry)
		}
	}
	m.dirty = make(map[string]struct{})
	m.mu.Unlock()

	if len(batch) > 0 {
		m.store.SaveEntries(context.Background(), batch)
	}
}

// flushMetadata persists the running counters.
func (m *Manager) flushMetadata() {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return
	}
	meta := m.meta
	m.mu.Unlock()

	m.store.SaveMetadata(context.Background(), meta)
}

// Helpers

func (m *Manager) resetStateLocked() {
	m.entries = make(map[string]*types.CacheEntry)
	m.evictList = list.New()
	m.elements = make(map[string]*list.Element)
	m.queryIndex = make(map[string][]string)
	m.faqIndex = make(map[string]*types.CacheEntry)
	m.categoryIndex = make(map[string][]string)
	m.dirty = make(map[string]struct{})
	m.meta = types.CacheMetadata{}
}

func keyFor(normalized string) string {
	return "q:" + normalized
}

func isFAQEntry(entry *types.CacheEntry) bool {
	return entry.Metadata != nil && entry.Metadata.IsFAQ
}

// indexWords returns the words of a normalized query usable for candidate
// lookup: anything longer than two characters.
func indexWords(normalized string) []string {
	fields := strings.Fields(normalized)
	words := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			words = append(words, f)
		}
	}
	return words
}

func appendKey(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

func removeKey(keys []string, key string) []string {
	for i, k := range keys {
		if k == key {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}
