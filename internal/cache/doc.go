/*
Package cache implements the tiered offline cache behind the assistant's
instant answers.

The cache keeps a bounded in-memory LRU map in front of a persistent entry
store, with similarity-based fuzzy matching so a rephrased question can still
hit a cached answer while offline.

# Cache Architecture

Lookups fall through three tiers, cheapest first:

	┌─────────────────────────────────────────────┐
	│           Assistant Service                 │
	│            (FindMatch call)                 │
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│            Exact memory hit                 │
	│   normalized key → entry, similarity 1.0    │
	└─────────────────────────────────────────────┘
	                      │ miss
	┌─────────────────────────────────────────────┐
	│          Indexed fuzzy candidates           │
	│  query-word index → similarity scoring →    │
	│  threshold 0.75 (FAQ) / 0.70 (regular)      │
	└─────────────────────────────────────────────┘
	                      │ miss
	┌─────────────────────────────────────────────┐
	│            Full disk scan                   │
	│  score all persisted entries; promote the   │
	│  winner into memory                         │
	└─────────────────────────────────────────────┘

# Memory Tier and Eviction

The memory map holds at most MemoryCacheSize entries in LRU order. Overflow
evicts the least recently used entries, writing each victim to the persistent
store before removal: eviction relocates data, it never loses it. The three
lookup indexes (query word, FAQ ID, category) are best-effort discoverability
caches, never the source of truth; evicted entries stay indexed and are found
again through the disk scan.

# Initialization and Lazy Loading

Initialize preloads the highest-priority entries (FAQ first, then by access
count) into memory and seeds the built-in FAQ corpus into an empty store.
The remaining disk entries are indexed by a background task in small batches
with a scheduler yield in between, so a large cache never blocks foreground
lookups. The background task touches only the indexes, never the memory map
or LRU list, so it cannot race destructively with eviction.

# Compression

Responses longer than CompressionThreshold are gzip-compressed and base64
encoded; the compressed form is kept only when it beats
CompressionRatioThreshold. Decompression restores the exact original string.
A stored payload that fails to decompress is corrupt and is treated as a
miss, never returned as answer text.

# Persistence and Debouncing

Every disk write rewrites the full entry collection, so writes are debounced:
metadata counters after 5s of quiet, access-stat updates after 10s. Updates
pending inside a debounce window are lost on process exit, an accepted
tradeoff for a cache that is rebuildable from its seed corpus.

# Error Policy

The cache is best-effort infrastructure for an optional offline-assist
feature. No public method surfaces an internal fault: lookups degrade to
misses, writes to logged no-ops.
*/
package cache
