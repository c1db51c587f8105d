/*
Package types provides the core interfaces and data structures shared across
the assist cache.

This package is the foundation for the offline assist subsystem, defining the
contracts between components and the persisted data format.

# Architecture Overview

The cache follows a layered architecture with well-defined interfaces between
components:

	┌─────────────────────────────────────────────┐
	│           Assistant Service                 │
	│          (internal/assistant)               │
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│          Tiered Cache Manager               │
	│            (internal/cache)                 │
	└─────────────────────────────────────────────┘
	          │                     │
	┌─────────┴──────────┐ ┌────────┴────────────┐
	│  Similarity Engine │ │  Persistent Store   │
	│ (internal/         │ │  (internal/store)   │
	│  similarity)       │ │                     │
	└────────────────────┘ └─────────────────────┘

# Data Format

CacheEntry is the persisted record: the full entry collection is serialized as
one JSON array under a single key-value record, with a small CacheMetadata
summary stored under a second key. JSON tags on these structs are a format
contract with data written by earlier app versions and must not change.

Compressed responses are stored as base64-encoded gzip streams with the
original character length kept in EntryMetadata.OriginalSize; decompression
must restore the exact original string.

# Core Interfaces

Cache:
The lookup/write contract consumed by the assistant service. Implementations
are best-effort infrastructure: no error from the cache may ever break the
calling chat flow, so lookups degrade to misses and writes to logged no-ops.
*/
package types
