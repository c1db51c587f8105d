/*
Package config provides configuration management for assistcache with multi-source support.

This package implements a layered configuration system backed by YAML files and
environment variables, with validation and compiled-in defaults that match the
cache and store packages.

# Configuration Architecture

Multi-source configuration hierarchy with precedence:

	┌─────────────────────────────────────────────┐
	│          Runtime Overrides                  │ ← Highest Priority
	│            (CLI flags)                      │
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│        Environment Variables                │
	│           (ASSISTCACHE_*)                   │
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│         Configuration Files                 │
	│            (YAML format)                    │
	└─────────────────────────────────────────────┘
	                      │
	┌─────────────────────────────────────────────┐
	│           Default Values                    │ ← Lowest Priority
	│        (Compiled-in defaults)               │
	└─────────────────────────────────────────────┘

# Configuration Structure

Global Settings:
- Logging configuration (level, file)

Cache Settings:
- Memory and disk capacity
- Similarity thresholds for FAQ and regular entries
- Debounced flush delays and lazy load batch size

Store Settings:
- Backend selection (file or sqlite)
- Storage paths

Assistant Settings:
- Model, endpoint and credential environment variable
- Fallback behavior when the cache misses

Monitoring Settings:
- Prometheus metrics toggle and listen address

# Usage Examples

Loading configuration:

	// Create with defaults
	cfg := config.NewDefault()

	// Load from file
	if err := cfg.LoadFromFile("/etc/assistcache/config.yaml"); err != nil {
		log.Fatal(err)
	}

	// Apply environment overrides
	if err := cfg.LoadFromEnv(); err != nil {
		log.Fatal(err)
	}

	// Validate the merged result
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
*/
package config
