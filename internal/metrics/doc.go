/*
Package metrics provides Prometheus metrics collection for assistcache.

# Overview

The metrics package exports the cache manager's activity as Prometheus
metrics: hits by lookup tier, misses, LRU evictions, bytes saved by
response compression, and entry count gauges. The collector plugs into
the cache manager through its MetricsRecorder interface.

Architecture

	┌─────────────┐
	│  Collector  │  ← Implements cache.MetricsRecorder
	└──────┬──────┘
	       │
	   ┌───┴────────────────────────────┐
	   │                                │
	┌──▼───────────┐         ┌─────────▼──────┐
	│  Prometheus  │         │ HTTP Endpoints │
	│   Registry   │         │  /metrics      │
	│              │         │  /health       │
	│ - Counters   │         └────────────────┘
	│ - Gauges     │
	└──────────────┘

# Usage

	collector, err := metrics.NewCollector(&metrics.Config{
		Enabled:   true,
		Addr:      ":9090",
		Path:      "/metrics",
		Namespace: "assistcache",
	})
	if err != nil {
		log.Fatal(err)
	}

	manager.AttachMetrics(collector)

	if err := collector.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer collector.Stop(ctx)

# Exported Metrics

	assistcache_cache_hits_total{tier="memory|index|disk"}
	assistcache_cache_misses_total
	assistcache_cache_evictions_total
	assistcache_compression_saved_bytes_total
	assistcache_memory_entries
	assistcache_total_entries

A disabled collector (Config.Enabled false) registers nothing and turns
every recording method into a no-op, so call sites never branch on the
metrics setting.
*/
package metrics
