package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes cache activity as Prometheus metrics. It satisfies the
// cache manager's MetricsRecorder interface; a disabled collector turns every
// method into a no-op so callers never need to branch.
type Collector struct {
	config   *Config
	registry *prometheus.Registry

	hitCounter         *prometheus.CounterVec
	missCounter        prometheus.Counter
	evictionCounter    prometheus.Counter
	compressionSaved   prometheus.Counter
	memoryEntriesGauge prometheus.Gauge
	totalEntriesGauge  prometheus.Gauge

	server *http.Server
}

// Config represents metrics configuration
type Config struct {
	Enabled   bool              `yaml:"enabled"`
	Addr      string            `yaml:"addr"`
	Path      string            `yaml:"path"`
	Labels    map[string]string `yaml:"labels"`
	Namespace string            `yaml:"namespace"`
}

// NewCollector creates a new metrics collector
func NewCollector(config *Config) (*Collector, error) {
	if config == nil {
		config = &Config{
			Enabled:   true,
			Addr:      ":9090",
			Path:      "/metrics",
			Namespace: "assistcache",
			Labels:    make(map[string]string),
		}
	}
	if config.Path == "" {
		config.Path = "/metrics"
	}
	if config.Namespace == "" {
		config.Namespace = "assistcache"
	}

	if !config.Enabled {
		return &Collector{config: config}, nil
	}

	registry := prometheus.NewRegistry()
	collector := &Collector{
		config:   config,
		registry: registry,
	}

	if err := collector.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return collector, nil
}

func (c *Collector) initMetrics() error {
	ns := c.config.Namespace
	labels := c.config.Labels

	c.hitCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "cache_hits_total",
		Help:        "Cache hits by lookup tier",
		ConstLabels: labels,
	}, []string{"tier"})

	c.missCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "cache_misses_total",
		Help:        "Lookups that found no entry above the similarity threshold",
		ConstLabels: labels,
	})

	c.evictionCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "cache_evictions_total",
		Help:        "Entries relocated from memory to disk by LRU pressure",
		ConstLabels: labels,
	})

	c.compressionSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   ns,
		Name:        "compression_saved_bytes_total",
		Help:        "Bytes saved by storing responses compressed",
		ConstLabels: labels,
	})

	c.memoryEntriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   ns,
		Name:        "memory_entries",
		Help:        "Entries currently resident in the memory cache",
		ConstLabels: labels,
	})

	c.totalEntriesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   ns,
		Name:        "total_entries",
		Help:        "Entries tracked across memory and disk",
		ConstLabels: labels,
	})

	collectors := []prometheus.Collector{
		c.hitCounter,
		c.missCounter,
		c.evictionCounter,
		c.compressionSaved,
		c.memoryEntriesGauge,
		c.totalEntriesGauge,
	}
	for _, collector := range collectors {
		if err := c.registry.Register(collector); err != nil {
			return fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return nil
}

// Start starts the metrics endpoint server
func (c *Collector) Start(ctx context.Context) error {
	if !c.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(c.config.Path, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	c.server = &http.Server{
		Addr:              c.config.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	return nil
}

// Stop stops the metrics endpoint server
func (c *Collector) Stop(ctx context.Context) error {
	if c.server != nil {
		return c.server.Shutdown(ctx)
	}
	return nil
}

// RecordHit records a cache hit on the given lookup tier
func (c *Collector) RecordHit(tier string) {
	if !c.config.Enabled {
		return
	}
	c.hitCounter.With(prometheus.Labels{"tier": tier}).Inc()
}

// RecordMiss records a cache miss
func (c *Collector) RecordMiss() {
	if !c.config.Enabled {
		return
	}
	c.missCounter.Inc()
}

// RecordEvictions records entries displaced from the memory cache
func (c *Collector) RecordEvictions(count int) {
	if !c.config.Enabled || count <= 0 {
		return
	}
	c.evictionCounter.Add(float64(count))
}

// RecordCompressionSaved records bytes saved by compressed storage
func (c *Collector) RecordCompressionSaved(bytes int) {
	if !c.config.Enabled || bytes <= 0 {
		return
	}
	c.compressionSaved.Add(float64(bytes))
}

// UpdateEntryCounts updates the entry count gauges
func (c *Collector) UpdateEntryCounts(memory, total int) {
	if !c.config.Enabled {
		return
	}
	c.memoryEntriesGauge.Set(float64(memory))
	c.totalEntriesGauge.Set(float64(total))
}

// Registry exposes the underlying registry for tests and custom handlers
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
