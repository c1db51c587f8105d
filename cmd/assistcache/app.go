package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecocart/assistcache/internal/assistant"
	"github.com/ecocart/assistcache/internal/cache"
	"github.com/ecocart/assistcache/internal/config"
	"github.com/ecocart/assistcache/internal/metrics"
	"github.com/ecocart/assistcache/internal/store"
)

// app bundles the wired components behind a CLI command.
type app struct {
	cfg     *config.Configuration
	logger  zerolog.Logger
	kv      store.KVStore
	manager *cache.Manager
	metrics *metrics.Collector
}

// newApp loads configuration and wires the store, cache manager, and
// optional metrics collector. configPath may be empty to run on defaults
// plus environment overrides.
func newApp(configPath string) (*app, error) {
	cfg := config.NewDefault()
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	var kv store.KVStore
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		kv, err = store.NewSQLiteStore(cfg.Store.Path)
	default:
		kv, err = store.NewFileStore(cfg.Store.Directory)
	}
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	entryStore := store.NewEntryStore(kv, cfg.Cache.DiskCacheSize, logger)
	manager := cache.NewManager(entryStore, cfg.CacheManagerConfig(), logger)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		kv:      kv,
		manager: manager,
	}

	if cfg.Monitoring.MetricsEnabled {
		collector, err := metrics.NewCollector(&metrics.Config{
			Enabled:   true,
			Addr:      cfg.Monitoring.MetricsAddr,
			Path:      "/metrics",
			Namespace: "assistcache",
			Labels:    cfg.Monitoring.CustomLabels,
		})
		if err != nil {
			return nil, err
		}
		manager.AttachMetrics(collector)
		a.metrics = collector
	}

	return a, nil
}

// service builds the assistant on top of the cache. offline forces
// cache-only operation even when an API key is available.
func (a *app) service(offline bool, modelOverride string) *assistant.Service {
	model := a.cfg.Assistant.Model
	if modelOverride != "" {
		model = modelOverride
	}

	var client assistant.ChatClient
	if !offline {
		if apiKey := os.Getenv(a.cfg.Assistant.APIKeyEnv); apiKey != "" {
			client = assistant.NewOpenAIClient(apiKey, a.cfg.Assistant.BaseURL)
		}
	}

	return assistant.NewService(a.manager, client, assistant.Config{
		Model:        model,
		SystemPrompt: a.cfg.Assistant.SystemPrompt,
		CacheAnswers: a.cfg.Assistant.CacheFallback,
	}, a.logger)
}

func (a *app) close() {
	_ = a.manager.Close()
	_ = a.kv.Close()
}

func newLogger(cfg *config.Configuration) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Global.LogLevel))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
	}

	var out = os.Stderr
	if cfg.Global.LogFile != "" {
		f, err := os.OpenFile(cfg.Global.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: out}).
		Level(level).
		With().Timestamp().Logger(), nil
}
