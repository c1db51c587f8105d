package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ecocart/assistcache/internal/cache"
	"github.com/ecocart/assistcache/internal/store"
)

// Configuration represents the complete application configuration
type Configuration struct {
	Global     GlobalConfig     `yaml:"global"`
	Cache      CacheConfig      `yaml:"cache"`
	Store      StoreConfig      `yaml:"store"`
	Assistant  AssistantConfig  `yaml:"assistant"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

// GlobalConfig represents global application settings
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// CacheConfig represents tiered cache configuration
type CacheConfig struct {
	MemoryCacheSize    int           `yaml:"memory_cache_size"`
	DiskCacheSize      int           `yaml:"disk_cache_size"`
	FAQThreshold       float64       `yaml:"faq_threshold"`
	RegularThreshold   float64       `yaml:"regular_threshold"`
	MetadataFlushDelay time.Duration `yaml:"metadata_flush_delay"`
	AccessFlushDelay   time.Duration `yaml:"access_flush_delay"`
	LazyLoadBatchSize  int           `yaml:"lazy_load_batch_size"`
}

// StoreConfig represents persistent store settings
type StoreConfig struct {
	Backend   string `yaml:"backend"`
	Directory string `yaml:"directory"`
	Path      string `yaml:"path"`
}

// AssistantConfig represents assistant fallback settings
type AssistantConfig struct {
	Model         string        `yaml:"model"`
	BaseURL       string        `yaml:"base_url"`
	APIKeyEnv     string        `yaml:"api_key_env"`
	Timeout       time.Duration `yaml:"timeout"`
	SystemPrompt  string        `yaml:"system_prompt"`
	CacheFallback bool          `yaml:"cache_fallback"`
}

// MonitoringConfig represents monitoring settings
type MonitoringConfig struct {
	MetricsEnabled bool              `yaml:"metrics_enabled"`
	MetricsAddr    string            `yaml:"metrics_addr"`
	CustomLabels   map[string]string `yaml:"custom_labels"`
}

// Store backends accepted in StoreConfig.Backend.
const (
	StoreBackendFile   = "file"
	StoreBackendSQLite = "sqlite"
)

// NewDefault returns a configuration with sensible defaults
func NewDefault() *Configuration {
	return &Configuration{
		Global: GlobalConfig{
			LogLevel: "info",
			LogFile:  "",
		},
		Cache: CacheConfig{
			MemoryCacheSize:    cache.DefaultMemoryCacheSize,
			DiskCacheSize:      store.DefaultDiskCacheSize,
			FAQThreshold:       cache.DefaultFAQThreshold,
			RegularThreshold:   cache.DefaultRegularThreshold,
			MetadataFlushDelay: cache.DefaultMetadataFlushDelay,
			AccessFlushDelay:   cache.DefaultAccessFlushDelay,
			LazyLoadBatchSize:  cache.DefaultLazyLoadBatchSize,
		},
		Store: StoreConfig{
			Backend:   StoreBackendFile,
			Directory: defaultStoreDir(),
			Path:      filepath.Join(defaultStoreDir(), "assistcache.db"),
		},
		Assistant: AssistantConfig{
			Model:         "gpt-4o-mini",
			BaseURL:       "",
			APIKeyEnv:     "OPENAI_API_KEY",
			Timeout:       30 * time.Second,
			SystemPrompt:  "You are the EcoCart shopping and recycling assistant. Answer briefly and concretely.",
			CacheFallback: true,
		},
		Monitoring: MonitoringConfig{
			MetricsEnabled: false,
			MetricsAddr:    ":9090",
			CustomLabels: map[string]string{
				"service": "assistcache",
			},
		},
	}
}

func defaultStoreDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "assistcache")
	}
	return ".assistcache"
}

// CacheManagerConfig converts the cache section into the manager's own config
// type. DiskCacheSize is consumed by the entry store, not the manager.
func (c *Configuration) CacheManagerConfig() *cache.Config {
	return &cache.Config{
		MemoryCacheSize:    c.Cache.MemoryCacheSize,
		FAQThreshold:       c.Cache.FAQThreshold,
		RegularThreshold:   c.Cache.RegularThreshold,
		MetadataFlushDelay: c.Cache.MetadataFlushDelay,
		AccessFlushDelay:   c.Cache.AccessFlushDelay,
		LazyLoadBatchSize:  c.Cache.LazyLoadBatchSize,
	}
}

// LoadFromFile loads configuration from a YAML file
func (c *Configuration) LoadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Configuration) LoadFromEnv() error {
	// Global settings
	if val := os.Getenv("ASSISTCACHE_LOG_LEVEL"); val != "" {
		c.Global.LogLevel = val
	}
	if val := os.Getenv("ASSISTCACHE_LOG_FILE"); val != "" {
		c.Global.LogFile = val
	}

	// Cache settings
	if val := os.Getenv("ASSISTCACHE_MEMORY_CACHE_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.Cache.MemoryCacheSize = size
		}
	}
	if val := os.Getenv("ASSISTCACHE_DISK_CACHE_SIZE"); val != "" {
		if size, err := strconv.Atoi(val); err == nil {
			c.Cache.DiskCacheSize = size
		}
	}
	if val := os.Getenv("ASSISTCACHE_METADATA_FLUSH_DELAY"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			c.Cache.MetadataFlushDelay = duration
		}
	}
	if val := os.Getenv("ASSISTCACHE_ACCESS_FLUSH_DELAY"); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			c.Cache.AccessFlushDelay = duration
		}
	}

	// Store settings
	if val := os.Getenv("ASSISTCACHE_STORE_BACKEND"); val != "" {
		c.Store.Backend = strings.ToLower(val)
	}
	if val := os.Getenv("ASSISTCACHE_STORE_DIR"); val != "" {
		c.Store.Directory = val
	}
	if val := os.Getenv("ASSISTCACHE_STORE_PATH"); val != "" {
		c.Store.Path = val
	}

	// Assistant settings
	if val := os.Getenv("ASSISTCACHE_ASSISTANT_MODEL"); val != "" {
		c.Assistant.Model = val
	}
	if val := os.Getenv("ASSISTCACHE_ASSISTANT_BASE_URL"); val != "" {
		c.Assistant.BaseURL = val
	}

	// Monitoring settings
	if val := os.Getenv("ASSISTCACHE_METRICS_ENABLED"); val != "" {
		c.Monitoring.MetricsEnabled = strings.ToLower(val) == "true"
	}
	if val := os.Getenv("ASSISTCACHE_METRICS_ADDR"); val != "" {
		c.Monitoring.MetricsAddr = val
	}

	return nil
}

// SaveToFile saves the configuration to a YAML file
func (c *Configuration) SaveToFile(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Configuration) Validate() error {
	if c.Cache.MemoryCacheSize <= 0 {
		return fmt.Errorf("memory_cache_size must be greater than 0")
	}

	if c.Cache.DiskCacheSize < c.Cache.MemoryCacheSize {
		return fmt.Errorf("disk_cache_size must be at least memory_cache_size")
	}

	if c.Cache.FAQThreshold <= 0 || c.Cache.FAQThreshold > 1 {
		return fmt.Errorf("faq_threshold must be in (0, 1]")
	}

	if c.Cache.RegularThreshold <= 0 || c.Cache.RegularThreshold > 1 {
		return fmt.Errorf("regular_threshold must be in (0, 1]")
	}

	if c.Store.Backend != StoreBackendFile && c.Store.Backend != StoreBackendSQLite {
		return fmt.Errorf("invalid store backend: %s (must be one of: %s, %s)",
			c.Store.Backend, StoreBackendFile, StoreBackendSQLite)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevelValid := false
	for _, level := range validLogLevels {
		if strings.ToLower(c.Global.LogLevel) == level {
			logLevelValid = true
			break
		}
	}
	if !logLevelValid {
		return fmt.Errorf("invalid log_level: %s (must be one of: %s)",
			c.Global.LogLevel, strings.Join(validLogLevels, ", "))
	}

	return nil
}
