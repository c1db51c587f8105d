package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ecocart/assistcache/internal/cache"
)

func TestNewCollector(t *testing.T) {
	t.Parallel()

	t.Run("with valid config", func(t *testing.T) {
		config := &Config{
			Enabled:   true,
			Addr:      ":9090",
			Path:      "/metrics",
			Namespace: "assistcache",
		}
		collector, err := NewCollector(config)
		if err != nil {
			t.Fatalf("NewCollector() error = %v, want nil", err)
		}
		if collector == nil {
			t.Fatal("NewCollector() returned nil collector")
		}
		if collector.config != config {
			t.Error("collector.config does not match input config")
		}
		if collector.registry == nil {
			t.Error("collector.registry is nil")
		}
	})

	t.Run("with nil config uses defaults", func(t *testing.T) {
		collector, err := NewCollector(nil)
		if err != nil {
			t.Fatalf("NewCollector(nil) error = %v, want nil", err)
		}
		if collector.config == nil {
			t.Fatal("default config is nil")
		}
		if collector.config.Addr != ":9090" {
			t.Errorf("default addr = %q, want %q", collector.config.Addr, ":9090")
		}
		if collector.config.Path != "/metrics" {
			t.Errorf("default path = %q, want %q", collector.config.Path, "/metrics")
		}
		if collector.config.Namespace != "assistcache" {
			t.Errorf("default namespace = %q, want %q", collector.config.Namespace, "assistcache")
		}
	})

	t.Run("with disabled config", func(t *testing.T) {
		collector, err := NewCollector(&Config{Enabled: false})
		if err != nil {
			t.Fatalf("NewCollector() error = %v, want nil", err)
		}
		if collector.registry != nil {
			t.Error("disabled collector should not have registry")
		}

		// Disabled collector methods must be safe no-ops
		collector.RecordHit(cache.TierMemory)
		collector.RecordMiss()
		collector.RecordEvictions(3)
		collector.RecordCompressionSaved(100)
		collector.UpdateEntryCounts(5, 10)
	})
}

func TestCollector_ImplementsMetricsRecorder(t *testing.T) {
	t.Parallel()

	var _ cache.MetricsRecorder = (*Collector)(nil)
}

func TestRecordHit(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{Enabled: true, Namespace: "test"})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordHit(cache.TierMemory)
	collector.RecordHit(cache.TierMemory)
	collector.RecordHit(cache.TierDisk)

	memHits := testutil.ToFloat64(collector.hitCounter.WithLabelValues(cache.TierMemory))
	if memHits != 2 {
		t.Errorf("memory tier hits = %v, want 2", memHits)
	}
	diskHits := testutil.ToFloat64(collector.hitCounter.WithLabelValues(cache.TierDisk))
	if diskHits != 1 {
		t.Errorf("disk tier hits = %v, want 1", diskHits)
	}
}

func TestRecordMissAndEvictions(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{Enabled: true, Namespace: "test"})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordMiss()
	collector.RecordMiss()
	collector.RecordEvictions(4)
	collector.RecordEvictions(0)
	collector.RecordEvictions(-1)

	if got := testutil.ToFloat64(collector.missCounter); got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.evictionCounter); got != 4 {
		t.Errorf("evictions = %v, want 4", got)
	}
}

func TestRecordCompressionSaved(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{Enabled: true, Namespace: "test"})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordCompressionSaved(150)
	collector.RecordCompressionSaved(50)
	collector.RecordCompressionSaved(-10)

	if got := testutil.ToFloat64(collector.compressionSaved); got != 200 {
		t.Errorf("compression saved bytes = %v, want 200", got)
	}
}

func TestUpdateEntryCounts(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{Enabled: true, Namespace: "test"})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.UpdateEntryCounts(10, 120)
	collector.UpdateEntryCounts(8, 115)

	if got := testutil.ToFloat64(collector.memoryEntriesGauge); got != 8 {
		t.Errorf("memory entries gauge = %v, want 8", got)
	}
	if got := testutil.ToFloat64(collector.totalEntriesGauge); got != 115 {
		t.Errorf("total entries gauge = %v, want 115", got)
	}
}

func TestCollector_CustomLabels(t *testing.T) {
	t.Parallel()

	collector, err := NewCollector(&Config{
		Enabled:   true,
		Namespace: "test",
		Labels:    map[string]string{"service": "assistcache"},
	})
	if err != nil {
		t.Fatalf("NewCollector() error = %v", err)
	}

	collector.RecordMiss()

	families, err := collector.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, fam := range families {
		if fam.GetName() != "test_cache_misses_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == "assistcache" {
					return
				}
			}
		}
	}
	t.Error("const label service=assistcache not found on miss counter")
}
