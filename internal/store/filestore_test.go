package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_GetMissingKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	data, err := fs.Get(context.Background(), DiskCacheKey)
	if err != nil {
		t.Fatalf("Get returned error for missing key: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for missing key, got %q", data)
	}
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	payload := []byte(`[{"query":"hello"}]`)
	if err := fs.Set(ctx, DiskCacheKey, payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := fs.Get(ctx, DiskCacheKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("expected %q, got %q", payload, got)
	}
}

func TestFileStore_SetOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := fs.Set(ctx, MetaInfoKey, []byte("first")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := fs.Set(ctx, MetaInfoKey, []byte("second")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := fs.Get(ctx, MetaInfoKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("expected overwrite to win, got %q", got)
	}
}

func TestFileStore_Delete(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	if err := fs.Set(ctx, DiskCacheKey, []byte("data")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := fs.Delete(ctx, DiskCacheKey); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := fs.Get(ctx, DiskCacheKey)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %q", got)
	}

	// Deleting again must not error
	if err := fs.Delete(ctx, DiskCacheKey); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestFileStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(context.Background(), DiskCacheKey, []byte("data")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestFileStore_RejectsTraversalKey(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := fs.Set(context.Background(), "../escape", []byte("x")); err == nil {
		t.Error("expected error for path traversal key")
	}
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	if _, err := NewFileStore(dir); err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory not created: %v", err)
	}
}
