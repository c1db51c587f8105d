package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a KVStore keeping each record in its own file under a
// directory. Writes go through a temp file and an atomic rename so a crash
// mid-write never leaves a half-written record behind.
type FileStore struct {
	directory string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		return nil, fmt.Errorf("file store directory not configured")
	}
	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileStore{directory: directory}, nil
}

// Get returns the record bytes, or (nil, nil) when the key has never been
// written.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// Set writes the record atomically via tmp file + rename.
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Ignore cleanup error
		return err
	}
	return nil
}

// Delete removes the record. Deleting a missing key is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close is a no-op; the file store holds no open handles between calls.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) pathFor(key string) (string, error) {
	path := filepath.Join(s.directory, key+".json")

	// Validate path is within the store directory
	if !strings.HasPrefix(filepath.Clean(path), filepath.Clean(s.directory)) {
		return "", fmt.Errorf("invalid store key path: %s", path)
	}
	return path, nil
}
