// Package localstore persists small key-value slots as JSON files on disk,
// the way a browser keeps per-origin local storage: a handful of named slots
// that survive restarts but never leave the machine.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known slot keys used by the storefront.
const (
	KeyCart      = "cart"
	KeyFavorites = "favorites"
	KeyTheme     = "theme"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Storage is a key-value slot store. Implementations must tolerate
// concurrent access from HTTP handlers.
type Storage interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStorage keeps each slot in <dir>/<key>.json.
type FileStorage struct {
	dir string
	mu  sync.Mutex
}

// NewFileStorage creates the slot directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

func (fs *FileStorage) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

// Get reads a slot, returning ErrNotFound for never-written keys.
func (fs *FileStorage) Get(key string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading slot %q: %w", key, err)
	}
	return data, nil
}

// Set rewrites a slot atomically via a temp file and rename, so a crash
// mid-write never leaves a half-written slot behind.
func (fs *FileStorage) Set(key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	tmp, err := os.CreateTemp(fs.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp slot file: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing slot %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing slot %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), fs.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing slot %q: %w", key, err)
	}
	return nil
}

// Delete removes a slot; deleting an absent slot is a no-op.
func (fs *FileStorage) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting slot %q: %w", key, err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// NewMemoryStorage returns an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string][]byte)}
}

// Get returns the slot value or ErrNotFound.
func (ms *MemoryStorage) Get(key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	value, ok := ms.slots[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a copy of the value.
func (ms *MemoryStorage) Set(key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	ms.slots[key] = stored
	return nil
}

// Delete removes the slot if present.
func (ms *MemoryStorage) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.slots, key)
	return nil
}
