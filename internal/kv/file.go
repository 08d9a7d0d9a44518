// Package kv provides the key-value slots the store snapshot is written to.
package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sevenam/diamondstore/internal/store"
)

var ErrInvalidKey = errors.New("invalid key")

// FileBackend keeps one JSON file per key inside dir.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (fb *FileBackend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(fb.dir, key+".json"), nil
}

func (fb *FileBackend) Load(_ context.Context, key string) ([]byte, error) {
	path, err := fb.path(key)
	if err != nil {
		return nil, err
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	blob, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNoSnapshot
		}
		return nil, err
	}
	return blob, nil
}

// Save replaces the file atomically: the blob goes to a temp file in the same
// directory which is then renamed over the target.
func (fb *FileBackend) Save(_ context.Context, key string, blob []byte) error {
	path, err := fb.path(key)
	if err != nil {
		return err
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()

	tmp, err := os.CreateTemp(fb.dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
