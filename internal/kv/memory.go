package kv

import (
	"context"
	"slices"
	"sync"

	"github.com/sevenam/diamondstore/internal/store"
)

type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{slots: make(map[string][]byte)}
}

func (mb *MemoryBackend) Load(_ context.Context, key string) ([]byte, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	blob, ok := mb.slots[key]
	if !ok {
		return nil, store.ErrNoSnapshot
	}
	return slices.Clone(blob), nil
}

func (mb *MemoryBackend) Save(_ context.Context, key string, blob []byte) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.slots[key] = slices.Clone(blob)
	return nil
}
