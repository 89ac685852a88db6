package store

import (
	"bytes"
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryKeyValueStore returns a process-local [KeyValueStore]. Values are
// copied on the way in and out.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string][]byte)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	v := bytes.Clone(value)
	if v == nil {
		v = []byte{}
	}
	m.items[key] = v
	return nil
}
