package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store used for tests and for running
// the engine without durable storage.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailReads makes every Get return ErrUnavailable, for exercising
	// the degrade-to-baseline path in tests.
	FailReads bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FailReads {
		return nil, false, ErrUnavailable
	}
	raw, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryStore) Close(context.Context) error {
	return nil
}
