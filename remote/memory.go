package remote

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      []byte
	expiration time.Time
}

// MemoryTier is an in-process Tier used by tests and by the demo when no
// Redis address is configured.
type MemoryTier struct {
	mu   sync.Mutex
	data map[string]memoryEntry
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{data: make(map[string]memoryEntry)}
}

func (m *MemoryTier) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ent, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(ent.expiration) {
		delete(m.data, key)
		return nil, ErrNotFound
	}
	return ent.value, nil
}

func (m *MemoryTier) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = memoryEntry{
		value:      value,
		expiration: time.Now().Add(ttl),
	}
	return nil
}

func (m *MemoryTier) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryTier) Close() error { return nil }

// Len reports how many keys are resident, expired or not.
func (m *MemoryTier) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
