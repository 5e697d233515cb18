package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value  []byte
	expiry time.Time
}

// Memory is an in-process Store with passive expiry, used when no Redis
// backend is configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiry) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: stored, expiry: time.Now().Add(ttl)}
	m.mu.Unlock()
}
