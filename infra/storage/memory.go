package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/amirasaad/fxcli/pkg/storage"
)

// Memory implements storage.Store in memory.
// Values still round-trip through JSON so shape errors surface exactly as
// they would from a file.
type Memory struct {
	data  []byte
	saves int
	mu    sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Put seeds the store with raw bytes, bypassing encoding.
func (m *Memory) Put(raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), raw...)
}

// Raw returns a copy of the stored bytes, or nil when empty.
func (m *Memory) Raw() []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return nil
	}
	return append([]byte(nil), m.data...)
}

// Saves returns how many times Save succeeded.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

// Load decodes the stored bytes into v.
func (m *Memory) Load(v any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.data == nil {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(m.data, v); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrMalformed, err)
	}
	return nil
}

// Save encodes v and replaces the stored bytes.
func (m *Memory) Save(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.saves++
	return nil
}
