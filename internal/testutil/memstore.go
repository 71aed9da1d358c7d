package testutil

import (
	"errors"
	"sort"
)

// ErrInjected is the default error returned by injected failures.
var ErrInjected = errors.New("injected failure")

// MemStore is an in-memory store.KV for testing.
type MemStore struct {
	data map[string][]byte

	// Error injection for testing
	GetErr map[string]error // key -> error
	PutErr map[string]error // key -> error

	// Puts counts writes per key.
	Puts map[string]int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		data:   make(map[string][]byte),
		GetErr: make(map[string]error),
		PutErr: make(map[string]error),
		Puts:   make(map[string]int),
	}
}

// Set seeds raw data under key.
func (m *MemStore) Set(key, raw string) {
	m.data[key] = []byte(raw)
}

// Raw returns the raw data under key, or "" when absent.
func (m *MemStore) Raw(key string) string {
	return string(m.data[key])
}

// Keys returns the stored keys, sorted.
func (m *MemStore) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get implements store.KV.
func (m *MemStore) Get(key string) ([]byte, bool, error) {
	if err := m.GetErr[key]; err != nil {
		return nil, false, err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

// Put implements store.KV.
func (m *MemStore) Put(key string, data []byte) error {
	if err := m.PutErr[key]; err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[key] = buf
	m.Puts[key]++
	return nil
}

// Close implements store.KV.
func (m *MemStore) Close() error { return nil }
