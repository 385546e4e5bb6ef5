package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// KeyValue is the persistence capability the rest of the app depends on.
// Implemented by *Store and *Memory.
type KeyValue interface {
	GetKey(key string) (string, error)
	SetKey(key, value string) error
	DeleteKey(key string) error
}

// Get decodes the JSON value stored under key into a T. A missing key, a read
// error or a malformed value all yield def; only the latter two are logged.
func Get[T any](kv KeyValue, key string, def T) T {
	raw, err := kv.GetKey(key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		slog.Warn("reading stored value, using default", "key", key, "error", err)
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		slog.Warn("malformed stored value, using default", "key", key, "error", err)
		return def
	}
	return v
}

// Set encodes v as JSON and stores it under key.
func Set[T any](kv KeyValue, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling value for key %q: %w", key, err)
	}
	if err := kv.SetKey(key, string(b)); err != nil {
		return fmt.Errorf("setting key %q: %w", key, err)
	}
	return nil
}

// Clear removes every key in AllKeys.
func Clear(kv KeyValue) error {
	for _, k := range AllKeys {
		if err := kv.DeleteKey(k); err != nil {
			return fmt.Errorf("deleting key %q: %w", k, err)
		}
	}
	return nil
}

// Memory is a map-backed KeyValue for tests and ephemeral sessions.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty Memory.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) GetKey(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) SetKey(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) DeleteKey(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys returns the stored keys in ascending order.
func (m *Memory) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
