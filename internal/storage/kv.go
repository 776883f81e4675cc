// Package storage provides key-value persistence for game settings and
// history. The primary backend is SQLite via the pure-Go modernc.org/sqlite
// driver; an in-memory backend covers tests and missing databases.
package storage

import (
	"sort"
	"strings"
	"sync"
)

// KV is a string-keyed store of string values.
// Get reports ok=false for absent keys. Set overwrites whole values.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-process KV. The zero value is ready to use.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Keys returns all keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Namespace prefixes every key with prefix and a slash, giving each SSH user
// a private set of settings and history on a shared backend.
type Namespace struct {
	kv     KV
	prefix string
}

// NewNamespace wraps kv so that all keys live under prefix.
// An empty prefix returns kv unchanged.
func NewNamespace(kv KV, prefix string) KV {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return kv
	}
	return &Namespace{kv: kv, prefix: prefix + "/"}
}

// Get implements KV.
func (n *Namespace) Get(key string) (string, bool, error) {
	return n.kv.Get(n.prefix + key)
}

// Set implements KV.
func (n *Namespace) Set(key, value string) error {
	return n.kv.Set(n.prefix+key, value)
}

// Delete implements KV.
func (n *Namespace) Delete(key string) error {
	return n.kv.Delete(n.prefix + key)
}

var (
	_ KV = (*Memory)(nil)
	_ KV = (*Namespace)(nil)
	_ KV = (*Store)(nil)
)
