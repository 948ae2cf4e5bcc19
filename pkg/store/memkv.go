package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemKV is an in-memory KV for tests and for hosts that do not want
// scan state to outlive the process.
type MemKV struct {
	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

func NewMemKV() *MemKV {
	return &MemKV{entries: make(map[string]json.RawMessage)}
}

func (kv *MemKV) Put(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for %q: %w", key, err)
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = raw
	return nil
}

func (kv *MemKV) Get(key string, out interface{}) (bool, error) {
	kv.mu.RLock()
	raw, ok := kv.entries[key]
	kv.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("failed to unmarshal value for %q: %w", key, err)
	}
	return true, nil
}

func (kv *MemKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.entries, key)
	return nil
}

// Len reports how many keys are stored. Test helper.
func (kv *MemKV) Len() int {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	return len(kv.entries)
}
