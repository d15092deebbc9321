package storage

import (
	"encoding/json"
	"sync"
)

// Persisted keys. These mirror the browser local-storage keys the El Gato
// frontend uses, one JSON-encoded value per key.
const (
	KeyCart           = "cart"
	KeyUserOrders     = "userOrders"
	KeyAdminOrders    = "adminOrders"
	KeyDeletedRevenue = "deletedOrdersRevenue"
	KeyFavorites      = "favorites"
	KeySession        = "userSession"
)

// Adapter persists one JSON blob per key. Writes are last-writer-wins
// with no conflict detection; services call Save synchronously after
// every state mutation.
type Adapter interface {
	// Load returns the stored value for key. The second result is false
	// when the key has never been written (or was deleted).
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// LoadJSON hydrates v from the adapter. Returns false when the key is
// absent, leaving v untouched.
func LoadJSON(a Adapter, key string, v interface{}) (bool, error) {
	data, ok, err := a.Load(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// SaveJSON marshals v and stores it under key.
func SaveJSON(a Adapter, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return a.Save(key, data)
}

// MemoryStore is an Adapter backed by a plain map. Used in tests and as
// a fallback when no durable store is configured.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (m *MemoryStore) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
