package storage

import (
	"sync"

	"github.com/vaultkit/walletengine/wallet"
)

// MemoryStoredKeyStore is an in-memory StoredKeyStore, guarded the same
// way the teacher guards its in-memory tx/watch stores: one RWMutex, a
// plain map, read methods take RLock.
type MemoryStoredKeyStore struct {
	mu   sync.RWMutex
	keys map[string]*wallet.StoredKey
}

// NewMemoryStoredKeyStore returns a new in-memory StoredKeyStore.
func NewMemoryStoredKeyStore() *MemoryStoredKeyStore {
	return &MemoryStoredKeyStore{keys: make(map[string]*wallet.StoredKey)}
}

// Put registers or replaces a StoredKey.
func (s *MemoryStoredKeyStore) Put(key *wallet.StoredKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key.ID] = key
	return nil
}

// Get returns the StoredKey with the given ID, or nil if not found.
func (s *MemoryStoredKeyStore) Get(id string) (*wallet.StoredKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keys[id], nil
}

// Delete removes a StoredKey by ID.
func (s *MemoryStoredKeyStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, id)
	return nil
}

// List returns every StoredKey currently registered.
func (s *MemoryStoredKeyStore) List() ([]*wallet.StoredKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*wallet.StoredKey, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, k)
	}
	return out, nil
}
