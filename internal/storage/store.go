// Package storage holds an in-memory registry of StoredKeys, in the
// teacher's internal/storage style: a small interface plus a
// sync.RWMutex-guarded map implementation. This is intentionally the
// module's only persistence layer — writing a StoredKey's exported JSON
// to disk or a real database is left to the caller, since the keystore
// engine's contract ends at producing/consuming that JSON document.
package storage

import "github.com/vaultkit/walletengine/wallet"

// StoredKeyStore manages a collection of StoredKeys keyed by ID.
type StoredKeyStore interface {
	// Put registers or replaces a StoredKey.
	Put(key *wallet.StoredKey) error
	// Get returns the StoredKey with the given ID, or nil if not found.
	Get(id string) (*wallet.StoredKey, error)
	// Delete removes a StoredKey by ID. It is a no-op if the ID is absent.
	Delete(id string) error
	// List returns every StoredKey currently registered.
	List() ([]*wallet.StoredKey, error)
}
