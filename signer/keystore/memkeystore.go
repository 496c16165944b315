package keystore

import (
	"bytes"
	"fmt"
	"slices"
	"sync"
)

// ephemeralKeyStore keeps keys in process memory only. A service started
// on it signs with a key that disappears on exit.
type ephemeralKeyStore struct {
	mu   sync.RWMutex
	keys map[string][]byte
}

// NewMemoryKeyStore returns a Keystore that never touches disk.
func NewMemoryKeyStore() Keystore {
	return &ephemeralKeyStore{keys: map[string][]byte{}}
}

func (e *ephemeralKeyStore) Put(keyName string, value PrivKey) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.keys[keyName]; ok {
		return fmt.Errorf("keystore: key '%s' already exists", keyName)
	}
	e.keys[keyName] = bytes.Clone(value.Body)
	return nil
}

func (e *ephemeralKeyStore) Get(keyName string) (PrivKey, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	body, ok := e.keys[keyName]
	if !ok {
		return PrivKey{}, ErrKeyNotFound
	}
	return PrivKey{Body: bytes.Clone(body)}, nil
}

func (e *ephemeralKeyStore) Delete(keyName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.keys[keyName]; !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, keyName)
	}
	delete(e.keys, keyName)
	return nil
}

func (e *ephemeralKeyStore) List() ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.keys))
	for name := range e.keys {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
