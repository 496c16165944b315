package keystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type fileKeyStore struct {
	rootPath string
	keysLk   sync.Mutex
}

func NewFileKeyStore(rootPath string) (Keystore, error) {
	err := ensureDir(rootPath)
	if err != nil {
		return nil, err
	}
	return &fileKeyStore{rootPath: rootPath}, nil
}

func ensureDir(path string) error {
	err := os.MkdirAll(path, 0700)
	if err != nil && !os.IsExist(err) {
		return fmt.Errorf("keystore: failed to make a dir: %w", err)
	}
	return nil
}

func (f *fileKeyStore) Get(keyName string) (PrivKey, error) {
	f.keysLk.Lock()
	defer f.keysLk.Unlock()

	rootPath := filepath.Join(f.rootPath, keyName)

	content, err := os.ReadFile(rootPath)
	if err != nil && os.IsNotExist(err) {
		return PrivKey{}, ErrKeyNotFound
	}

	if err != nil {
		return PrivKey{}, err
	}

	k := PrivKey{}
	err = json.Unmarshal(content, &k)
	if err != nil {
		return PrivKey{}, err
	}
	return k, nil
}

func (f *fileKeyStore) Put(keyName string, value PrivKey) error {
	f.keysLk.Lock()
	defer f.keysLk.Unlock()

	rootPath := filepath.Join(f.rootPath, keyName)
	if _, err := os.Stat(rootPath); err == nil {
		return fmt.Errorf("keystore: key '%s' already exists", keyName)
	}

	content, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return os.WriteFile(rootPath, content, 0600)
}

func (f *fileKeyStore) Delete(keyName string) error {
	f.keysLk.Lock()
	defer f.keysLk.Unlock()

	rootPath := filepath.Join(f.rootPath, keyName)
	return os.Remove(rootPath)
}

func (f *fileKeyStore) List() ([]string, error) {
	f.keysLk.Lock()
	defer f.keysLk.Unlock()

	entries, err := os.ReadDir(f.rootPath)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			keys = append(keys, e.Name())
		}
	}
	sort.Strings(keys)
	return keys, nil
}
