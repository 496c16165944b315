package keystore

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

var ErrKeyNotFound = errors.New("keystore: key not found")

// PrivKey is a stored secp256k1 private key.
type PrivKey struct {
	Body []byte `json:"body"`
}

// Secp256k1 parses the stored key.
func (k PrivKey) Secp256k1() (*btcec.PrivateKey, error) {
	if len(k.Body) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("keystore: private key must be %d bytes, got %d", btcec.PrivKeyBytesLen, len(k.Body))
	}
	priv, _ := btcec.PrivKeyFromBytes(k.Body)
	return priv, nil
}

type Keystore interface {
	Get(keyName string) (PrivKey, error)
	Put(keyName string, value PrivKey) error
	Delete(keyName string) error
	List() ([]string, error)
}

// Open returns the file keystore under rootPath, or an in-memory keystore
// when rootPath is empty.
func Open(rootPath string) (Keystore, error) {
	if rootPath == "" {
		return NewMemoryKeyStore(), nil
	}
	return NewFileKeyStore(rootPath)
}

// GenerateKey creates a new random secp256k1 private key for signing vouchers
func GenerateKey() (*PrivKey, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &PrivKey{Body: priv.Serialize()}, nil
}

func GetOrCreateKey(kstore Keystore, keyName string) (*PrivKey, error) {
	privKey, err := kstore.Get(keyName)

	if errors.Is(err, ErrKeyNotFound) {
		newPrivKey, err := GenerateKey()
		if err != nil {
			return nil, err
		}
		err = kstore.Put(keyName, *newPrivKey)
		if err != nil {
			return nil, err
		}
		return newPrivKey, nil
	}
	if err != nil {
		return nil, err
	}
	return &privKey, nil
}
