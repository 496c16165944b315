package keystore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeystores(t *testing.T) {
	fileStore, err := NewFileKeyStore(t.TempDir())
	require.NoError(t, err)

	stores := map[string]Keystore{
		"memory": NewMemoryKeyStore(),
		"file":   fileStore,
	}
	for name, ks := range stores {
		t.Run(name, func(t *testing.T) {
			_, err := ks.Get("missing")
			require.ErrorIs(t, err, ErrKeyNotFound)

			created, err := GetOrCreateKey(ks, "signer")
			require.NoError(t, err)
			again, err := GetOrCreateKey(ks, "signer")
			require.NoError(t, err)
			assert.Equal(t, created.Body, again.Body)

			priv, err := again.Secp256k1()
			require.NoError(t, err)
			assert.Equal(t, created.Body, priv.Serialize())

			require.Error(t, ks.Put("signer", *created))

			names, err := ks.List()
			require.NoError(t, err)
			assert.Equal(t, []string{"signer"}, names)

			require.NoError(t, ks.Delete("signer"))
			_, err = ks.Get("signer")
			require.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestOpen(t *testing.T) {
	ks, err := Open("")
	require.NoError(t, err)
	_, isMemory := ks.(*ephemeralKeyStore)
	assert.True(t, isMemory)

	ks, err = Open(t.TempDir())
	require.NoError(t, err)
	_, isFile := ks.(*fileKeyStore)
	assert.True(t, isFile)
}

func TestMemoryKeyStoreCopiesKeys(t *testing.T) {
	ks := NewMemoryKeyStore()
	key, err := GenerateKey()
	require.NoError(t, err)
	original := append([]byte(nil), key.Body...)
	require.NoError(t, ks.Put("signer", *key))

	key.Body[0] ^= 0xff
	got, err := ks.Get("signer")
	require.NoError(t, err)
	assert.Equal(t, original, got.Body)

	got.Body[1] ^= 0xff
	again, err := ks.Get("signer")
	require.NoError(t, err)
	assert.Equal(t, original, again.Body)

	require.ErrorIs(t, ks.Delete("missing"), ErrKeyNotFound)
}

func TestPrivKeyLength(t *testing.T) {
	_, err := PrivKey{Body: []byte{1, 2, 3}}.Secp256k1()
	require.Error(t, err)
}
