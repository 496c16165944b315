package voucher

import (
	"encoding/hex"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"
)

// compressed encoding of the secp256k1 generator point
const generatorPubKeyHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestPubKeyToCanonical(t *testing.T) {
	pubKey, err := hex.DecodeString(generatorPubKeyHex)
	require.NoError(t, err)

	canonical := PubKeyToCanonical(pubKey)
	require.Len(t, canonical, 20)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(canonical))

	sdkKey := secp256k1.PubKey{Key: pubKey}
	require.Equal(t, []byte(sdkKey.Address()), canonical)
}

func TestPubKeyToAccount(t *testing.T) {
	pubKey, err := hex.DecodeString(generatorPubKeyHex)
	require.NoError(t, err)

	addr, err := PubKeyToAccount(pubKey, "cosmos")
	require.NoError(t, err)
	require.Equal(t, "cosmos1w508d6qejxtdg4y5r3zarvary0c5xw7k6ah60c", addr)

	hrp, data, err := bech32.DecodeAndConvert(addr)
	require.NoError(t, err)
	require.Equal(t, "cosmos", hrp)
	require.Equal(t, PubKeyToCanonical(pubKey), data)

	other, err := PubKeyToAccount(pubKey, "secret")
	require.NoError(t, err)
	require.Equal(t, "secret1w508d6qejxtdg4y5r3zarvary0c5xw7kccrnjy", other)
}
