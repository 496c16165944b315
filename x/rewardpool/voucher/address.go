package voucher

import (
	"crypto/sha256"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"golang.org/x/crypto/ripemd160" // nolint:staticcheck // address format requires RIPEMD-160
)

// PubKeyToCanonical returns the 20-byte account id of a public key:
// RIPEMD160(SHA256(pubkey)).
func PubKeyToCanonical(pubKey []byte) []byte {
	sum := sha256.Sum256(pubKey)
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	return hasher.Sum(nil)
}

// PubKeyToAccount returns the bech32 account address of pubKey under hrp.
func PubKeyToAccount(pubKey []byte, hrp string) (string, error) {
	addr, err := bech32.ConvertAndEncode(hrp, PubKeyToCanonical(pubKey))
	if err != nil {
		return "", fmt.Errorf("encode signer address: %w", err)
	}
	return addr, nil
}
