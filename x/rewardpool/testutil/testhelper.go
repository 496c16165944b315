package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cometbft/cometbft/crypto"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/require"
)

// GetRandomAddress returns a random bech32 account address under the
// default prefix.
func GetRandomAddress() string {
	name := make([]byte, 10)
	if _, err := rand.Read(name); err != nil {
		panic(err)
	}
	str, err := bech32.ConvertAndEncode(constants.DefaultAddressPrefix, crypto.AddressHash([]byte(hex.EncodeToString(name))))
	if err != nil {
		panic(err)
	}
	return str
}

// VoucherKey is a trusted voucher key for tests.
type VoucherKey struct {
	Private *btcec.PrivateKey
	auth    *voucher.Authorizer
}

// NewVoucherKey generates a fresh secp256k1 key whose signer address uses hrp.
func NewVoucherKey(t *testing.T, hrp string) *VoucherKey {
	t.Helper()
	key, err := btcec.NewPrivateKey()
	require.NoError(t, err)
	auth, err := voucher.NewAuthorizer(key.PubKey().SerializeCompressed(), hrp, nil)
	require.NoError(t, err)
	return &VoucherKey{Private: key, auth: auth}
}

// PubKey returns the compressed public key.
func (v *VoucherKey) PubKey() []byte {
	return v.Private.PubKey().SerializeCompressed()
}

// Signer returns the bech32 signer address embedded in sign docs.
func (v *VoucherKey) Signer() string {
	return v.auth.Signer()
}

// Sign produces a compact signature authorizing sender to claim amount.
func (v *VoucherKey) Sign(t *testing.T, campaignID, nonce, denom string, amount uint64, sender string) []byte {
	t.Helper()
	data := voucher.SignedData{
		CampaignID: campaignID,
		Nonce:      nonce,
		Denom:      denom,
		Amount:     math.NewUint(amount),
		Sender:     sender,
	}
	sig, err := voucher.Sign(v.Private, v.auth.Digest(data))
	require.NoError(t, err)
	return sig
}
