package types

import (
	"encoding/hex"
)

// Secp256k1 public key lengths: SEC1 compressed and uncompressed.
const (
	CompressedPubKeyLength   = 33
	UncompressedPubKeyLength = 65
)

// MsgInstantiate sets up the contract: the sender becomes admin and PubKey
// becomes the trusted voucher key.
type MsgInstantiate struct {
	Sender string `json:"-"`
	PubKey []byte `json:"pubkey"`
}

// ValidateBasic performs basic validation of the MsgInstantiate message.
func (m *MsgInstantiate) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	switch len(m.PubKey) {
	case CompressedPubKeyLength, UncompressedPubKeyLength:
		return nil
	default:
		return ErrInvalidPubKey.Wrapf("pubkey must be %d or %d bytes, got %d", CompressedPubKeyLength, UncompressedPubKeyLength, len(m.PubKey))
	}
}

// PubKeyHex returns the hex-encoded trusted key.
func (m *MsgInstantiate) PubKeyHex() string {
	return hex.EncodeToString(m.PubKey)
}
