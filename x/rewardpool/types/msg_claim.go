package types

import (
	"cosmossdk.io/math"
	se "github.com/cosmos/cosmos-sdk/types/errors"
)

// SignatureLength is the size of a compact secp256k1 signature (r || s).
const SignatureLength = 64

// MsgClaim redeems a voucher signed by the trusted key. The voucher names
// the sender as beneficiary, so the payload is rebuilt from Sender.
type MsgClaim struct {
	Sender     string    `json:"-"`
	CampaignID string    `json:"campaign_id"`
	Amount     math.Uint `json:"amount"`
	Denom      string    `json:"denom"`
	Nonce      string    `json:"nonce"`
	Signature  []byte    `json:"signature"`
}

// ValidateBasic performs basic validation of the MsgClaim message. The
// signature itself is checked by the keeper after nonce admission.
func (m *MsgClaim) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := validateCampaignID(m.CampaignID); err != nil {
		return err
	}
	if m.Nonce == "" {
		return se.ErrInvalidRequest.Wrap("nonce is required")
	}
	if m.Denom == "" {
		return se.ErrInvalidRequest.Wrap("denom is required")
	}
	return validateAmount(m.Amount, false)
}
