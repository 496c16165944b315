package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	se "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgDeposit funds a campaign with the single coin attached in Funds.
type MsgDeposit struct {
	Sender     string    `json:"-"`
	Funds      sdk.Coins `json:"-"`
	CampaignID string    `json:"campaign_id"`
}

// ValidateBasic performs basic validation of the MsgDeposit message.
// The denomination is checked by the keeper against the native denom.
func (m *MsgDeposit) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := validateCampaignID(m.CampaignID); err != nil {
		return err
	}
	_, err := m.Coin()
	return err
}

// Coin returns the single attached coin.
func (m *MsgDeposit) Coin() (sdk.Coin, error) {
	switch len(m.Funds) {
	case 0:
		return sdk.Coin{}, ErrNoFundsSent
	case 1:
	default:
		return sdk.Coin{}, ErrMultipleCoinsRejected.Wrapf("got %d coins", len(m.Funds))
	}
	coin := m.Funds[0]
	if coin.Amount.IsNil() || coin.Amount.IsZero() {
		return sdk.Coin{}, ErrNoFundsSent
	}
	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, se.ErrInvalidCoins.Wrap(err.Error())
	}
	return coin, nil
}
