package types

import "cosmossdk.io/math"

// MsgSetCpool overrides a campaign balance with an absolute amount.
type MsgSetCpool struct {
	Sender     string    `json:"-"`
	CampaignID string    `json:"campaign_id"`
	Amount     math.Uint `json:"amount"`
}

// ValidateBasic performs basic validation of the MsgSetCpool message.
func (m *MsgSetCpool) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if err := validateCampaignID(m.CampaignID); err != nil {
		return err
	}
	return validateAmount(m.Amount, true)
}
