package types

// MsgCancel closes a campaign and refunds its balance to the owner.
type MsgCancel struct {
	Sender     string `json:"-"`
	CampaignID string `json:"campaign_id"`
}

// ValidateBasic performs basic validation of the MsgCancel message.
func (m *MsgCancel) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	return validateCampaignID(m.CampaignID)
}
