package types

// MsgMigrate upgrades the stored contract version to the running code version.
type MsgMigrate struct {
	Sender string `json:"-"`
}

// ValidateBasic performs basic validation of the MsgMigrate message.
func (m *MsgMigrate) ValidateBasic() error {
	return validateSender(m.Sender)
}
