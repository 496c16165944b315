package types

import (
	se "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgEditAdmin replaces the admin. Only the current admin may send it.
type MsgEditAdmin struct {
	Sender   string `json:"-"`
	NewAdmin string `json:"new_admin"`
}

// ValidateBasic performs basic validation of the MsgEditAdmin message.
func (m *MsgEditAdmin) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if m.NewAdmin == "" {
		return se.ErrInvalidAddress.Wrap("new_admin is required")
	}
	return nil
}
