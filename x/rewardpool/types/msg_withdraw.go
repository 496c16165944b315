package types

import "cosmossdk.io/math"

// MsgWithdraw moves native tokens held by the module to the admin.
type MsgWithdraw struct {
	Sender string    `json:"-"`
	Amount math.Uint `json:"amount"`
}

// ValidateBasic performs basic validation of the MsgWithdraw message.
func (m *MsgWithdraw) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	return validateAmount(m.Amount, false)
}
