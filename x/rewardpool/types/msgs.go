package types

import (
	"cosmossdk.io/math"
	se "github.com/cosmos/cosmos-sdk/types/errors"
)

// Method names, as reported in responses and accepted by the JSON entry point.
const (
	MethodInstantiate = "instantiate"
	MethodEditAdmin   = "edit_admin"
	MethodDeposit     = "deposit"
	MethodClaim       = "claim"
	MethodWithdraw    = "withdraw"
	MethodCancel      = "cancel"
	MethodSetCpool    = "set_cpool"
	MethodMigrate     = "migrate"
)

func validateSender(sender string) error {
	if sender == "" {
		return se.ErrInvalidAddress.Wrap("sender address is required")
	}
	return nil
}

func validateCampaignID(id string) error {
	if id == "" {
		return se.ErrInvalidRequest.Wrap("campaign_id is required")
	}
	return nil
}

// validateAmount rejects unset, negative and above-cap amounts. Zero is
// rejected unless allowZero is set.
func validateAmount(amount math.Uint, allowZero bool) error {
	if amount.IsNil() {
		return se.ErrInvalidRequest.Wrap("amount is required")
	}
	if amount.BigInt().Sign() < 0 {
		return se.ErrInvalidRequest.Wrapf("amount must not be negative, got %s", amount)
	}
	if !allowZero && amount.IsZero() {
		return se.ErrInvalidRequest.Wrap("amount must be positive")
	}
	if amount.GT(MaxAmount) {
		return ErrOverflow.Wrapf("amount %s exceeds the 128-bit limit", amount)
	}
	return nil
}
