package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// MaxAmount is the largest balance a campaign may hold (2^128 - 1).
var MaxAmount = math.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// Campaign is a named escrow bucket. Owner receives the remaining balance on cancel.
type Campaign struct {
	Amount math.Uint `json:"amount"`
	Owner  string    `json:"owner"`
}

// NewCampaign returns a campaign owned by owner holding amount.
func NewCampaign(owner string, amount math.Uint) Campaign {
	return Campaign{Amount: amount, Owner: owner}
}

// Credit adds amount to the balance, refusing to exceed MaxAmount.
func (c Campaign) Credit(amount math.Uint) (Campaign, error) {
	balance := c.Balance()
	if amount.GT(MaxAmount.Sub(balance)) {
		return c, ErrOverflow.Wrapf("campaign balance %s + %s exceeds the 128-bit limit", balance, amount)
	}
	c.Amount = balance.Add(amount)
	return c, nil
}

// Debit subtracts amount from the balance. A debit must leave a strictly
// positive remainder; requesting the whole balance or more is rejected.
func (c Campaign) Debit(amount math.Uint) (Campaign, error) {
	balance := c.Balance()
	if !amount.LT(balance) {
		return c, ErrInsufficientCampaignFunds.Wrapf("requested %s, campaign holds %s", amount, balance)
	}
	c.Amount = balance.Sub(amount)
	return c, nil
}

// Balance returns the campaign amount, treating an unset amount as zero.
func (c Campaign) Balance() math.Uint {
	if c.Amount.IsNil() {
		return math.ZeroUint()
	}
	return c.Amount
}

// IsEmpty reports whether nothing is left to pay out on cancel.
func (c Campaign) IsEmpty() bool {
	return c.Balance().IsZero()
}

// CampaignEntry pairs a campaign with its id, for listings and genesis.
type CampaignEntry struct {
	ID       string   `json:"campaign_id"`
	Campaign Campaign `json:"campaign"`
}
