package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestCampaignCredit(t *testing.T) {
	c := NewCampaign("owner", math.NewUint(1_000_000))
	c, err := c.Credit(math.NewUint(500))
	require.NoError(t, err)
	require.Equal(t, math.NewUint(1_000_500), c.Amount)
	require.Equal(t, "owner", c.Owner)

	full := NewCampaign("owner", MaxAmount)
	_, err = full.Credit(math.OneUint())
	require.ErrorIs(t, err, ErrOverflow)

	var unset Campaign
	unset, err = unset.Credit(math.NewUint(7))
	require.NoError(t, err)
	require.Equal(t, math.NewUint(7), unset.Amount)
}

func TestCampaignDebit(t *testing.T) {
	testCases := []struct {
		name      string
		balance   uint64
		amount    uint64
		expectErr bool
		remaining uint64
	}{
		{name: "partial debit", balance: 1000, amount: 100, remaining: 900},
		{name: "debit one below balance", balance: 1000, amount: 999, remaining: 1},
		{name: "debit whole balance", balance: 1000, amount: 1000, expectErr: true},
		{name: "debit above balance", balance: 1000, amount: 1001, expectErr: true},
		{name: "empty campaign", balance: 0, amount: 1, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCampaign("owner", math.NewUint(tc.balance))
			out, err := c.Debit(math.NewUint(tc.amount))
			if tc.expectErr {
				require.ErrorIs(t, err, ErrInsufficientCampaignFunds)
				require.Equal(t, math.NewUint(tc.balance), out.Amount)
				return
			}
			require.NoError(t, err)
			require.Equal(t, math.NewUint(tc.remaining), out.Amount)
		})
	}
}

func TestCampaignIsEmpty(t *testing.T) {
	require.True(t, Campaign{}.IsEmpty())
	require.True(t, NewCampaign("o", math.ZeroUint()).IsEmpty())
	require.False(t, NewCampaign("o", math.OneUint()).IsEmpty())
}

func TestMaxAmount(t *testing.T) {
	require.Equal(t, "340282366920938463463374607431768211455", MaxAmount.String())
}
