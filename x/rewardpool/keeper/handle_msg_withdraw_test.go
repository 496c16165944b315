package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	rptestutil "github.com/btcq-org/rewardpool/x/rewardpool/testutil"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMsgWithdraw(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T, f *fixture)
		msg       func(f *fixture) *types.MsgWithdraw
		expectErr error
		checkFunc func(t *testing.T, f *fixture, res *types.Response)
	}{
		{
			name: "admin withdraws part of the balance",
			setup: func(t *testing.T, f *fixture) {
				f.bankKeeper.EXPECT().GetBalance(gomock.Any(), f.moduleAddr, testDenom).Return(sdk.NewInt64Coin(testDenom, 5000))
				f.expectPayout(t, f.admin, 1200)
			},
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: f.admin, Amount: math.NewUint(1200)}
			},
			checkFunc: func(t *testing.T, f *fixture, res *types.Response) {
				require.Len(t, res.Transfers, 1)
				assert.Equal(t, f.admin, res.Transfers[0].ToAddress)
				assert.Equal(t, sdk.NewInt64Coin(testDenom, 1200), res.Transfers[0].Amount)
			},
		},
		{
			name: "admin withdraws everything",
			setup: func(t *testing.T, f *fixture) {
				f.bankKeeper.EXPECT().GetBalance(gomock.Any(), f.moduleAddr, testDenom).Return(sdk.NewInt64Coin(testDenom, 5000))
				f.expectPayout(t, f.admin, 5000)
			},
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: f.admin, Amount: math.NewUint(5000)}
			},
		},
		{
			name: "more than the contract holds",
			setup: func(t *testing.T, f *fixture) {
				f.bankKeeper.EXPECT().GetBalance(gomock.Any(), f.moduleAddr, testDenom).Return(sdk.NewInt64Coin(testDenom, 5000))
			},
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: f.admin, Amount: math.NewUint(5001)}
			},
			expectErr: types.ErrInsufficientBalance,
		},
		{
			name: "empty module account",
			setup: func(t *testing.T, f *fixture) {
				f.bankKeeper.EXPECT().GetBalance(gomock.Any(), f.moduleAddr, testDenom).Return(sdk.Coin{})
			},
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: f.admin, Amount: math.NewUint(1)}
			},
			expectErr: types.ErrInsufficientBalance,
		},
		{
			name: "non admin, small amount",
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: rptestutil.GetRandomAddress(), Amount: math.NewUint(1)}
			},
			expectErr: types.ErrUnauthorized,
		},
		{
			name: "non admin, huge amount",
			msg: func(f *fixture) *types.MsgWithdraw {
				return &types.MsgWithdraw{Sender: rptestutil.GetRandomAddress(), Amount: types.MaxAmount}
			},
			expectErr: types.ErrUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := initFixture(t)
			f.instantiate(t)
			if tc.setup != nil {
				tc.setup(t, f)
			}
			res, err := f.msgServer.Withdraw(f.ctx, tc.msg(f))
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			if tc.checkFunc != nil {
				tc.checkFunc(t, f, res)
			}
		})
	}
}
