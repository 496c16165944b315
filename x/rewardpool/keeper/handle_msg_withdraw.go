package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Withdraw pays the admin out of the module's native balance, as reported
// by the bank, independently of campaign bookkeeping.
func (s *msgServer) Withdraw(ctx context.Context, msg *types.MsgWithdraw) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeWithdraw, func(ctx sdk.Context) (*types.Response, error) {
		if err := s.k.requireAdmin(ctx, msg.Sender); err != nil {
			return nil, err
		}
		admin, err := s.k.GetAdmin(ctx)
		if err != nil {
			return nil, err
		}
		denom, err := s.k.NativeDenom(ctx)
		if err != nil {
			return nil, err
		}
		balance := uintFromInt(s.k.ContractBalance(ctx, denom).Amount)
		if msg.Amount.GT(balance) {
			return nil, types.ErrInsufficientBalance.Wrapf("requested %s, contract holds %s%s", msg.Amount, balance, denom)
		}

		payout := sdk.NewCoin(denom, intFromUint(msg.Amount))
		return types.NewResponse(types.MethodWithdraw).
			AddAttribute(types.AttributeKeyRecipient, admin).
			AddAttribute(types.AttributeKeyAmount, payout.String()).
			AddTransfer(admin, payout), nil
	})
}
