package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// settle pays out transfers from the module account, in order.
func (k Keeper) settle(ctx context.Context, transfers []types.Transfer) error {
	for _, t := range transfers {
		to, err := k.addressCodec.StringToBytes(t.ToAddress)
		if err != nil {
			return errorsmod.Wrapf(err, "invalid transfer recipient %s", t.ToAddress)
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sdk.AccAddress(to), sdk.NewCoins(t.Amount)); err != nil {
			return errorsmod.Wrapf(err, "send %s to %s", t.Amount, t.ToAddress)
		}
	}
	return nil
}
