package keeper

import (
	"context"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Deposit moves the attached coin into the module account and credits the
// campaign, creating it with the sender as owner when it does not exist.
func (s *msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	coin, err := msg.Coin()
	if err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeDeposit, func(ctx sdk.Context) (*types.Response, error) {
		if _, err := s.k.loadAdmin(ctx); err != nil {
			return nil, err
		}
		denom, err := s.k.NativeDenom(ctx)
		if err != nil {
			return nil, err
		}
		if coin.Denom != denom {
			return nil, types.ErrInvalidDenom.Wrapf("expected %s, got %s", denom, coin.Denom)
		}
		sender, senderBz, err := s.k.canonicalize(msg.Sender)
		if err != nil {
			return nil, err
		}

		amount := uintFromInt(coin.Amount)
		campaign, found, err := s.k.getCampaign(ctx, msg.CampaignID)
		if err != nil {
			return nil, err
		}
		if !found {
			campaign = types.NewCampaign(sender, math.ZeroUint())
		}
		campaign, err = campaign.Credit(amount)
		if err != nil {
			return nil, err
		}
		if err := s.k.Campaigns.Set(ctx, msg.CampaignID, campaign); err != nil {
			return nil, err
		}
		if err := s.k.bankKeeper.SendCoinsFromAccountToModule(ctx, sdk.AccAddress(senderBz), types.ModuleName, sdk.NewCoins(coin)); err != nil {
			return nil, err
		}

		return types.NewResponse(types.MethodDeposit).
			AddAttribute(types.AttributeKeyCampaignID, msg.CampaignID).
			AddAttribute(types.AttributeKeyOwner, campaign.Owner).
			AddAttribute(types.AttributeKeyAmount, coin.String()), nil
	})
}
