package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Cancel deletes a campaign and refunds its balance to the owner. Either
// the admin or the owner may cancel.
func (s *msgServer) Cancel(ctx context.Context, msg *types.MsgCancel) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeCancel, func(ctx sdk.Context) (*types.Response, error) {
		if _, err := s.k.loadAdmin(ctx); err != nil {
			return nil, err
		}
		campaign, err := s.k.GetCampaign(ctx, msg.CampaignID)
		if err != nil {
			return nil, err
		}
		if err := s.k.requireAdminOrOwner(ctx, msg.Sender, campaign.Owner); err != nil {
			return nil, err
		}
		if err := s.k.Campaigns.Remove(ctx, msg.CampaignID); err != nil {
			return nil, err
		}

		res := types.NewResponse(types.MethodCancel).
			AddAttribute(types.AttributeKeyCampaignID, msg.CampaignID).
			AddAttribute(types.AttributeKeyOwner, campaign.Owner)
		if campaign.IsEmpty() {
			return res, nil
		}
		denom, err := s.k.NativeDenom(ctx)
		if err != nil {
			return nil, err
		}
		refund := sdk.NewCoin(denom, intFromUint(campaign.Balance()))
		return res.
			AddAttribute(types.AttributeKeyAmount, refund.String()).
			AddTransfer(campaign.Owner, refund), nil
	})
}
