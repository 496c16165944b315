package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SetCpool overwrites a campaign balance. An existing owner is kept; a new
// campaign is owned by the admin that created it.
func (s *msgServer) SetCpool(ctx context.Context, msg *types.MsgSetCpool) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeSetCpool, func(ctx sdk.Context) (*types.Response, error) {
		if err := s.k.requireAdmin(ctx, msg.Sender); err != nil {
			return nil, err
		}
		campaign, found, err := s.k.getCampaign(ctx, msg.CampaignID)
		if err != nil {
			return nil, err
		}
		if found {
			campaign.Amount = msg.Amount
		} else {
			owner, _, err := s.k.canonicalize(msg.Sender)
			if err != nil {
				return nil, err
			}
			campaign = types.NewCampaign(owner, msg.Amount)
		}
		if err := s.k.Campaigns.Set(ctx, msg.CampaignID, campaign); err != nil {
			return nil, err
		}
		return types.NewResponse(types.MethodSetCpool).
			AddAttribute(types.AttributeKeyCampaignID, msg.CampaignID).
			AddAttribute(types.AttributeKeyOwner, campaign.Owner).
			AddAttribute(types.AttributeKeyAmount, msg.Amount.String()), nil
	})
}
