package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
)

// getCampaign loads a campaign, reporting whether it exists.
func (k Keeper) getCampaign(ctx context.Context, id string) (types.Campaign, bool, error) {
	campaign, err := k.Campaigns.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Campaign{}, false, nil
		}
		return types.Campaign{}, false, err
	}
	return campaign, true, nil
}

// GetCampaign returns the campaign or ErrCampaignNotFound.
func (k Keeper) GetCampaign(ctx context.Context, id string) (types.Campaign, error) {
	campaign, found, err := k.getCampaign(ctx, id)
	if err != nil {
		return types.Campaign{}, err
	}
	if !found {
		return types.Campaign{}, types.ErrCampaignNotFound.Wrapf("campaign %s", id)
	}
	return campaign, nil
}

// GetAllCampaigns returns every campaign ordered by id.
func (k Keeper) GetAllCampaigns(ctx context.Context) ([]types.CampaignEntry, error) {
	entries := []types.CampaignEntry{}
	err := k.Campaigns.Walk(ctx, nil, func(id string, campaign types.Campaign) (bool, error) {
		entries = append(entries, types.CampaignEntry{ID: id, Campaign: campaign})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// IsNonceUsed reports whether a claim has consumed nonce.
func (k Keeper) IsNonceUsed(ctx context.Context, nonce string) (bool, error) {
	return k.Nonces.Has(ctx, nonce)
}

func uintFromInt(i math.Int) math.Uint {
	if i.IsNil() {
		return math.ZeroUint()
	}
	return math.NewUintFromBigInt(i.BigInt())
}

func intFromUint(u math.Uint) math.Int {
	if u.IsNil() {
		return math.ZeroInt()
	}
	return math.NewIntFromBigInt(u.BigInt())
}
