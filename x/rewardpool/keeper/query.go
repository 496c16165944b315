package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
)

var _ types.QueryServer = queryServer{}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{k}
}

type queryServer struct {
	k Keeper
}

// GetCpool implements types.QueryServer.
func (qs queryServer) GetCpool(ctx context.Context, req *types.QueryGetCpoolRequest) (*types.QueryGetCpoolResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	campaign, err := qs.k.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	return &types.QueryGetCpoolResponse{Campaign: campaign}, nil
}

// Config implements types.QueryServer.
func (qs queryServer) Config(ctx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	admin, err := qs.k.GetAdmin(ctx)
	if err != nil {
		return nil, err
	}
	key, err := qs.k.loadPubKey(ctx)
	if err != nil {
		return nil, err
	}
	signer, err := qs.k.SignerAddress(ctx)
	if err != nil {
		return nil, err
	}
	resp := &types.QueryConfigResponse{Admin: admin, PubKey: key, Signer: signer}
	info, err := qs.k.ContractVersion.Get(ctx)
	switch {
	case err == nil:
		resp.Info = &info
	case !errors.Is(err, collections.ErrNotFound):
		return nil, err
	}
	return resp, nil
}

// NonceUsed implements types.QueryServer.
func (qs queryServer) NonceUsed(ctx context.Context, req *types.QueryNonceUsedRequest) (*types.QueryNonceUsedResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	used, err := qs.k.IsNonceUsed(ctx, req.Nonce)
	if err != nil {
		return nil, err
	}
	return &types.QueryNonceUsedResponse{Used: used}, nil
}

// Campaigns implements types.QueryServer.
func (qs queryServer) Campaigns(ctx context.Context, _ *types.QueryCampaignsRequest) (*types.QueryCampaignsResponse, error) {
	entries, err := qs.k.GetAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryCampaignsResponse{Campaigns: entries}, nil
}
