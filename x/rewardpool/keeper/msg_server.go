package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

type msgServer struct {
	k *Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(k *Keeper) types.MsgServer {
	return &msgServer{
		k: k,
	}
}

var _ types.MsgServer = &msgServer{}

// execute runs op against a cached store. The cache is written back only
// when op and the settlement of its transfers both succeed, so a failed
// invocation leaves no trace, consumed nonces included.
func (s *msgServer) execute(ctx context.Context, eventType string, op func(ctx sdk.Context) (*types.Response, error)) (*types.Response, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()
	res, err := op(cacheCtx)
	if err != nil {
		return nil, err
	}
	if err := s.k.settle(cacheCtx, res.Transfers); err != nil {
		sdkCtx.Logger().Error("failed to settle transfers", "method", res.Method, "error", err)
		return nil, err
	}
	write()

	sdkCtx.EventManager().EmitEvent(res.Event(eventType))
	sdkCtx.Logger().Info("rewardpool executed", "method", res.Method, "transfers", len(res.Transfers))
	return res, nil
}
