package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EditAdmin replaces the admin. The change is immediate; an unreachable
// new admin locks every admin-gated operation for good.
func (s *msgServer) EditAdmin(ctx context.Context, msg *types.MsgEditAdmin) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeEditAdmin, func(ctx sdk.Context) (*types.Response, error) {
		if err := s.k.requireAdmin(ctx, msg.Sender); err != nil {
			return nil, err
		}
		newAdmin, bz, err := s.k.canonicalize(msg.NewAdmin)
		if err != nil {
			return nil, err
		}
		if err := s.k.Admin.Set(ctx, bz); err != nil {
			return nil, err
		}
		return types.NewResponse(types.MethodEditAdmin).
			AddAttribute(types.AttributeKeyAdmin, newAdmin), nil
	})
}
