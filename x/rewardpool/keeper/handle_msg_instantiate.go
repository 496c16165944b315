package keeper

import (
	"context"

	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Instantiate makes the sender admin and stores the trusted voucher key.
func (s *msgServer) Instantiate(ctx context.Context, msg *types.MsgInstantiate) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeInstantiate, func(ctx sdk.Context) (*types.Response, error) {
		exists, err := s.k.Admin.Has(ctx)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, types.ErrAlreadyInstantiated
		}
		if _, err := voucher.ParsePubKey(msg.PubKey); err != nil {
			return nil, types.ErrInvalidPubKey.Wrap(err.Error())
		}
		admin, adminBz, err := s.k.canonicalize(msg.Sender)
		if err != nil {
			return nil, err
		}
		signer, err := voucher.PubKeyToAccount(msg.PubKey, s.k.signerPrefix)
		if err != nil {
			return nil, types.ErrInvalidPubKey.Wrap(err.Error())
		}

		if err := s.k.Admin.Set(ctx, adminBz); err != nil {
			return nil, err
		}
		if err := s.k.PubKey.Set(ctx, msg.PubKey); err != nil {
			return nil, err
		}
		if err := s.k.ContractVersion.Set(ctx, types.ContractVersion{
			Contract: constants.ContractName,
			Version:  constants.ContractVersion,
		}); err != nil {
			return nil, err
		}

		return types.NewResponse(types.MethodInstantiate).
			AddAttribute(types.AttributeKeyAdmin, admin).
			AddAttribute(types.AttributeKeySigner, signer).
			AddAttribute(types.AttributeKeyVersion, constants.ContractVersion), nil
	})
}
