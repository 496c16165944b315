package keeper

import (
	"context"
	"errors"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Claim redeems a voucher signed by the trusted key. The nonce is recorded
// together with the debit, so a claim that fails any check leaves the nonce
// free for a corrected voucher.
func (s *msgServer) Claim(ctx context.Context, msg *types.MsgClaim) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeClaim, func(ctx sdk.Context) (*types.Response, error) {
		auth, err := s.k.authorizer(ctx)
		if err != nil {
			return nil, err
		}
		used, err := s.k.Nonces.Has(ctx, msg.Nonce)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, types.ErrReplay.Wrapf("nonce %s", msg.Nonce)
		}
		sender, _, err := s.k.canonicalize(msg.Sender)
		if err != nil {
			return nil, err
		}

		data := voucher.SignedData{
			CampaignID: msg.CampaignID,
			Nonce:      msg.Nonce,
			Denom:      msg.Denom,
			Amount:     msg.Amount,
			Sender:     sender,
		}
		if err := verifyVoucher(auth, data, msg.Signature); err != nil {
			return nil, err
		}

		denom, err := s.k.NativeDenom(ctx)
		if err != nil {
			return nil, err
		}
		if msg.Denom != denom {
			return nil, types.ErrInvalidDenom.Wrapf("expected %s, got %s", denom, msg.Denom)
		}

		campaign, err := s.k.GetCampaign(ctx, msg.CampaignID)
		if err != nil {
			return nil, err
		}
		campaign, err = campaign.Debit(msg.Amount)
		if err != nil {
			return nil, err
		}
		if err := s.k.Campaigns.Set(ctx, msg.CampaignID, campaign); err != nil {
			return nil, err
		}
		if err := s.k.Nonces.Set(ctx, msg.Nonce, true); err != nil {
			return nil, err
		}

		payout := sdk.NewCoin(denom, intFromUint(msg.Amount))
		return types.NewResponse(types.MethodClaim).
			AddAttribute(types.AttributeKeyCampaignID, msg.CampaignID).
			AddAttribute(types.AttributeKeyNonce, msg.Nonce).
			AddAttribute(types.AttributeKeyRecipient, sender).
			AddAttribute(types.AttributeKeyAmount, payout.String()).
			AddTransfer(sender, payout), nil
	})
}

// verifyVoucher checks signature over data and maps verifier failures onto
// module errors.
func verifyVoucher(auth *voucher.Authorizer, data voucher.SignedData, signature []byte) error {
	if len(signature) != types.SignatureLength {
		return types.ErrMalformedSignature.Wrapf("signature must be %d bytes, got %d", types.SignatureLength, len(signature))
	}
	err := auth.Verify(data, signature)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, voucher.ErrSignatureMismatch):
		return types.ErrInvalidSignature.Wrapf("signer %s", auth.Signer())
	case errors.Is(err, voucher.ErrMalformedSignature):
		return types.ErrMalformedSignature.Wrap(err.Error())
	case errors.Is(err, voucher.ErrMalformedPubKey):
		return types.ErrInvalidPubKey.Wrap(err.Error())
	default:
		return types.ErrInvalidSignature.Wrap(err.Error())
	}
}
