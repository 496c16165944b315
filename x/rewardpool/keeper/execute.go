package keeper

import (
	"context"
	"encoding/json"

	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// InstantiateJSON decodes {"pubkey":"<base64>"} and instantiates the contract.
func (k *Keeper) InstantiateJSON(ctx context.Context, sender string, raw []byte) (*types.Response, error) {
	var msg types.MsgInstantiate
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, types.ErrUnknownMsg.Wrapf("decode instantiate msg: %v", err)
	}
	msg.Sender = sender
	return NewMsgServerImpl(k).Instantiate(ctx, &msg)
}

// Execute decodes a JSON execute message such as {"claim":{...}} sent by
// sender with funds attached, and dispatches it.
func (k *Keeper) Execute(ctx context.Context, sender string, funds sdk.Coins, raw []byte) (*types.Response, error) {
	msg, err := types.ParseExecuteMsg(raw, sender, funds)
	if err != nil {
		return nil, err
	}
	srv := NewMsgServerImpl(k)
	switch m := msg.(type) {
	case *types.MsgEditAdmin:
		return srv.EditAdmin(ctx, m)
	case *types.MsgDeposit:
		return srv.Deposit(ctx, m)
	case *types.MsgClaim:
		return srv.Claim(ctx, m)
	case *types.MsgWithdraw:
		return srv.Withdraw(ctx, m)
	case *types.MsgCancel:
		return srv.Cancel(ctx, m)
	case *types.MsgSetCpool:
		return srv.SetCpool(ctx, m)
	default:
		return nil, types.ErrUnknownMsg.Wrapf("%T", msg)
	}
}

// Query decodes a JSON query such as {"get_cpool":{"campaign_id":"c1"}} and
// returns the JSON encoded answer. get_cpool answers with the bare campaign.
func (k Keeper) Query(ctx context.Context, raw []byte) ([]byte, error) {
	req, err := types.ParseQueryMsg(raw)
	if err != nil {
		return nil, err
	}
	qs := NewQueryServerImpl(k)
	var out any
	switch r := req.(type) {
	case *types.QueryGetCpoolRequest:
		resp, err := qs.GetCpool(ctx, r)
		if err != nil {
			return nil, err
		}
		out = resp.Campaign
	case *types.QueryConfigRequest:
		out, err = qs.Config(ctx, r)
	case *types.QueryNonceUsedRequest:
		out, err = qs.NonceUsed(ctx, r)
	case *types.QueryCampaignsRequest:
		out, err = qs.Campaigns(ctx, r)
	default:
		return nil, types.ErrUnknownMsg.Wrapf("%T", req)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
