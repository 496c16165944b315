package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ExecuteMsg is the JSON execute envelope. Exactly one field is set, named
// after the operation in snake_case, e.g. {"claim":{...}}.
type ExecuteMsg struct {
	EditAdmin *MsgEditAdmin `json:"edit_admin,omitempty"`
	Deposit   *MsgDeposit   `json:"deposit,omitempty"`
	Claim     *MsgClaim     `json:"claim,omitempty"`
	Withdraw  *MsgWithdraw  `json:"withdraw,omitempty"`
	Cancel    *MsgCancel    `json:"cancel,omitempty"`
	SetCpool  *MsgSetCpool  `json:"set_cpool,omitempty"`
}

// QueryMsg is the JSON query envelope.
type QueryMsg struct {
	GetCpool  *QueryGetCpoolRequest  `json:"get_cpool,omitempty"`
	Config    *QueryConfigRequest    `json:"config,omitempty"`
	NonceUsed *QueryNonceUsedRequest `json:"nonce_used,omitempty"`
	Campaigns *QueryCampaignsRequest `json:"campaigns,omitempty"`
}

// ParseExecuteMsg decodes raw and stamps sender (and funds, for deposits)
// onto the selected message.
func ParseExecuteMsg(raw []byte, sender string, funds sdk.Coins) (any, error) {
	var msg ExecuteMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, ErrUnknownMsg.Wrapf("decode execute msg: %v", err)
	}
	var (
		out any
		set int
	)
	if msg.EditAdmin != nil {
		msg.EditAdmin.Sender = sender
		out, set = msg.EditAdmin, set+1
	}
	if msg.Deposit != nil {
		msg.Deposit.Sender = sender
		msg.Deposit.Funds = funds
		out, set = msg.Deposit, set+1
	}
	if msg.Claim != nil {
		msg.Claim.Sender = sender
		out, set = msg.Claim, set+1
	}
	if msg.Withdraw != nil {
		msg.Withdraw.Sender = sender
		out, set = msg.Withdraw, set+1
	}
	if msg.Cancel != nil {
		msg.Cancel.Sender = sender
		out, set = msg.Cancel, set+1
	}
	if msg.SetCpool != nil {
		msg.SetCpool.Sender = sender
		out, set = msg.SetCpool, set+1
	}
	if set != 1 {
		return nil, ErrUnknownMsg.Wrapf("expected exactly one operation, got %d", set)
	}
	return out, nil
}

// ParseQueryMsg decodes raw into the selected query request.
func ParseQueryMsg(raw []byte) (any, error) {
	var msg QueryMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, ErrUnknownMsg.Wrapf("decode query msg: %v", err)
	}
	var (
		out any
		set int
	)
	if msg.GetCpool != nil {
		out, set = msg.GetCpool, set+1
	}
	if msg.Config != nil {
		out, set = msg.Config, set+1
	}
	if msg.NonceUsed != nil {
		out, set = msg.NonceUsed, set+1
	}
	if msg.Campaigns != nil {
		out, set = msg.Campaigns, set+1
	}
	if set != 1 {
		return nil, ErrUnknownMsg.Wrapf("expected exactly one query, got %d", set)
	}
	return out, nil
}
