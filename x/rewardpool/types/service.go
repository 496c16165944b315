package types

import "context"

// MsgServer is the execute surface of the module.
type MsgServer interface {
	Instantiate(context.Context, *MsgInstantiate) (*Response, error)
	EditAdmin(context.Context, *MsgEditAdmin) (*Response, error)
	Deposit(context.Context, *MsgDeposit) (*Response, error)
	Claim(context.Context, *MsgClaim) (*Response, error)
	Withdraw(context.Context, *MsgWithdraw) (*Response, error)
	Cancel(context.Context, *MsgCancel) (*Response, error)
	SetCpool(context.Context, *MsgSetCpool) (*Response, error)
	Migrate(context.Context, *MsgMigrate) (*Response, error)
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	GetCpool(context.Context, *QueryGetCpoolRequest) (*QueryGetCpoolResponse, error)
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	NonceUsed(context.Context, *QueryNonceUsedRequest) (*QueryNonceUsedResponse, error)
	Campaigns(context.Context, *QueryCampaignsRequest) (*QueryCampaignsResponse, error)
}
