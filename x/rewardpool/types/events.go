package types

const (
	EventTypeInstantiate = "rewardpool_instantiate"
	EventTypeEditAdmin   = "rewardpool_edit_admin"
	EventTypeDeposit     = "rewardpool_deposit"
	EventTypeClaim       = "rewardpool_claim"
	EventTypeWithdraw    = "rewardpool_withdraw"
	EventTypeCancel      = "rewardpool_cancel"
	EventTypeSetCpool    = "rewardpool_set_cpool"
	EventTypeMigrate     = "rewardpool_migrate"

	AttributeKeyMethod     = "method"
	AttributeKeyAdmin      = "admin"
	AttributeKeySigner     = "signer"
	AttributeKeyCampaignID = "campaign_id"
	AttributeKeyOwner      = "owner"
	AttributeKeyAmount     = "amount"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyNonce      = "nonce"
	AttributeKeyVersion    = "version"
)
