package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name
	ModuleName = "rewardpool"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

var (
	// AdminKey holds the canonical bytes of the single admin account
	AdminKey = collections.NewPrefix("admin")
	// PubKeyKey holds the trusted voucher verification key
	PubKeyKey = collections.NewPrefix("key")
	// ContractVersionKey holds the contract name/version used for migration gating
	ContractVersionKey = collections.NewPrefix("contract_info")

	// NonceKeys is the prefix for consumed voucher nonces
	NonceKeys = collections.NewPrefix("nonces")
	// CampaignKeys is the prefix for campaign records, one entry per campaign id
	CampaignKeys = collections.NewPrefix("campaign_pool")
)
