package constants

const (
	// ContractName identifies the ledger layout recorded in the store. A
	// migration is only accepted from a store written under the same name.
	ContractName = "btcq-org:rewardpool"
	// ContractVersion is the semantic version of the running code.
	ContractVersion = "1.1.0"
)
