package types

import (
	"fmt"
)

// GenesisState is the exported module state.
type GenesisState struct {
	Admin      string           `json:"admin,omitempty"`
	PubKey     []byte           `json:"pubkey,omitempty"`
	Version    *ContractVersion `json:"contract_info,omitempty"`
	Campaigns  []CampaignEntry  `json:"campaigns"`
	UsedNonces []string         `json:"used_nonces"`
}

// DefaultGenesis returns the default genesis state: an uninstantiated contract.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Campaigns:  []CampaignEntry{},
		UsedNonces: []string{},
	}
}

// IsInstantiated reports whether the genesis carries the admin/key records.
func (gs GenesisState) IsInstantiated() bool {
	return gs.Admin != "" || len(gs.PubKey) > 0
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	if gs.IsInstantiated() {
		if gs.Admin == "" {
			return fmt.Errorf("admin cannot be empty when pubkey is set")
		}
		init := MsgInstantiate{Sender: gs.Admin, PubKey: gs.PubKey}
		if err := init.ValidateBasic(); err != nil {
			return fmt.Errorf("invalid instantiate records: %w", err)
		}
	} else if len(gs.Campaigns) > 0 || len(gs.UsedNonces) > 0 {
		return fmt.Errorf("campaigns and nonces require an instantiated contract")
	}

	seen := make(map[string]struct{}, len(gs.Campaigns))
	for _, entry := range gs.Campaigns {
		if entry.ID == "" {
			return fmt.Errorf("campaign id cannot be empty")
		}
		if _, ok := seen[entry.ID]; ok {
			return fmt.Errorf("duplicate campaign id: %s", entry.ID)
		}
		seen[entry.ID] = struct{}{}
		if entry.Campaign.Owner == "" {
			return fmt.Errorf("campaign %s: owner cannot be empty", entry.ID)
		}
		if err := validateAmount(entry.Campaign.Amount, true); err != nil {
			return fmt.Errorf("campaign %s: %w", entry.ID, err)
		}
	}

	nonces := make(map[string]struct{}, len(gs.UsedNonces))
	for _, nonce := range gs.UsedNonces {
		if nonce == "" {
			return fmt.Errorf("nonce cannot be empty")
		}
		if _, ok := nonces[nonce]; ok {
			return fmt.Errorf("duplicate nonce: %s", nonce)
		}
		nonces[nonce] = struct{}{}
	}
	return nil
}
