package types

import (
	se "github.com/cosmos/cosmos-sdk/types/errors"
)

type QueryGetCpoolRequest struct {
	CampaignID string `json:"campaign_id"`
}

type QueryGetCpoolResponse struct {
	Campaign Campaign `json:"campaign"`
}

type QueryConfigRequest struct{}

// QueryConfigResponse describes the singleton configuration records.
type QueryConfigResponse struct {
	Admin  string           `json:"admin"`
	PubKey []byte           `json:"pubkey"`
	Signer string           `json:"signer"`
	Info   *ContractVersion `json:"contract_info,omitempty"`
}

type QueryNonceUsedRequest struct {
	Nonce string `json:"nonce"`
}

type QueryNonceUsedResponse struct {
	Used bool `json:"used"`
}

type QueryCampaignsRequest struct{}

type QueryCampaignsResponse struct {
	Campaigns []CampaignEntry `json:"campaigns"`
}

// ValidateBasic checks the campaign id is present.
func (r *QueryGetCpoolRequest) ValidateBasic() error {
	if r == nil || r.CampaignID == "" {
		return se.ErrInvalidRequest.Wrap("campaign_id cannot be empty")
	}
	return nil
}

// ValidateBasic checks the nonce is present.
func (r *QueryNonceUsedRequest) ValidateBasic() error {
	if r == nil || r.Nonce == "" {
		return se.ErrInvalidRequest.Wrap("nonce cannot be empty")
	}
	return nil
}
