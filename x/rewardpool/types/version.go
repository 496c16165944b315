package types

// ContractVersion records which contract wrote the store and at which version.
type ContractVersion struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}
