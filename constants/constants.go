//go:build !mocknet

package constants

// DefaultAddressPrefix is the bech32 prefix used for the voucher signer address.
const DefaultAddressPrefix = "cosmos"
