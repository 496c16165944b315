package types

import (
	"errors"

	errorsmod "cosmossdk.io/errors"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	ErrUnauthorized              = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrCampaignNotFound          = errorsmod.Register(ModuleName, 3, "campaign does not exist")
	ErrNoFundsSent               = errorsmod.Register(ModuleName, 4, "no funds were sent")
	ErrMultipleCoinsRejected     = errorsmod.Register(ModuleName, 5, "only one coin is allowed")
	ErrInvalidDenom              = errorsmod.Register(ModuleName, 6, "invalid denom")
	ErrMalformedSignature        = errorsmod.Register(ModuleName, 7, "malformed signature")
	ErrInvalidSignature          = errorsmod.Register(ModuleName, 8, "invalid signature")
	ErrReplay                    = errorsmod.Register(ModuleName, 9, "nonce already used")
	ErrInsufficientCampaignFunds = errorsmod.Register(ModuleName, 10, "insufficient campaign funds")
	ErrInsufficientBalance       = errorsmod.Register(ModuleName, 11, "not enough funds in the contract")
	ErrOverflow                  = errorsmod.Register(ModuleName, 12, "amount overflow")
	ErrNotInstantiated           = errorsmod.Register(ModuleName, 13, "contract not instantiated")
	ErrAlreadyInstantiated       = errorsmod.Register(ModuleName, 14, "contract already instantiated")
	ErrInvalidPubKey             = errorsmod.Register(ModuleName, 15, "invalid public key")
	ErrMigration                 = errorsmod.Register(ModuleName, 16, "migration rejected")
	ErrUnknownMsg                = errorsmod.Register(ModuleName, 17, "unknown message")
)

// ErrorKind classifies a failed invocation.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindAuthorization
	KindNotFound
	KindValidation
	KindReplay
	KindArithmetic
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindReplay:
		return "replay"
	case KindArithmetic:
		return "arithmetic"
	default:
		return "internal"
	}
}

var errorKinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrUnauthorized, KindAuthorization},
	{ErrInvalidSignature, KindAuthorization},
	{sdkerrors.ErrUnauthorized, KindAuthorization},
	{ErrCampaignNotFound, KindNotFound},
	{ErrNotInstantiated, KindNotFound},
	{ErrNoFundsSent, KindValidation},
	{ErrMultipleCoinsRejected, KindValidation},
	{ErrInvalidDenom, KindValidation},
	{ErrMalformedSignature, KindValidation},
	{ErrAlreadyInstantiated, KindValidation},
	{ErrInvalidPubKey, KindValidation},
	{ErrMigration, KindValidation},
	{ErrUnknownMsg, KindValidation},
	{sdkerrors.ErrInvalidAddress, KindValidation},
	{sdkerrors.ErrInvalidRequest, KindValidation},
	{sdkerrors.ErrInvalidCoins, KindValidation},
	{ErrReplay, KindReplay},
	{ErrInsufficientCampaignFunds, KindArithmetic},
	{ErrInsufficientBalance, KindArithmetic},
	{ErrOverflow, KindArithmetic},
	{sdkerrors.ErrInsufficientFunds, KindArithmetic},
}

// KindOf maps an error returned by the module onto its failure kind.
// A nil error is KindNone; anything unrecognised is KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, ek := range errorKinds {
		if errors.Is(err, ek.err) {
			return ek.kind
		}
	}
	return KindInternal
}
