package keeper

import (
	"bytes"
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	corestore "cosmossdk.io/core/store"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/btcq-org/rewardpool/x/rewardpool/voucher"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

type Keeper struct {
	storeService corestore.KVStoreService
	addressCodec address.Codec

	// signerPrefix is the bech32 prefix of the address embedded in vouchers
	signerPrefix string
	verifier     voucher.Verifier

	// Keepers
	authKeeper    types.AuthKeeper
	bankKeeper    types.BankKeeper
	stakingKeeper types.StakingKeeper

	// Collections
	Schema          collections.Schema
	Admin           collections.Item[[]byte]
	PubKey          collections.Item[[]byte]
	ContractVersion collections.Item[types.ContractVersion]
	Nonces          collections.Map[string, bool]
	Campaigns       collections.Map[string, types.Campaign]
}

func NewKeeper(
	storeService corestore.KVStoreService,
	addressCodec address.Codec,
	authKeeper types.AuthKeeper,
	bankKeeper types.BankKeeper,
	stakingKeeper types.StakingKeeper,
	signerPrefix string,
	verifier voucher.Verifier,
) Keeper {
	if verifier == nil {
		verifier = voucher.Secp256k1Verifier{}
	}
	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService:    storeService,
		addressCodec:    addressCodec,
		signerPrefix:    signerPrefix,
		verifier:        verifier,
		authKeeper:      authKeeper,
		bankKeeper:      bankKeeper,
		stakingKeeper:   stakingKeeper,
		Admin:           collections.NewItem(sb, types.AdminKey, "admin", collections.BytesValue),
		PubKey:          collections.NewItem(sb, types.PubKeyKey, "pubkey", collections.BytesValue),
		ContractVersion: collections.NewItem(sb, types.ContractVersionKey, "contract_version", types.ContractVersionValue),
		Nonces:          collections.NewMap(sb, types.NonceKeys, "nonces", collections.StringKey, collections.BoolValue),
		Campaigns:       collections.NewMap(sb, types.CampaignKeys, "campaigns", collections.StringKey, types.CampaignValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// SignerPrefix returns the bech32 prefix of the voucher signer address.
func (k Keeper) SignerPrefix() string {
	return k.signerPrefix
}

// canonicalize parses a bech32 account into its canonical bytes and returns
// the normalised (lower-case) string form alongside.
func (k Keeper) canonicalize(addr string) (string, []byte, error) {
	bz, err := k.addressCodec.StringToBytes(addr)
	if err != nil {
		return "", nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid address %q: %v", addr, err)
	}
	human, err := k.addressCodec.BytesToString(bz)
	if err != nil {
		return "", nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid address %q: %v", addr, err)
	}
	return human, bz, nil
}

// loadAdmin returns the canonical admin bytes, or ErrNotInstantiated.
func (k Keeper) loadAdmin(ctx context.Context) ([]byte, error) {
	admin, err := k.Admin.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrNotInstantiated
		}
		return nil, err
	}
	return admin, nil
}

// GetAdmin returns the admin account in bech32 form.
func (k Keeper) GetAdmin(ctx context.Context) (string, error) {
	admin, err := k.loadAdmin(ctx)
	if err != nil {
		return "", err
	}
	return k.addressCodec.BytesToString(admin)
}

// isAdmin reports whether sender is the current admin.
func (k Keeper) isAdmin(ctx context.Context, sender []byte) (bool, error) {
	admin, err := k.loadAdmin(ctx)
	if err != nil {
		return false, err
	}
	return bytes.Equal(admin, sender), nil
}

// requireAdmin fails with ErrUnauthorized unless sender is the admin.
func (k Keeper) requireAdmin(ctx context.Context, sender string) error {
	// admin checks come before address parsing so that a missing contract
	// reports ErrNotInstantiated rather than an address error
	if _, err := k.loadAdmin(ctx); err != nil {
		return err
	}
	_, bz, err := k.canonicalize(sender)
	if err != nil {
		return types.ErrUnauthorized.Wrapf("sender %q is not the admin", sender)
	}
	ok, err := k.isAdmin(ctx, bz)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrUnauthorized.Wrapf("sender %s is not the admin", sender)
	}
	return nil
}

// loadPubKey returns the trusted voucher key, or ErrNotInstantiated.
func (k Keeper) loadPubKey(ctx context.Context) ([]byte, error) {
	key, err := k.PubKey.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, types.ErrNotInstantiated.Wrap("key not set")
		}
		return nil, err
	}
	return key, nil
}

// authorizer builds the voucher authorizer for the trusted key.
func (k Keeper) authorizer(ctx context.Context) (*voucher.Authorizer, error) {
	key, err := k.loadPubKey(ctx)
	if err != nil {
		return nil, err
	}
	return voucher.NewAuthorizer(key, k.signerPrefix, k.verifier)
}

// SignerAddress returns the bech32 address derived from the trusted key.
func (k Keeper) SignerAddress(ctx context.Context) (string, error) {
	auth, err := k.authorizer(ctx)
	if err != nil {
		return "", err
	}
	return auth.Signer(), nil
}

// NativeDenom returns the chain's designated denomination.
func (k Keeper) NativeDenom(ctx context.Context) (string, error) {
	denom, err := k.stakingKeeper.BondDenom(ctx)
	if err != nil {
		return "", err
	}
	return denom, nil
}

// ModuleAddress returns the account custodying campaign funds.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.authKeeper.GetModuleAddress(types.ModuleName)
}

// ContractBalance queries the bank for the module's holdings of denom.
func (k Keeper) ContractBalance(ctx context.Context, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, k.ModuleAddress(), denom)
}

// requireAdminOrOwner fails with ErrUnauthorized unless sender is the admin
// or owner.
func (k Keeper) requireAdminOrOwner(ctx context.Context, sender, owner string) error {
	human, bz, err := k.canonicalize(sender)
	if err != nil {
		return types.ErrUnauthorized.Wrapf("sender %q is neither admin nor owner", sender)
	}
	if human == owner {
		return nil
	}
	ok, err := k.isAdmin(ctx, bz)
	if err != nil {
		return err
	}
	if !ok {
		return types.ErrUnauthorized.Wrapf("sender %s is neither admin nor owner", sender)
	}
	return nil
}
