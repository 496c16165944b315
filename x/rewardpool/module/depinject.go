package module

import (
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/keeper"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	"github.com/spf13/cast"
)

// FlagSignerPrefix overrides the bech32 prefix of the voucher signer address.
const FlagSignerPrefix = "rewardpool.signer-prefix"

var _ depinject.OnePerModuleType = AppModule{}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface.
func (AppModule) IsOnePerModuleType() {}

type ModuleInputs struct {
	depinject.In

	StoreService store.KVStoreService
	AddressCodec address.Codec

	AuthKeeper    types.AuthKeeper
	BankKeeper    types.BankKeeper
	StakingKeeper types.StakingKeeper
	AppOpts       servertypes.AppOptions `optional:"true"`
}

type ModuleOutputs struct {
	depinject.Out

	RewardPoolKeeper keeper.Keeper
	Module           appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	prefix := constants.DefaultAddressPrefix
	if in.AppOpts != nil {
		if p := cast.ToString(in.AppOpts.Get(FlagSignerPrefix)); p != "" {
			prefix = p
		}
	}
	k := keeper.NewKeeper(
		in.StoreService,
		in.AddressCodec,
		in.AuthKeeper,
		in.BankKeeper,
		in.StakingKeeper,
		prefix,
		nil,
	)
	m := NewAppModule(k)
	return ModuleOutputs{RewardPoolKeeper: k, Module: m}
}
