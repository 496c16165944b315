package keeper_test

import (
	"testing"

	"cosmossdk.io/core/address"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/keeper"
	rptestutil "github.com/btcq-org/rewardpool/x/rewardpool/testutil"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

const testDenom = "token"

type fixture struct {
	ctx          sdk.Context
	keeper       *keeper.Keeper
	msgServer    types.MsgServer
	queryServer  types.QueryServer
	addressCodec address.Codec
	bankKeeper   *rptestutil.MockBankKeeper
	moduleAddr   sdk.AccAddress
	admin        string
	voucherKey   *rptestutil.VoucherKey
}

func initFixture(t *testing.T) *fixture {
	t.Helper()
	addressCodec := addresscodec.NewBech32Codec(constants.DefaultAddressPrefix)
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	storeService := runtime.NewKVStoreService(storeKey)
	ctx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	ctrl := gomock.NewController(t)
	bankKeeper := rptestutil.NewMockBankKeeper(ctrl)
	authKeeper := rptestutil.NewMockAuthKeeper(ctrl)
	stakingKeeper := rptestutil.NewMockStakingKeeper(ctrl)

	moduleAddr := authtypes.NewModuleAddress(types.ModuleName)
	authKeeper.EXPECT().GetModuleAddress(types.ModuleName).Return(moduleAddr).AnyTimes()
	stakingKeeper.EXPECT().BondDenom(gomock.Any()).Return(testDenom, nil).AnyTimes()

	k := keeper.NewKeeper(
		storeService,
		addressCodec,
		authKeeper,
		bankKeeper,
		stakingKeeper,
		constants.DefaultAddressPrefix,
		nil,
	)

	return &fixture{
		ctx:          ctx,
		keeper:       &k,
		msgServer:    keeper.NewMsgServerImpl(&k),
		queryServer:  keeper.NewQueryServerImpl(k),
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
		moduleAddr:   moduleAddr,
		admin:        rptestutil.GetRandomAddress(),
		voucherKey:   rptestutil.NewVoucherKey(t, constants.DefaultAddressPrefix),
	}
}

// instantiate sets up the contract with the fixture admin and voucher key.
func (f *fixture) instantiate(t *testing.T) {
	t.Helper()
	_, err := f.msgServer.Instantiate(f.ctx, &types.MsgInstantiate{
		Sender: f.admin,
		PubKey: f.voucherKey.PubKey(),
	})
	require.NoError(t, err)
}

// setCampaign writes a campaign directly to the store.
func (f *fixture) setCampaign(t *testing.T, id, owner string, amount uint64) {
	t.Helper()
	require.NoError(t, f.keeper.Campaigns.Set(f.ctx, id, types.NewCampaign(owner, math.NewUint(amount))))
}

// accAddress decodes a bech32 account.
func (f *fixture) accAddress(t *testing.T, addr string) sdk.AccAddress {
	t.Helper()
	bz, err := f.addressCodec.StringToBytes(addr)
	require.NoError(t, err)
	return bz
}

// expectPayout expects exactly one bank send of amount to addr.
func (f *fixture) expectPayout(t *testing.T, addr string, amount int64) *gomock.Call {
	t.Helper()
	return f.bankKeeper.EXPECT().
		SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, f.accAddress(t, addr), sdk.NewCoins(sdk.NewInt64Coin(testDenom, amount))).
		Return(nil)
}

// lastEvent returns the most recent event emitted on the fixture context.
func (f *fixture) lastEvent(t *testing.T) sdk.Event {
	t.Helper()
	events := f.ctx.EventManager().Events()
	require.NotEmpty(t, events)
	return events[len(events)-1]
}

func attribute(ev sdk.Event, key string) string {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}

func TestNewKeeperSignerPrefix(t *testing.T) {
	f := initFixture(t)
	require.Equal(t, constants.DefaultAddressPrefix, f.keeper.SignerPrefix())
	require.Equal(t, f.moduleAddr, f.keeper.ModuleAddress())

	_, err := f.keeper.SignerAddress(f.ctx)
	require.ErrorIs(t, err, types.ErrNotInstantiated)

	f.instantiate(t)
	signer, err := f.keeper.SignerAddress(f.ctx)
	require.NoError(t, err)
	require.Equal(t, f.voucherKey.Signer(), signer)
}
