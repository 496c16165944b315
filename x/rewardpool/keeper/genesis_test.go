package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/btcq-org/rewardpool/constants"
	rptestutil "github.com/btcq-org/rewardpool/x/rewardpool/testutil"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	"github.com/stretchr/testify/require"
)

func TestGenesis(t *testing.T) {
	owner := rptestutil.GetRandomAddress()
	f := initFixture(t)
	genesisState := types.GenesisState{
		Admin:   f.admin,
		PubKey:  f.voucherKey.PubKey(),
		Version: &types.ContractVersion{Contract: constants.ContractName, Version: constants.ContractVersion},
		Campaigns: []types.CampaignEntry{
			{ID: "c1", Campaign: types.NewCampaign(owner, math.NewUint(10))},
			{ID: "c2", Campaign: types.NewCampaign(f.admin, math.ZeroUint())},
		},
		UsedNonces: []string{"n1", "n2"},
	}
	require.NoError(t, genesisState.Validate())

	err := f.keeper.InitGenesis(f.ctx, genesisState)
	require.NoError(t, err)

	got, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Admin, got.Admin)
	require.Equal(t, genesisState.PubKey, got.PubKey)
	require.Equal(t, genesisState.Version, got.Version)
	require.Equal(t, genesisState.UsedNonces, got.UsedNonces)
	require.Len(t, got.Campaigns, 2)
	for i, entry := range genesisState.Campaigns {
		require.Equal(t, entry.ID, got.Campaigns[i].ID)
		require.Equal(t, entry.Campaign.Owner, got.Campaigns[i].Campaign.Owner)
		require.Equal(t, entry.Campaign.Amount.String(), got.Campaigns[i].Campaign.Amount.String())
	}

	used, err := f.keeper.IsNonceUsed(f.ctx, "n2")
	require.NoError(t, err)
	require.True(t, used)
}

func TestGenesisUninstantiated(t *testing.T) {
	f := initFixture(t)
	require.NoError(t, f.keeper.InitGenesis(f.ctx, *types.DefaultGenesis()))
	got, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.Equal(t, types.DefaultGenesis(), got)
}
