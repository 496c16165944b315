package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if !genState.IsInstantiated() {
		return nil
	}
	_, admin, err := k.canonicalize(genState.Admin)
	if err != nil {
		return fmt.Errorf("failed to set admin: %w", err)
	}
	if err := k.Admin.Set(ctx, admin); err != nil {
		return err
	}
	if err := k.PubKey.Set(ctx, genState.PubKey); err != nil {
		return err
	}
	if genState.Version != nil {
		if err := k.ContractVersion.Set(ctx, *genState.Version); err != nil {
			return err
		}
	}
	for _, entry := range genState.Campaigns {
		if err := k.Campaigns.Set(ctx, entry.ID, entry.Campaign); err != nil {
			return fmt.Errorf("failed to set campaign %s: %w", entry.ID, err)
		}
	}
	for _, nonce := range genState.UsedNonces {
		if err := k.Nonces.Set(ctx, nonce, true); err != nil {
			return fmt.Errorf("failed to set nonce %s: %w", nonce, err)
		}
	}
	return nil
}

// ExportGenesis returns the module's exported genesis.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()
	admin, err := k.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, types.ErrNotInstantiated) {
			return genesis, nil
		}
		return nil, err
	}
	genesis.Admin = admin
	genesis.PubKey, err = k.loadPubKey(ctx)
	if err != nil {
		return nil, err
	}
	version, err := k.ContractVersion.Get(ctx)
	switch {
	case err == nil:
		genesis.Version = &version
	case !errors.Is(err, collections.ErrNotFound):
		return nil, err
	}

	genesis.Campaigns, err = k.GetAllCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	err = k.Nonces.Walk(ctx, nil, func(nonce string, _ bool) (bool, error) {
		genesis.UsedNonces = append(genesis.UsedNonces, nonce)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return genesis, nil
}
