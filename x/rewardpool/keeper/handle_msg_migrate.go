package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"github.com/Masterminds/semver/v3"
	"github.com/btcq-org/rewardpool/constants"
	"github.com/btcq-org/rewardpool/x/rewardpool/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Migrate moves the stored contract version forward to the running code
// version. Downgrades, re-runs and foreign contracts are refused.
func (s *msgServer) Migrate(ctx context.Context, msg *types.MsgMigrate) (*types.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	return s.execute(ctx, types.EventTypeMigrate, func(ctx sdk.Context) (*types.Response, error) {
		if err := s.k.requireAdmin(ctx, msg.Sender); err != nil {
			return nil, err
		}
		current, err := s.k.ContractVersion.Get(ctx)
		if err != nil {
			if errors.Is(err, collections.ErrNotFound) {
				return nil, types.ErrMigration.Wrap("no contract version recorded")
			}
			return nil, err
		}
		if err := checkMigration(current, constants.ContractName, constants.ContractVersion); err != nil {
			return nil, err
		}
		if err := s.k.ContractVersion.Set(ctx, types.ContractVersion{
			Contract: constants.ContractName,
			Version:  constants.ContractVersion,
		}); err != nil {
			return nil, err
		}
		return types.NewResponse(types.MethodMigrate).
			AddAttribute(types.AttributeKeyVersion, constants.ContractVersion), nil
	})
}

// checkMigration allows moving from current to name@version only for the
// same contract and a strictly newer version.
func checkMigration(current types.ContractVersion, name, version string) error {
	if current.Contract != name {
		return types.ErrMigration.Wrapf("can only upgrade from same contract type, stored %s", current.Contract)
	}
	next, err := semver.NewVersion(version)
	if err != nil {
		return types.ErrMigration.Wrapf("invalid code version %s: %v", version, err)
	}
	stored, err := semver.NewVersion(current.Version)
	if err != nil {
		return types.ErrMigration.Wrapf("invalid stored version %s: %v", current.Version, err)
	}
	if !stored.LessThan(next) {
		return types.ErrMigration.Wrapf("cannot upgrade from a newer contract version, stored %s, code %s", stored, next)
	}
	return nil
}
