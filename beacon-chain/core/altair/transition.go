package altair

import (
	"context"

	e "github.com/fredriksvantes/lodestar/beacon-chain/core/epoch"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/epoch/precompute"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// ProcessEpoch describes the per epoch operations that are performed on the beacon state.
// It's optimized by pre computing validator attested info and epoch total/attested balances upfront.
//
// Spec code:
// def process_epoch(state: BeaconState) -> None:
//
//	process_justification_and_finalization(state)  # [Modified in Altair]
//	process_inactivity_updates(state)  # [New in Altair]
//	process_rewards_and_penalties(state)  # [Modified in Altair]
//	process_registry_updates(state)
//	process_slashings(state)  # [Modified in Altair]
//	process_eth1_data_reset(state)
//	process_effective_balance_updates(state)
//	process_slashings_reset(state)
//	process_randao_mixes_reset(state)
//	process_historical_roots_update(state)
//	process_participation_flag_updates(state)  # [New in Altair]
//	process_sync_committee_updates(state)  # [New in Altair]
func ProcessEpoch(ctx context.Context, beaconState *state.BeaconState) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "altair.ProcessEpoch")
	defer span.End()

	if beaconState == nil || beaconState.IsNil() {
		return nil, errors.New("nil state")
	}
	vals, bal, err := InitializePrecomputeValidators(ctx, beaconState)
	if err != nil {
		return nil, err
	}

	// New in Altair.
	vals, bal, err = ProcessEpochParticipation(ctx, beaconState, bal, vals)
	if err != nil {
		return nil, err
	}

	beaconState, err = precompute.ProcessJustificationAndFinalizationPreCompute(beaconState, bal)
	if err != nil {
		return nil, errors.Wrap(err, "could not process justification")
	}

	// New in Altair.
	beaconState, vals, err = ProcessInactivityScores(ctx, beaconState, vals)
	if err != nil {
		return nil, errors.Wrap(err, "could not process inactivity updates")
	}

	// Modified in Altair.
	beaconState, err = ProcessRewardsAndPenaltiesPrecompute(beaconState, bal, vals)
	if err != nil {
		return nil, errors.Wrap(err, "could not process rewards and penalties")
	}

	beaconState, err = e.ProcessRegistryUpdates(ctx, beaconState)
	if err != nil {
		return nil, errors.Wrap(err, "could not process registry updates")
	}

	// Modified in Altair.
	err = precompute.ProcessSlashingsPrecompute(beaconState, bal)
	if err != nil {
		return nil, err
	}

	beaconState, err = e.ProcessEth1DataReset(beaconState)
	if err != nil {
		return nil, err
	}
	beaconState, err = e.ProcessEffectiveBalanceUpdates(beaconState)
	if err != nil {
		return nil, err
	}
	beaconState, err = e.ProcessSlashingsReset(beaconState)
	if err != nil {
		return nil, err
	}
	beaconState, err = e.ProcessRandaoMixesReset(beaconState)
	if err != nil {
		return nil, err
	}
	beaconState, err = e.ProcessHistoricalRootsUpdate(beaconState)
	if err != nil {
		return nil, err
	}

	// New in Altair.
	beaconState, err = ProcessParticipationFlagUpdates(beaconState)
	if err != nil {
		return nil, err
	}

	// New in Altair.
	beaconState, err = ProcessSyncCommitteeUpdates(ctx, beaconState)
	if err != nil {
		return nil, err
	}

	return beaconState, nil
}
