package precompute

import (
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/math"
	"github.com/fredriksvantes/lodestar/runtime/version"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
)

// ProcessSlashingsPrecompute processes the slashed validators during epoch processing.
// This is an optimized version by passing in precomputed total epoch balances.
func ProcessSlashingsPrecompute(st *state.BeaconState, pBal *Balance) error {
	currentEpoch := coretime.CurrentEpoch(st)
	exitLength := params.BeaconConfig().EpochsPerSlashingsVector

	// Compute the sum of state slashings
	slashings := st.Slashings()
	totalSlashing := uint64(0)
	for _, slashing := range slashings {
		totalSlashing += slashing
	}

	var multiplier uint64
	switch st.Version() {
	case version.Phase0:
		multiplier = params.BeaconConfig().ProportionalSlashingMultiplier
	case version.Altair:
		multiplier = params.BeaconConfig().ProportionalSlashingMultiplierAltair
	default:
		return errors.Errorf("unknown state version %s", version.String(st.Version()))
	}

	minSlashing := math.Min(totalSlashing*multiplier, pBal.ActiveCurrentEpoch)
	epochToWithdraw := currentEpoch + exitLength/2

	var hasSlashing bool
	// Iterate through the whole validator list in state to find whether any validator satisfies the slashing condition of current epoch.
	err := st.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		correctEpoch := epochToWithdraw == val.WithdrawableEpoch()
		if val.Slashed() && correctEpoch {
			hasSlashing = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Exit early if there's no meaningful slashing to process.
	if !hasSlashing {
		return nil
	}

	increment := params.BeaconConfig().EffectiveBalanceIncrement
	validatorFunc := func(idx int, val *ethpb.Validator) (bool, *ethpb.Validator, error) {
		correctEpoch := epochToWithdraw == val.WithdrawableEpoch
		if val.Slashed && correctEpoch {
			penaltyNumerator := val.EffectiveBalance / increment * minSlashing
			penalty := penaltyNumerator / pBal.ActiveCurrentEpoch * increment
			if err := helpers.DecreaseBalance(st, types.ValidatorIndex(idx), penalty); err != nil {
				return false, val, err
			}
		}
		return false, val, nil
	}

	return st.ApplyToEveryValidator(validatorFunc)
}
