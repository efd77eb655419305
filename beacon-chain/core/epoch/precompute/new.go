package precompute

import (
	"context"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	"go.opencensus.io/trace"
)

// New gets called at the beginning of process epoch cycle to return
// pre computed instances of validators attesting records and total
// balances attested in an epoch.
func New(ctx context.Context, st *state.BeaconState) ([]*Validator, *Balance, error) {
	_, span := trace.StartSpan(ctx, "precomputeEpoch.New")
	defer span.End()

	pValidators := make([]*Validator, st.NumValidators())
	pBal := &Balance{}

	currentEpoch := time.CurrentEpoch(st)
	prevEpoch := time.PrevEpoch(st)

	if err := st.ReadFromEveryValidator(func(idx int, val state.ReadOnlyValidator) error {
		// Was validator withdrawable or slashed
		withdrawable := currentEpoch >= val.WithdrawableEpoch()
		pVal := &Validator{
			IsSlashed:                    val.Slashed(),
			IsWithdrawableCurrentEpoch:   withdrawable,
			CurrentEpochEffectiveBalance: val.EffectiveBalance(),
			InclusionSlot:                params.BeaconConfig().FarFutureSlot,
			InclusionDistance:            params.BeaconConfig().FarFutureSlot,
		}
		// Was validator active current epoch
		if helpers.IsActiveValidatorUsingTrie(val, currentEpoch) {
			pVal.IsActiveCurrentEpoch = true
			pBal.ActiveCurrentEpoch += val.EffectiveBalance()
		}
		// Was validator active previous epoch
		if helpers.IsActiveValidatorUsingTrie(val, prevEpoch) {
			pVal.IsActivePrevEpoch = true
			pBal.ActivePrevEpoch += val.EffectiveBalance()
		}
		pValidators[idx] = pVal
		return nil
	}); err != nil {
		return nil, nil, err
	}

	// Only the active balances are floored here; the attested balances are
	// summed by UpdateBalance, which applies the same lower bound.
	ebi := params.BeaconConfig().EffectiveBalanceIncrement
	if pBal.ActiveCurrentEpoch < ebi {
		pBal.ActiveCurrentEpoch = ebi
	}
	if pBal.ActivePrevEpoch < ebi {
		pBal.ActivePrevEpoch = ebi
	}

	return pValidators, pBal, nil
}
