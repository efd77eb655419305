// Package epoch contains epoch processing libraries according to spec, able to
// process new balance for validators, justify and finalize new
// check points, and shuffle validators to different slots and
// committees.
package epoch

import (
	"context"
	"sort"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/validators"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/math"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
)

// ProcessRegistryUpdates rotates validators in and out of active pool.
// the amount to rotate is determined churn limit.
//
// Spec pseudocode definition:
//
//	def process_registry_updates(state: BeaconState) -> None:
//	  # Process activation eligibility and ejections
//	  for index, validator in enumerate(state.validators):
//	      if is_eligible_for_activation_queue(validator):
//	          validator.activation_eligibility_epoch = get_current_epoch(state) + 1
//
//	      if (
//	          is_active_validator(validator, get_current_epoch(state))
//	          and validator.effective_balance <= EJECTION_BALANCE
//	      ):
//	          initiate_validator_exit(state, ValidatorIndex(index))
//
//	  # Queue validators eligible for activation and not yet dequeued for activation
//	  activation_queue = sorted([
//	      index for index, validator in enumerate(state.validators)
//	      if is_eligible_for_activation(state, validator)
//	      # Order by the sequence of activation_eligibility_epoch setting and then index
//	  ], key=lambda index: (state.validators[index].activation_eligibility_epoch, index))
//	  # Dequeued validators for activation up to churn limit
//	  for index in activation_queue[:get_validator_churn_limit(state)]:
//	      validator = state.validators[index]
//	      validator.activation_epoch = compute_activation_exit_epoch(get_current_epoch(state))
func ProcessRegistryUpdates(ctx context.Context, st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	vals := st.Validators()
	var err error

	// A single pass over the registry collects the indices for each of the
	// three registry buckets; the buckets are mutually exclusive by
	// construction and mutations happen afterwards in bucket order.
	eligibleForActivationQ := make([]types.ValidatorIndex, 0)
	eligibleForActivation := make([]types.ValidatorIndex, 0)
	eligibleForEjection := make([]types.ValidatorIndex, 0)

	for idx, validator := range vals {
		// Collect validators eligible to enter the activation queue.
		if helpers.IsEligibleForActivationQueue(validator) {
			eligibleForActivationQ = append(eligibleForActivationQ, types.ValidatorIndex(idx))
		}

		// Collect validators to eject.
		isActive := helpers.IsActiveValidator(validator, currentEpoch)
		belowEjectionBalance := validator.EffectiveBalance <= params.BeaconConfig().EjectionBalance
		if isActive && belowEjectionBalance {
			eligibleForEjection = append(eligibleForEjection, types.ValidatorIndex(idx))
		}

		// Collect validators eligible for activation and not yet dequeued for activation.
		if helpers.IsEligibleForActivation(st, validator) {
			eligibleForActivation = append(eligibleForActivation, types.ValidatorIndex(idx))
		}
	}

	// Initiate validator exits for validators below the ejection balance. Ejections
	// run before any activation dequeues.
	for _, idx := range eligibleForEjection {
		// Here is fine to do a quadratic loop since this should
		// barely happen.
		st, err = validators.InitiateValidatorExit(ctx, st, idx)
		if err != nil {
			return nil, errors.Wrapf(err, "could not initiate exit for validator %d", idx)
		}
	}

	// Mark the validators eligible to enter the activation queue.
	for _, idx := range eligibleForActivationQ {
		validator, err := st.ValidatorAtIndex(idx)
		if err != nil {
			return nil, err
		}
		validator.ActivationEligibilityEpoch = currentEpoch + 1
		if err := st.UpdateValidatorAtIndex(idx, validator); err != nil {
			return nil, err
		}
	}

	// Order by the sequence of activation_eligibility_epoch setting and then index.
	sort.Sort(sortableIndices{indices: eligibleForActivation, validators: vals})

	// Only activate just enough validators according to the activation churn limit.
	limit := uint64(len(eligibleForActivation))
	activeValidatorCount, err := helpers.ActiveValidatorCount(ctx, st, currentEpoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active validator count")
	}

	churnLimit, err := helpers.ValidatorChurnLimit(activeValidatorCount)
	if err != nil {
		return nil, errors.Wrap(err, "could not get churn limit")
	}

	// Prevent churn limit cause index out of bound issue.
	if churnLimit < limit {
		limit = churnLimit
	}

	activationExitEpoch := helpers.ActivationExitEpoch(currentEpoch)
	for _, index := range eligibleForActivation[:limit] {
		validator, err := st.ValidatorAtIndex(index)
		if err != nil {
			return nil, err
		}
		validator.ActivationEpoch = activationExitEpoch
		if err := st.UpdateValidatorAtIndex(index, validator); err != nil {
			return nil, err
		}
	}
	return st, nil
}

// ProcessSlashings processes the slashed validators during epoch processing,
//
//	def process_slashings(state: BeaconState) -> None:
//	  epoch = get_current_epoch(state)
//	  total_balance = get_total_active_balance(state)
//	  adjusted_total_slashing_balance = min(sum(state.slashings) * PROPORTIONAL_SLASHING_MULTIPLIER, total_balance)
//	  for index, validator in enumerate(state.validators):
//	      if validator.slashed and epoch + EPOCHS_PER_SLASHINGS_VECTOR // 2 == validator.withdrawable_epoch:
//	          increment = EFFECTIVE_BALANCE_INCREMENT  # Factored out from penalty numerator to avoid uint64 overflow
//	          penalty_numerator = validator.effective_balance // increment * adjusted_total_slashing_balance
//	          penalty = penalty_numerator // total_balance * increment
//	          decrease_balance(state, ValidatorIndex(index), penalty)
func ProcessSlashings(st *state.BeaconState, slashingMultiplier uint64) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	totalBalance, err := helpers.TotalActiveBalance(st)
	if err != nil {
		return nil, errors.Wrap(err, "could not get total active balance")
	}

	// Compute slashed balances in the current epoch
	exitLength := params.BeaconConfig().EpochsPerSlashingsVector

	// Compute the sum of state slashings
	slashings := st.Slashings()
	totalSlashing := uint64(0)
	for _, slashing := range slashings {
		totalSlashing += slashing
	}

	// a callback is used here to apply the following actions to all validators
	// below equally.
	increment := params.BeaconConfig().EffectiveBalanceIncrement
	minSlashing := math.Min(totalSlashing*slashingMultiplier, totalBalance)
	err = st.ApplyToEveryValidator(func(idx int, val *ethpb.Validator) (bool, *ethpb.Validator, error) {
		correctEpoch := (currentEpoch + exitLength/2) == val.WithdrawableEpoch
		if val.Slashed && correctEpoch {
			penaltyNumerator := val.EffectiveBalance / increment * minSlashing
			penalty := penaltyNumerator / totalBalance * increment
			if err := helpers.DecreaseBalance(st, types.ValidatorIndex(idx), penalty); err != nil {
				return false, val, err
			}
		}
		return false, val, nil
	})
	return st, err
}

// ProcessEth1DataReset processes updates to ETH1 data votes during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_eth1_data_reset(state: BeaconState) -> None:
//	  next_epoch = Epoch(get_current_epoch(state) + 1)
//	  # Reset eth1 data votes
//	  if next_epoch % EPOCHS_PER_ETH1_VOTING_PERIOD == 0:
//	      state.eth1_data_votes = []
func ProcessEth1DataReset(st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	nextEpoch := currentEpoch + 1

	// Reset ETH1 data votes.
	if nextEpoch%params.BeaconConfig().EpochsPerEth1VotingPeriod == 0 {
		if err := st.SetEth1DataVotes([]*ethpb.Eth1Data{}); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// ProcessEffectiveBalanceUpdates processes effective balance updates during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_effective_balance_updates(state: BeaconState) -> None:
//	  # Update effective balances with hysteresis
//	  for index, validator in enumerate(state.validators):
//	      balance = state.balances[index]
//	      HYSTERESIS_INCREMENT = uint64(EFFECTIVE_BALANCE_INCREMENT // HYSTERESIS_QUOTIENT)
//	      DOWNWARD_THRESHOLD = HYSTERESIS_INCREMENT * HYSTERESIS_DOWNWARD_MULTIPLIER
//	      UPWARD_THRESHOLD = HYSTERESIS_INCREMENT * HYSTERESIS_UPWARD_MULTIPLIER
//	      if (
//	          balance + DOWNWARD_THRESHOLD < validator.effective_balance
//	          or validator.effective_balance + UPWARD_THRESHOLD < balance
//	      ):
//	          validator.effective_balance = min(balance - balance % EFFECTIVE_BALANCE_INCREMENT, MAX_EFFECTIVE_BALANCE)
func ProcessEffectiveBalanceUpdates(st *state.BeaconState) (*state.BeaconState, error) {
	effBalanceInc := params.BeaconConfig().EffectiveBalanceIncrement
	maxEffBalance := params.BeaconConfig().MaxEffectiveBalance
	hysteresisInc := effBalanceInc / params.BeaconConfig().HysteresisQuotient
	downwardThreshold := hysteresisInc * params.BeaconConfig().HysteresisDownwardMultiplier
	upwardThreshold := hysteresisInc * params.BeaconConfig().HysteresisUpwardMultiplier

	bals := st.Balances()

	// Update effective balances with hysteresis.
	validatorFunc := func(idx int, val *ethpb.Validator) (bool, *ethpb.Validator, error) {
		if val == nil {
			return false, nil, errors.Errorf("validator %d is nil in state", idx)
		}
		if idx >= len(bals) {
			return false, nil, errors.Errorf("validator index exceeds validator length in state %d >= %d", idx, len(bals))
		}
		balance := bals[idx]

		if balance+downwardThreshold < val.EffectiveBalance || val.EffectiveBalance+upwardThreshold < balance {
			effectiveBal := maxEffBalance
			if effectiveBal > balance-balance%effBalanceInc {
				effectiveBal = balance - balance%effBalanceInc
			}
			if effectiveBal != val.EffectiveBalance {
				newVal := ethpb.CopyValidator(val)
				newVal.EffectiveBalance = effectiveBal
				return true, newVal, nil
			}
			return false, val, nil
		}
		return false, val, nil
	}

	if err := st.ApplyToEveryValidator(validatorFunc); err != nil {
		return nil, err
	}

	return st, nil
}

// ProcessSlashingsReset processes the total slashing balances updates during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_slashings_reset(state: BeaconState) -> None:
//	  next_epoch = Epoch(get_current_epoch(state) + 1)
//	  # Reset slashings
//	  state.slashings[next_epoch % EPOCHS_PER_SLASHINGS_VECTOR] = Gwei(0)
func ProcessSlashingsReset(st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	nextEpoch := currentEpoch + 1

	// Set total slashed balances.
	slashedExitLength := params.BeaconConfig().EpochsPerSlashingsVector
	slashedEpoch := uint64(nextEpoch % slashedExitLength)
	slashings := st.Slashings()
	if uint64(len(slashings)) != uint64(slashedExitLength) {
		return nil, errors.Errorf(
			"state slashing length %d different than EpochsPerSlashingsVector %d",
			len(slashings),
			slashedExitLength,
		)
	}
	if err := st.UpdateSlashingsAtIndex(slashedEpoch /* index */, 0 /* value */); err != nil {
		return nil, err
	}

	return st, nil
}

// ProcessRandaoMixesReset processes the final updates to RANDAO mix during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_randao_mixes_reset(state: BeaconState) -> None:
//	  current_epoch = get_current_epoch(state)
//	  next_epoch = Epoch(current_epoch + 1)
//	  # Set randao mix
//	  state.randao_mixes[next_epoch % EPOCHS_PER_HISTORICAL_VECTOR] = get_randao_mix(state, current_epoch)
func ProcessRandaoMixesReset(st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	nextEpoch := currentEpoch + 1

	// Set RANDAO mix.
	randaoMixLength := params.BeaconConfig().EpochsPerHistoricalVector
	if uint64(st.RandaoMixesLength()) != uint64(randaoMixLength) {
		return nil, errors.Errorf(
			"state randao length %d different than EpochsPerHistoricalVector %d",
			st.RandaoMixesLength(),
			randaoMixLength,
		)
	}
	mix, err := helpers.RandaoMix(st, currentEpoch)
	if err != nil {
		return nil, err
	}
	if err := st.UpdateRandaoMixesAtIndex(uint64(nextEpoch%randaoMixLength), mix); err != nil {
		return nil, err
	}

	return st, nil
}

// ProcessHistoricalRootsUpdate processes the updates to historical root accumulator during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_historical_roots_update(state: BeaconState) -> None:
//	  # Set historical root accumulator
//	  next_epoch = Epoch(get_current_epoch(state) + 1)
//	  if next_epoch % (SLOTS_PER_HISTORICAL_ROOT // SLOTS_PER_EPOCH) == 0:
//	      historical_batch = HistoricalBatch(block_roots=state.block_roots, state_roots=state.state_roots)
//	      state.historical_roots.append(hash_tree_root(historical_batch))
func ProcessHistoricalRootsUpdate(st *state.BeaconState) (*state.BeaconState, error) {
	currentEpoch := coretime.CurrentEpoch(st)
	nextEpoch := currentEpoch + 1

	// Set historical root accumulator.
	epochsPerHistoricalRoot := uint64(params.BeaconConfig().SlotsPerHistoricalRoot / params.BeaconConfig().SlotsPerEpoch)
	if uint64(nextEpoch)%epochsPerHistoricalRoot == 0 {
		batch := &ethpb.HistoricalBatch{
			BlockRoots: st.BlockRoots(),
			StateRoots: st.StateRoots(),
		}
		batchRoot, err := batch.HashTreeRoot()
		if err != nil {
			return nil, errors.Wrap(err, "could not hash historical batch")
		}
		if err := st.AppendHistoricalRoots(batchRoot); err != nil {
			return nil, err
		}
	}

	return st, nil
}

// ProcessParticipationRecordUpdates rotates current/previous epoch attestations during epoch processing.
//
// Spec pseudocode definition:
//
//	def process_participation_record_updates(state: BeaconState) -> None:
//	  # Rotate current/previous epoch attestations
//	  state.previous_epoch_attestations = state.current_epoch_attestations
//	  state.current_epoch_attestations = []
func ProcessParticipationRecordUpdates(st *state.BeaconState) (*state.BeaconState, error) {
	currAtts, err := st.CurrentEpochAttestations()
	if err != nil {
		return nil, err
	}
	if err := st.SetPreviousEpochAttestations(currAtts); err != nil {
		return nil, err
	}
	if err := st.SetCurrentEpochAttestations([]*ethpb.PendingAttestation{}); err != nil {
		return nil, err
	}
	return st, nil
}

// ProcessFinalUpdates processes the final updates during epoch processing.
// This function is a spec shortcut for the phase 0 resets (f) through (k): eth1 data votes,
// effective balances with hysteresis, slashings vector, randao mixes, historical root
// accumulator and the pending attestation rotation.
func ProcessFinalUpdates(st *state.BeaconState) (*state.BeaconState, error) {
	var err error
	st, err = ProcessEth1DataReset(st)
	if err != nil {
		return nil, err
	}
	st, err = ProcessEffectiveBalanceUpdates(st)
	if err != nil {
		return nil, err
	}
	st, err = ProcessSlashingsReset(st)
	if err != nil {
		return nil, err
	}
	st, err = ProcessRandaoMixesReset(st)
	if err != nil {
		return nil, err
	}
	st, err = ProcessHistoricalRootsUpdate(st)
	if err != nil {
		return nil, err
	}
	st, err = ProcessParticipationRecordUpdates(st)
	if err != nil {
		return nil, err
	}
	return st, nil
}
