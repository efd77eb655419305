package precompute

import (
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// UnrealizedCheckpoints returns the justification and finalization checkpoints of the
// given state as if it was progressed with empty slots until the next epoch.
func UnrealizedCheckpoints(st *state.BeaconState, pBal *Balance) (*ethpb.Checkpoint, *ethpb.Checkpoint, error) {
	newBits := st.JustificationBits()
	newBits.Shift(1)
	jc, fc, err := computeCheckpoints(st, pBal, newBits)
	if err != nil {
		return nil, nil, err
	}
	return jc, fc, nil
}

// ProcessJustificationAndFinalizationPreCompute processes justification and finalization during
// epoch processing. This is where a beacon node can justify and finalize a new epoch.
// Note: this is an optimized version by passing in precomputed total and attesting balances.
//
// Spec pseudocode definition:
//
//	def process_justification_and_finalization(state: BeaconState) -> None:
//	  # Initial FFG checkpoint values have a `0x00` stub for `root`.
//	  # Skip FFG updates in the first two epochs to avoid corner cases that might result in modifying this stub.
//	  if get_current_epoch(state) <= GENESIS_EPOCH + 1:
//	      return
//	  previous_attestations = get_matching_target_attestations(state, get_previous_epoch(state))
//	  current_attestations = get_matching_target_attestations(state, get_current_epoch(state))
//	  total_active_balance = get_total_active_balance(state)
//	  previous_target_balance = get_attesting_balance(state, previous_attestations)
//	  current_target_balance = get_attesting_balance(state, current_attestations)
//	  weigh_justification_and_finalization(state, total_active_balance, previous_target_balance, current_target_balance)
func ProcessJustificationAndFinalizationPreCompute(st *state.BeaconState, pBal *Balance) (*state.BeaconState, error) {
	canProcessSlot, err := slotsCanProcessEpoch()
	if err != nil {
		return nil, err
	}
	if st.Slot() <= canProcessSlot {
		return st, nil
	}
	return weighJustificationAndFinalization(st, pBal)
}

// slotsCanProcessEpoch returns the slot at the end of epoch 1; up to and
// including this slot justification and finalization is a no-op.
func slotsCanProcessEpoch() (types.Slot, error) {
	return params.BeaconConfig().SlotsPerEpoch*2 - 1, nil
}

// weighJustificationAndFinalization processes justification and finalization during
// epoch processing. This is where a beacon node can justify and finalize a new epoch.
func weighJustificationAndFinalization(st *state.BeaconState, pBal *Balance) (*state.BeaconState, error) {
	// Shift the justification bits left by one; bit 0 belongs to the
	// current epoch from here on.
	newBits := st.JustificationBits()
	newBits.Shift(1)
	jc, fc, err := computeCheckpoints(st, pBal, newBits)
	if err != nil {
		return nil, err
	}

	if err := st.SetPreviousJustifiedCheckpoint(st.CurrentJustifiedCheckpoint()); err != nil {
		return nil, err
	}
	if err := st.SetJustificationBits(newBits); err != nil {
		return nil, err
	}
	if err := st.SetCurrentJustifiedCheckpoint(jc); err != nil {
		return nil, err
	}
	if err := st.SetFinalizedCheckpoint(fc); err != nil {
		return nil, err
	}
	return st, nil
}

// computeCheckpoints computes the new justification and finalization
// checkpoints at epoch transition.
func computeCheckpoints(st *state.BeaconState, pBal *Balance, newBits bitfield.Bitvector4) (*ethpb.Checkpoint, *ethpb.Checkpoint, error) {
	prevEpoch := coretime.PrevEpoch(st)
	currentEpoch := coretime.CurrentEpoch(st)
	oldPrevJustifiedCheckpoint := st.PreviousJustifiedCheckpoint()
	oldCurrJustifiedCheckpoint := st.CurrentJustifiedCheckpoint()
	justifiedCheckpoint := st.CurrentJustifiedCheckpoint()
	finalizedCheckpoint := st.FinalizedCheckpoint()

	// If 2/3 or more of total balance attested in the previous epoch.
	if 3*pBal.PrevEpochTargetAttested >= 2*pBal.ActiveCurrentEpoch {
		blockRoot, err := helpers.BlockRoot(st, prevEpoch)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not get block root for previous epoch %d", prevEpoch)
		}
		justifiedCheckpoint = &ethpb.Checkpoint{Epoch: prevEpoch, Root: blockRoot}
		newBits.SetBitAt(1, true)
	}

	// If 2/3 or more of the total balance attested in the current epoch.
	if 3*pBal.CurrentEpochTargetAttested >= 2*pBal.ActiveCurrentEpoch {
		blockRoot, err := helpers.BlockRoot(st, currentEpoch)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not get block root for current epoch %d", currentEpoch)
		}
		justifiedCheckpoint = &ethpb.Checkpoint{Epoch: currentEpoch, Root: blockRoot}
		newBits.SetBitAt(0, true)
	}

	// Process finalization according to Ethereum Beacon Chain specification.
	justification := newBits.Bytes()[0]

	// 2nd/3rd/4th (0b1110) most recent epochs are justified, the 2nd using the 4th as source.
	if justification&0x0E == 0x0E && (oldPrevJustifiedCheckpoint.Epoch+3) == currentEpoch {
		finalizedCheckpoint = oldPrevJustifiedCheckpoint
	}

	// 2nd/3rd (0b0110) most recent epochs are justified, the 2nd using the 3rd as source.
	if justification&0x06 == 0x06 && (oldPrevJustifiedCheckpoint.Epoch+2) == currentEpoch {
		finalizedCheckpoint = oldPrevJustifiedCheckpoint
	}

	// 1st/2nd/3rd (0b0111) most recent epochs are justified, the 1st using the 3rd as source.
	if justification&0x07 == 0x07 && (oldCurrJustifiedCheckpoint.Epoch+2) == currentEpoch {
		finalizedCheckpoint = oldCurrJustifiedCheckpoint
	}

	// The 1st/2nd (0b0011) most recent epochs are justified, the 1st using the 2nd as source
	if justification&0x03 == 0x03 && (oldCurrJustifiedCheckpoint.Epoch+1) == currentEpoch {
		finalizedCheckpoint = oldCurrJustifiedCheckpoint
	}
	return justifiedCheckpoint, finalizedCheckpoint, nil
}
