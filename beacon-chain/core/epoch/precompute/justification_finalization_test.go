package precompute_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/epoch/precompute"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func justificationState(t *testing.T, slot types.Slot) *state.BeaconState {
	vals, bals := util.DeterministicValidators(8)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = slot
		return util.FillRootsNaturalOpt(s)
	})
	require.NoError(t, err)
	return st
}

func TestProcessJustificationAndFinalization_NoOpBeforeEpochTwo(t *testing.T) {
	st0 := justificationState(t, params.BeaconConfig().SlotsPerEpoch*2-1)
	pBal := &precompute.Balance{
		ActiveCurrentEpoch:      8 * params.BeaconConfig().MaxEffectiveBalance,
		PrevEpochTargetAttested: 8 * params.BeaconConfig().MaxEffectiveBalance,
	}
	st, err := precompute.ProcessJustificationAndFinalizationPreCompute(st0, pBal)
	require.NoError(t, err)
	// Genesis and epoch 1 skip FFG updates entirely.
	assert.Equal(t, types.Epoch(0), st.CurrentJustifiedCheckpoint().Epoch)
	assert.Equal(t, types.Epoch(0), st.FinalizedCheckpoint().Epoch)
	assert.Equal(t, uint8(0), st.JustificationBits().Bytes()[0])
}

func TestProcessJustificationAndFinalization_JustifiesPrevEpoch(t *testing.T) {
	// End of epoch 2: a 2/3 previous-epoch target vote justifies epoch 1.
	st0 := justificationState(t, params.BeaconConfig().SlotsPerEpoch*3-1)
	total := 8 * params.BeaconConfig().MaxEffectiveBalance
	pBal := &precompute.Balance{
		ActiveCurrentEpoch:      total,
		PrevEpochTargetAttested: total, // full vote
	}
	st, err := precompute.ProcessJustificationAndFinalizationPreCompute(st0, pBal)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(1), st.CurrentJustifiedCheckpoint().Epoch)
	// Bit 1 (previous epoch) is set after the shift.
	assert.Equal(t, true, st.JustificationBits().BitAt(1))
	assert.Equal(t, false, st.JustificationBits().BitAt(0))
	// No finalization from a single justification.
	assert.Equal(t, types.Epoch(0), st.FinalizedCheckpoint().Epoch)
}

func TestProcessJustificationAndFinalization_JustifiesCurrentEpoch(t *testing.T) {
	st0 := justificationState(t, params.BeaconConfig().SlotsPerEpoch*3-1)
	total := 8 * params.BeaconConfig().MaxEffectiveBalance
	pBal := &precompute.Balance{
		ActiveCurrentEpoch:         total,
		CurrentEpochTargetAttested: total,
	}
	st, err := precompute.ProcessJustificationAndFinalizationPreCompute(st0, pBal)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(2), st.CurrentJustifiedCheckpoint().Epoch)
	assert.Equal(t, true, st.JustificationBits().BitAt(0))
}

func TestProcessJustificationAndFinalization_BelowThresholdIsNoop(t *testing.T) {
	st0 := justificationState(t, params.BeaconConfig().SlotsPerEpoch*3-1)
	total := 8 * params.BeaconConfig().MaxEffectiveBalance
	pBal := &precompute.Balance{
		ActiveCurrentEpoch:      total,
		PrevEpochTargetAttested: total / 2, // below 2/3
	}
	st, err := precompute.ProcessJustificationAndFinalizationPreCompute(st0, pBal)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(0), st.CurrentJustifiedCheckpoint().Epoch)
	assert.Equal(t, uint8(0), st.JustificationBits().Bytes()[0])
}

func TestProcessJustificationAndFinalization_FinalizesWithConsecutiveJustifications(t *testing.T) {
	// End of epoch 3, with epoch 2 already justified (bit 0 set pre-shift).
	// A full current-epoch vote justifies epoch 3 and rule 0b0011 finalizes
	// epoch 2, the old current justified checkpoint.
	st0 := justificationState(t, params.BeaconConfig().SlotsPerEpoch*4-1)
	root, err := st0.BlockRootAtIndex(uint64(params.BeaconConfig().SlotsPerEpoch * 2))
	require.NoError(t, err)
	require.NoError(t, st0.SetCurrentJustifiedCheckpoint(&ethpb.Checkpoint{Epoch: 2, Root: root}))
	require.NoError(t, st0.SetJustificationBits([]byte{0x01}))

	total := 8 * params.BeaconConfig().MaxEffectiveBalance
	pBal := &precompute.Balance{
		ActiveCurrentEpoch:         total,
		CurrentEpochTargetAttested: total,
	}
	st, err := precompute.ProcessJustificationAndFinalizationPreCompute(st0, pBal)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(3), st.CurrentJustifiedCheckpoint().Epoch)
	assert.Equal(t, types.Epoch(2), st.FinalizedCheckpoint().Epoch)
	assert.Equal(t, types.Epoch(2), st.PreviousJustifiedCheckpoint().Epoch)
}
