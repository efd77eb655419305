package altair_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func altairTestState(t *testing.T, count uint64, slot types.Slot, participation byte) *state.BeaconState {
	vals, bals := util.DeterministicValidators(count)
	prevPart := make([]byte, count)
	currPart := make([]byte, count)
	for i := range prevPart {
		prevPart[i] = participation
		currPart[i] = participation
	}
	st, err := util.NewBeaconStateAltair(func(s *ethpb.BeaconStateAltair) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = slot
		s.PreviousEpochParticipation = prevPart
		s.CurrentEpochParticipation = currPart
		s.InactivityScores = make([]uint64, count)
		return nil
	})
	require.NoError(t, err)
	return st
}

// fullFlags returns a participation byte with source, target and head set.
func fullFlags(t *testing.T) byte {
	cfg := params.BeaconConfig()
	b, err := altair.AddValidatorFlag(0, cfg.TimelySourceFlagIndex)
	require.NoError(t, err)
	b, err = altair.AddValidatorFlag(b, cfg.TimelyTargetFlagIndex)
	require.NoError(t, err)
	b, err = altair.AddValidatorFlag(b, cfg.TimelyHeadFlagIndex)
	require.NoError(t, err)
	return b
}

func TestInitializePrecomputeValidators(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 4, cfg.SlotsPerEpoch*2, 0)
	vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, 4, len(vals))
	assert.Equal(t, 4*cfg.MaxEffectiveBalance, bal.ActiveCurrentEpoch)
	assert.Equal(t, true, vals[0].IsActiveCurrentEpoch)
	assert.Equal(t, true, vals[0].IsActivePrevEpoch)
}

func TestProcessEpochParticipation_SetsAttesterFlags(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 4, cfg.SlotsPerEpoch*2, fullFlags(t))
	vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
	require.NoError(t, err)
	vals, bal, err = altair.ProcessEpochParticipation(context.Background(), st, bal, vals)
	require.NoError(t, err)

	for _, v := range vals {
		assert.Equal(t, true, v.IsPrevEpochSourceAttester)
		assert.Equal(t, true, v.IsPrevEpochTargetAttester)
		assert.Equal(t, true, v.IsPrevEpochHeadAttester)
		assert.Equal(t, true, v.IsCurrentEpochTargetAttester)
	}
	assert.Equal(t, 4*cfg.MaxEffectiveBalance, bal.PrevEpochTargetAttested)
	assert.Equal(t, 4*cfg.MaxEffectiveBalance, bal.PrevEpochHeadAttested)
	assert.Equal(t, 4*cfg.MaxEffectiveBalance, bal.CurrentEpochTargetAttested)
}

func TestProcessInactivityScores_FullInactivityLeak(t *testing.T) {
	cfg := params.BeaconConfig()
	// Finality stalled: finalized epoch 0, current epoch 8, so the chain has
	// been in leak for multiple epochs. Nobody attests.
	st := altairTestState(t, 4, cfg.SlotsPerEpoch*8, 0)

	for i := 0; i < 5; i++ {
		vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
		require.NoError(t, err)
		vals, _, err = altair.ProcessEpochParticipation(context.Background(), st, bal, vals)
		require.NoError(t, err)
		st, _, err = altair.ProcessInactivityScores(context.Background(), st, vals)
		require.NoError(t, err)
	}

	scores, err := st.InactivityScores()
	require.NoError(t, err)
	for i, score := range scores {
		assert.Equal(t, 5*cfg.InactivityScoreBias, score, "validator %d", i)
	}
}

func TestProcessInactivityScores_RecoversWhenFinalizing(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 4, cfg.SlotsPerEpoch*8, fullFlags(t))
	// Recent finality: no leak.
	require.NoError(t, st.SetFinalizedCheckpoint(&ethpb.Checkpoint{Epoch: 6, Root: make([]byte, 32)}))
	require.NoError(t, st.SetInactivityScores([]uint64{50, 50, 50, 50}))

	vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
	require.NoError(t, err)
	vals, _, err = altair.ProcessEpochParticipation(context.Background(), st, bal, vals)
	require.NoError(t, err)
	st, _, err = altair.ProcessInactivityScores(context.Background(), st, vals)
	require.NoError(t, err)

	scores, err := st.InactivityScores()
	require.NoError(t, err)
	// -1 for timely target, -16 recovery = 33.
	for _, score := range scores {
		assert.Equal(t, uint64(50-1-16), score)
	}
}

func TestProcessRewardsAndPenalties_AltairFullParticipation(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 8, cfg.SlotsPerEpoch*3, fullFlags(t))
	require.NoError(t, st.SetFinalizedCheckpoint(&ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)}))

	vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
	require.NoError(t, err)
	vals, bal, err = altair.ProcessEpochParticipation(context.Background(), st, bal, vals)
	require.NoError(t, err)
	post, err := altair.ProcessRewardsAndPenaltiesPrecompute(st, bal, vals)
	require.NoError(t, err)

	for _, b := range post.Balances() {
		assert.Equal(t, true, b > cfg.MaxEffectiveBalance)
	}
}

func TestProcessRewardsAndPenalties_AltairNoParticipationPenalized(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 8, cfg.SlotsPerEpoch*3, 0)
	require.NoError(t, st.SetFinalizedCheckpoint(&ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)}))

	vals, bal, err := altair.InitializePrecomputeValidators(context.Background(), st)
	require.NoError(t, err)
	vals, bal, err = altair.ProcessEpochParticipation(context.Background(), st, bal, vals)
	require.NoError(t, err)
	post, err := altair.ProcessRewardsAndPenaltiesPrecompute(st, bal, vals)
	require.NoError(t, err)

	for _, b := range post.Balances() {
		assert.Equal(t, true, b < cfg.MaxEffectiveBalance)
	}
}
