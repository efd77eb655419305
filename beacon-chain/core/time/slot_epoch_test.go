package time_test

import (
	"testing"

	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestEpochHelpers(t *testing.T) {
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = params.BeaconConfig().SlotsPerEpoch * 2
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, types.Epoch(2), coretime.CurrentEpoch(st))
	assert.Equal(t, types.Epoch(1), coretime.PrevEpoch(st))
	assert.Equal(t, types.Epoch(3), coretime.NextEpoch(st))
}

func TestPrevEpoch_AtGenesis(t *testing.T) {
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(0), coretime.PrevEpoch(st))
}

func TestCanProcessEpoch(t *testing.T) {
	vals, bals := util.DeterministicValidators(2)
	for _, tc := range []struct {
		slot types.Slot
		want bool
	}{
		{slot: 0, want: false},
		{slot: 31, want: true},
		{slot: 32, want: false},
		{slot: 63, want: true},
	} {
		st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
			s.Validators = vals
			s.Balances = bals
			s.Slot = tc.slot
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, coretime.CanProcessEpoch(st), "slot %d", tc.slot)
	}
}

func TestCanUpgradeToAltair(t *testing.T) {
	cfg := params.BeaconConfig()
	forkSlot := types.Slot(uint64(cfg.AltairForkEpoch) * uint64(cfg.SlotsPerEpoch))
	assert.Equal(t, true, coretime.CanUpgradeToAltair(forkSlot))
	assert.Equal(t, false, coretime.CanUpgradeToAltair(forkSlot+1))
	assert.Equal(t, false, coretime.CanUpgradeToAltair(0))
}
