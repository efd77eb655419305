package precompute_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/epoch/precompute"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
)

func TestNew_ActiveBalances(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(4)
	// One validator exited before the current epoch, one never activated.
	vals[2].ExitEpoch = 0
	vals[3].ActivationEpoch = cfg.FarFutureEpoch
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 2
		return nil
	})
	require.NoError(t, err)

	vp, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, 4, len(vp))

	assert.Equal(t, true, vp[0].IsActiveCurrentEpoch)
	assert.Equal(t, true, vp[0].IsActivePrevEpoch)
	assert.Equal(t, false, vp[2].IsActiveCurrentEpoch)
	assert.Equal(t, false, vp[3].IsActiveCurrentEpoch)

	assert.Equal(t, 2*cfg.MaxEffectiveBalance, bp.ActiveCurrentEpoch)
	assert.Equal(t, 2*cfg.MaxEffectiveBalance, bp.ActivePrevEpoch)
}

func TestNew_BalancesLowerBound(t *testing.T) {
	cfg := params.BeaconConfig()
	// A registry without a single active validator still yields one increment
	// of stake to avoid divisions by zero downstream.
	vals, bals := util.DeterministicValidators(2)
	vals[0].ActivationEpoch = cfg.FarFutureEpoch
	vals[1].ActivationEpoch = cfg.FarFutureEpoch
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	_, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, cfg.EffectiveBalanceIncrement, bp.ActiveCurrentEpoch)
	assert.Equal(t, cfg.EffectiveBalanceIncrement, bp.ActivePrevEpoch)
}

func TestNew_SlashedAndWithdrawable(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(2)
	vals[1].Slashed = true
	vals[1].WithdrawableEpoch = 0
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	vp, _, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, true, vp[1].IsSlashed)
	assert.Equal(t, true, vp[1].IsWithdrawableCurrentEpoch)
	assert.Equal(t, false, vp[0].IsSlashed)
	assert.Equal(t, cfg.FarFutureSlot, vp[0].InclusionSlot)
}
