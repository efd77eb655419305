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
	types "github.com/prysmaticlabs/eth2-types"
)

func TestProcessSlashings_SlashedValidatorPenalized(t *testing.T) {
	cfg := params.BeaconConfig()
	count := uint64(64)
	vals, bals := util.DeterministicValidators(count)
	// Validator 2 was slashed and is due its proportional penalty this epoch.
	vals[2].Slashed = true
	vals[2].WithdrawableEpoch = cfg.EpochsPerSlashingsVector / 2

	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slashings[0] = cfg.MaxEffectiveBalance
		return nil
	})
	require.NoError(t, err)

	_, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	require.NoError(t, precompute.ProcessSlashingsPrecompute(st, bp))

	// adjusted = min(total_slashings * multiplier, total_active)
	//          = min(32e9 * 1, 64*32e9) = 32e9
	// penalty  = eff/increment * adjusted / total_active * increment
	//          = 32 * 32e9 / 2048e9 * 1e9 = 0 (floors to zero at this stake)
	increment := cfg.EffectiveBalanceIncrement
	totalActive := count * cfg.MaxEffectiveBalance
	adjusted := cfg.MaxEffectiveBalance * cfg.ProportionalSlashingMultiplier
	if adjusted > totalActive {
		adjusted = totalActive
	}
	wantPenalty := cfg.MaxEffectiveBalance / increment * adjusted / totalActive * increment

	got, err := st.BalanceAtIndex(2)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance-wantPenalty, got)

	// No other validator loses a single gwei.
	for i := uint64(0); i < count; i++ {
		if i == 2 {
			continue
		}
		b, err := st.BalanceAtIndex(types.ValidatorIndex(i))
		require.NoError(t, err)
		assert.Equal(t, cfg.MaxEffectiveBalance, b)
	}
}

func TestProcessSlashings_LargeSlashingsProduceNonZeroPenalty(t *testing.T) {
	cfg := params.BeaconConfig()
	count := uint64(4)
	vals, bals := util.DeterministicValidators(count)
	vals[0].Slashed = true
	vals[0].WithdrawableEpoch = cfg.EpochsPerSlashingsVector / 2

	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		// A full quarter of the stake got slashed within the window.
		s.Slashings[0] = cfg.MaxEffectiveBalance
		return nil
	})
	require.NoError(t, err)

	_, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	require.NoError(t, precompute.ProcessSlashingsPrecompute(st, bp))

	// adjusted = min(32e9 * 1, 4*32e9) = 32e9
	// penalty = 32 * 32e9 / 128e9 * 1e9 = 8e9
	got, err := st.BalanceAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance-8*1e9, got)
}

func TestProcessSlashings_NoEligibleSlashingIsNoop(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(4)
	// Slashed, but its withdrawable epoch is not at the half-vector mark.
	vals[0].Slashed = true
	vals[0].WithdrawableEpoch = cfg.EpochsPerSlashingsVector

	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slashings[0] = cfg.MaxEffectiveBalance
		return nil
	})
	require.NoError(t, err)

	_, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	require.NoError(t, precompute.ProcessSlashingsPrecompute(st, bp))

	got, err := st.BalanceAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance, got)
}
