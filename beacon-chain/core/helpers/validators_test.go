package helpers

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestIsActiveValidator(t *testing.T) {
	tests := []struct {
		a types.Epoch
		b bool
	}{
		{a: 0, b: false},
		{a: 10, b: true},
		{a: 100, b: false},
		{a: 1000, b: false},
		{a: 64, b: true},
	}
	for _, test := range tests {
		validator := &ethpb.Validator{ActivationEpoch: 10, ExitEpoch: 100}
		assert.Equal(t, test.b, IsActiveValidator(validator, test.a), "IsActiveValidator(%d)", test.a)
	}
}

func TestActivationExitEpoch(t *testing.T) {
	// epoch + 1 + MAX_SEED_LOOKAHEAD
	require.Equal(t, types.Epoch(5+1+4), ActivationExitEpoch(5))
}

func TestValidatorChurnLimit(t *testing.T) {
	tests := []struct {
		validatorCount uint64
		wantedChurn    uint64
	}{
		{validatorCount: 1000, wantedChurn: 4},
		{validatorCount: 100000, wantedChurn: 4},
		{validatorCount: 1000000, wantedChurn: 15 /* validatorCount/churnLimitQuotient */},
		{validatorCount: 2000000, wantedChurn: 30 /* validatorCount/churnLimitQuotient */},
	}
	for _, test := range tests {
		churn, err := ValidatorChurnLimit(test.validatorCount)
		require.NoError(t, err)
		assert.Equal(t, test.wantedChurn, churn)
	}
}

func TestIsEligibleForActivationQueue(t *testing.T) {
	cfg := params.BeaconConfig()
	eligible := &ethpb.Validator{
		ActivationEligibilityEpoch: cfg.FarFutureEpoch,
		EffectiveBalance:           cfg.MaxEffectiveBalance,
	}
	assert.Equal(t, true, IsEligibleForActivationQueue(eligible))

	tooLow := &ethpb.Validator{
		ActivationEligibilityEpoch: cfg.FarFutureEpoch,
		EffectiveBalance:           cfg.MaxEffectiveBalance - 1,
	}
	assert.Equal(t, false, IsEligibleForActivationQueue(tooLow))

	alreadyMarked := &ethpb.Validator{
		ActivationEligibilityEpoch: 2,
		EffectiveBalance:           cfg.MaxEffectiveBalance,
	}
	assert.Equal(t, false, IsEligibleForActivationQueue(alreadyMarked))
}

func TestActiveValidatorIndices_AllActive(t *testing.T) {
	ClearCache()
	vals, bals := util.DeterministicValidators(10)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	indices, err := ActiveValidatorIndices(context.Background(), st, 0)
	require.NoError(t, err)
	require.Equal(t, 10, len(indices))
}

func TestActiveValidatorCount_MixedActivity(t *testing.T) {
	ClearCache()
	vals, bals := util.DeterministicValidators(10)
	// Exit two validators before the queried epoch.
	vals[0].ExitEpoch = 1
	vals[9].ExitEpoch = 2
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = params.BeaconConfig().SlotsPerEpoch * 3
		return nil
	})
	require.NoError(t, err)

	count, err := ActiveValidatorCount(context.Background(), st, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(8), count)
}

func TestBeaconProposerIndex_Deterministic(t *testing.T) {
	ClearCache()
	vals, bals := util.DeterministicValidators(64)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = 5
		return nil
	})
	require.NoError(t, err)

	idx1, err := BeaconProposerIndex(context.Background(), st)
	require.NoError(t, err)
	ClearCache()
	idx2, err := BeaconProposerIndex(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, idx1, idx2)
	require.Equal(t, true, uint64(idx1) < 64)
}
