package validators_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/validators"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestInitiateValidatorExit_SetsExitAndWithdrawableEpochs(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(8)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 4
		return nil
	})
	require.NoError(t, err)

	post, err := validators.InitiateValidatorExit(context.Background(), st, 2)
	require.NoError(t, err)

	v, err := post.ValidatorAtIndex(2)
	require.NoError(t, err)
	wantExit := helpers.ActivationExitEpoch(4)
	assert.Equal(t, wantExit, v.ExitEpoch)
	assert.Equal(t, wantExit+cfg.MinValidatorWithdrawabilityDelay, v.WithdrawableEpoch)
}

func TestInitiateValidatorExit_AlreadyExitedIsNoop(t *testing.T) {
	helpers.ClearCache()
	vals, bals := util.DeterministicValidators(4)
	vals[1].ExitEpoch = 20
	vals[1].WithdrawableEpoch = 30
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	post, err := validators.InitiateValidatorExit(context.Background(), st, 1)
	require.NoError(t, err)
	v, err := post.ValidatorAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(20), v.ExitEpoch)
	assert.Equal(t, types.Epoch(30), v.WithdrawableEpoch)
}

func TestInitiateValidatorExit_ChurnPushesExitQueue(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(16)
	// Four validators already exit at the queue epoch, which saturates the
	// minimum churn.
	exitEpoch := helpers.ActivationExitEpoch(0)
	for i := 0; i < int(cfg.MinPerEpochChurnLimit); i++ {
		vals[i].ExitEpoch = exitEpoch
	}
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	post, err := validators.InitiateValidatorExit(context.Background(), st, 10)
	require.NoError(t, err)
	v, err := post.ValidatorAtIndex(10)
	require.NoError(t, err)
	assert.Equal(t, exitEpoch+1, v.ExitEpoch)
}

func TestSlashedValidatorIndices(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(4)
	vals[1].Slashed = true
	vals[1].WithdrawableEpoch = cfg.EpochsPerSlashingsVector
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	slashed := validators.SlashedValidatorIndices(0, st.ValidatorsReadOnly())
	require.Equal(t, 1, len(slashed))
	assert.Equal(t, types.ValidatorIndex(1), slashed[0])
}
