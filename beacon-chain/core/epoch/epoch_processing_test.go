package epoch_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/epoch"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestProcessRegistryUpdates_EjectsBelowEjectionBalance(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(8)
	// A single validator dropped to the ejection balance.
	vals[3].EffectiveBalance = cfg.EjectionBalance
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 5
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessRegistryUpdates(context.Background(), st)
	require.NoError(t, err)

	currentEpoch := types.Epoch(5)
	wantExit := helpers.ActivationExitEpoch(currentEpoch)
	ejected, err := post.ValidatorAtIndex(3)
	require.NoError(t, err)
	assert.Equal(t, wantExit, ejected.ExitEpoch)
	assert.Equal(t, wantExit+cfg.MinValidatorWithdrawabilityDelay, ejected.WithdrawableEpoch)

	// No other validator is modified.
	for i := types.ValidatorIndex(0); i < 8; i++ {
		if i == 3 {
			continue
		}
		v, err := post.ValidatorAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, cfg.FarFutureEpoch, v.ExitEpoch, "validator %d", i)
	}
}

func TestProcessRegistryUpdates_EligibleEnterActivationQueue(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(8)
	// Fresh deposit: not yet eligible, max effective balance.
	vals[6].ActivationEligibilityEpoch = cfg.FarFutureEpoch
	vals[6].ActivationEpoch = cfg.FarFutureEpoch
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 5
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessRegistryUpdates(context.Background(), st)
	require.NoError(t, err)

	v, err := post.ValidatorAtIndex(6)
	require.NoError(t, err)
	assert.Equal(t, types.Epoch(6), v.ActivationEligibilityEpoch)
	// Not yet activated, only queued.
	assert.Equal(t, cfg.FarFutureEpoch, v.ActivationEpoch)
}

func TestProcessRegistryUpdates_ActivationsBoundedByChurn(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	// 8 active validators plus 10 queued for activation.
	vals, bals := util.DeterministicValidators(18)
	for i := 8; i < 18; i++ {
		vals[i].ActivationEpoch = cfg.FarFutureEpoch
		vals[i].ActivationEligibilityEpoch = 1
	}
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 5
		s.FinalizedCheckpoint = &ethpb.Checkpoint{Epoch: 2, Root: make([]byte, 32)}
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessRegistryUpdates(context.Background(), st)
	require.NoError(t, err)

	// churn limit is MinPerEpochChurnLimit (4) for a small active set; the
	// first four queued validators by (eligibility, index) activate.
	wantActivation := helpers.ActivationExitEpoch(5)
	for i := types.ValidatorIndex(8); i < 12; i++ {
		v, err := post.ValidatorAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, wantActivation, v.ActivationEpoch, "validator %d should be activated", i)
	}
	for i := types.ValidatorIndex(12); i < 18; i++ {
		v, err := post.ValidatorAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, cfg.FarFutureEpoch, v.ActivationEpoch, "validator %d should remain queued", i)
	}
}

func TestProcessRegistryUpdates_FinalityGatesActivation(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(10)
	// Queued validators whose eligibility postdates finality never activate.
	for i := 8; i < 10; i++ {
		vals[i].ActivationEpoch = cfg.FarFutureEpoch
		vals[i].ActivationEligibilityEpoch = 4
	}
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 5
		s.FinalizedCheckpoint = &ethpb.Checkpoint{Epoch: 2, Root: make([]byte, 32)}
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessRegistryUpdates(context.Background(), st)
	require.NoError(t, err)

	for i := types.ValidatorIndex(8); i < 10; i++ {
		v, err := post.ValidatorAtIndex(i)
		require.NoError(t, err)
		assert.Equal(t, cfg.FarFutureEpoch, v.ActivationEpoch)
	}
}

func TestProcessEffectiveBalanceUpdates_Hysteresis(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(3)
	// Validator 0 drifts slightly: within hysteresis, no update.
	bals[0] = 31950000000 // 31.95 ETH
	// Validator 1 drifts below the downward threshold: drops to 31 ETH.
	bals[1] = 31740000000 // 31.74 ETH
	// Validator 2 at zero balance and zero effective balance stays put.
	vals[2].EffectiveBalance = 0
	bals[2] = 0

	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessEffectiveBalanceUpdates(st)
	require.NoError(t, err)

	v0, err := post.ValidatorAtIndex(0)
	require.NoError(t, err)
	assert.Equal(t, cfg.MaxEffectiveBalance, v0.EffectiveBalance)

	v1, err := post.ValidatorAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(31*1e9), v1.EffectiveBalance)

	v2, err := post.ValidatorAtIndex(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v2.EffectiveBalance)
}

func TestProcessSlashingsReset(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch*2 - 1
		for i := range s.Slashings {
			s.Slashings[i] = 1e9
		}
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessSlashingsReset(st)
	require.NoError(t, err)
	// next epoch is 2, so index 2 of the vector is zeroed.
	slashings := post.Slashings()
	assert.Equal(t, uint64(0), slashings[2])
	assert.Equal(t, uint64(1e9), slashings[1])
	assert.Equal(t, uint64(1e9), slashings[3])
}

func TestProcessRandaoMixesReset(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch - 1
		s.RandaoMixes[0] = append([]byte{0xaa}, make([]byte, 31)...)
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessRandaoMixesReset(st)
	require.NoError(t, err)
	// next epoch (1) copies the mix of the current epoch (0).
	mix, err := post.RandaoMixAtIndex(1)
	require.NoError(t, err)
	assert.Equal(t, byte(0xaa), mix[0])
}

func TestProcessEth1DataReset(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		// Epoch 63 -> next epoch 64, a multiple of EpochsPerEth1VotingPeriod.
		s.Slot = cfg.SlotsPerEpoch*64 - 1
		s.Eth1DataVotes = []*ethpb.Eth1Data{
			{DepositRoot: make([]byte, 32), BlockHash: make([]byte, 32)},
		}
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessEth1DataReset(st)
	require.NoError(t, err)
	assert.Equal(t, 0, len(post.Eth1DataVotes()))
}

func TestProcessParticipationRecordUpdates_RotatesAttestations(t *testing.T) {
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)
	atts := []*ethpb.PendingAttestation{
		{
			AggregationBits: []byte{0x01, 0x01},
			Data: &ethpb.AttestationData{
				BeaconBlockRoot: make([]byte, 32),
				Source:          &ethpb.Checkpoint{Root: make([]byte, 32)},
				Target:          &ethpb.Checkpoint{Root: make([]byte, 32)},
			},
			InclusionDelay: 1,
		},
	}
	require.NoError(t, st.SetCurrentEpochAttestations(atts))

	post, err := epoch.ProcessParticipationRecordUpdates(st)
	require.NoError(t, err)

	prev, err := post.PreviousEpochAttestations()
	require.NoError(t, err)
	require.Equal(t, 1, len(prev))
	curr, err := post.CurrentEpochAttestations()
	require.NoError(t, err)
	require.Equal(t, 0, len(curr))
}

func TestProcessHistoricalRootsUpdate_AppendsAtBoundary(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(2)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		// Epoch 255 -> next epoch 256 == SlotsPerHistoricalRoot/SlotsPerEpoch.
		s.Slot = cfg.SlotsPerHistoricalRoot - 1
		return nil
	})
	require.NoError(t, err)

	post, err := epoch.ProcessHistoricalRootsUpdate(st)
	require.NoError(t, err)
	require.Equal(t, 1, len(post.HistoricalRoots()))

	// One epoch earlier, nothing is appended.
	st2, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerHistoricalRoot - cfg.SlotsPerEpoch - 1
		return nil
	})
	require.NoError(t, err)
	post2, err := epoch.ProcessHistoricalRootsUpdate(st2)
	require.NoError(t, err)
	require.Equal(t, 0, len(post2.HistoricalRoots()))
}
