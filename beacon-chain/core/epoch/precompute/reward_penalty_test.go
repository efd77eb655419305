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

func TestProcessRewardsAndPenalties_GenesisEpochNoop(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	vp, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	post, err := precompute.ProcessRewardsAndPenaltiesPrecompute(st, bp, vp, precompute.AttestationsDelta, precompute.ProposersDelta)
	require.NoError(t, err)
	assert.DeepEqual(t, bals, post.Balances())
}

func TestAttestationsDelta_FullParticipationRewards(t *testing.T) {
	cfg := params.BeaconConfig()
	count := uint64(8)
	vals, bals := util.DeterministicValidators(count)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 3
		return nil
	})
	require.NoError(t, err)

	vp, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	for _, v := range vp {
		v.IsPrevEpochAttester = true
		v.IsPrevEpochTargetAttester = true
		v.IsPrevEpochHeadAttester = true
		v.InclusionDistance = 1
		v.ProposerIndex = 0
	}
	bp.PrevEpochAttested = bp.ActiveCurrentEpoch
	bp.PrevEpochTargetAttested = bp.ActiveCurrentEpoch
	bp.PrevEpochHeadAttested = bp.ActiveCurrentEpoch

	rewards, penalties, err := precompute.AttestationsDelta(st, bp, vp)
	require.NoError(t, err)
	for i := uint64(0); i < count; i++ {
		assert.Equal(t, uint64(0), penalties[i], "validator %d", i)
		assert.Equal(t, true, rewards[i] > 0, "validator %d", i)
	}
	// Same status, same effective balance, same delta for everyone.
	for i := uint64(1); i < count; i++ {
		assert.Equal(t, rewards[0], rewards[i])
	}
}

func TestAttestationsDelta_MissedAllPenalized(t *testing.T) {
	cfg := params.BeaconConfig()
	vals, bals := util.DeterministicValidators(8)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 3
		return nil
	})
	require.NoError(t, err)

	vp, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)

	rewards, penalties, err := precompute.AttestationsDelta(st, bp, vp)
	require.NoError(t, err)
	for i := range vp {
		assert.Equal(t, uint64(0), rewards[i])
		assert.Equal(t, true, penalties[i] > 0)
	}
}

func TestProcessRewardsAndPenalties_UpdatesFlatBalances(t *testing.T) {
	cfg := params.BeaconConfig()
	count := uint64(8)
	vals, bals := util.DeterministicValidators(count)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 3
		return nil
	})
	require.NoError(t, err)

	vp, bp, err := precompute.New(context.Background(), st)
	require.NoError(t, err)
	for _, v := range vp {
		v.IsPrevEpochAttester = true
		v.IsPrevEpochTargetAttester = true
		v.IsPrevEpochHeadAttester = true
		v.InclusionDistance = 1
	}
	bp.PrevEpochAttested = bp.ActiveCurrentEpoch
	bp.PrevEpochTargetAttested = bp.ActiveCurrentEpoch
	bp.PrevEpochHeadAttested = bp.ActiveCurrentEpoch

	post, err := precompute.ProcessRewardsAndPenaltiesPrecompute(st, bp, vp, precompute.AttestationsDelta, precompute.ProposersDelta)
	require.NoError(t, err)
	newBals := post.Balances()
	for i := uint64(0); i < count; i++ {
		assert.Equal(t, true, newBals[i] > cfg.MaxEffectiveBalance, "validator %d did not gain", i)
		assert.Equal(t, newBals[i], vp[i].AfterEpochTransitionBalance)
		assert.Equal(t, cfg.MaxEffectiveBalance, vp[i].BeforeEpochTransitionBalance)
	}
}

func TestProcessRewardsAndPenalties_LengthMismatch(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = params.BeaconConfig().SlotsPerEpoch * 2
		return nil
	})
	require.NoError(t, err)

	_, err = precompute.ProcessRewardsAndPenaltiesPrecompute(st, &precompute.Balance{}, []*precompute.Validator{}, precompute.AttestationsDelta, precompute.ProposersDelta)
	require.ErrorContains(t, "precomputed registries not the same length", err)
}
