package state_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
)

func TestInitializeFromPhase0_NilState(t *testing.T) {
	_, err := state.InitializeFromPhase0(nil)
	require.ErrorIs(t, err, state.ErrNilInnerState)
}

func TestHashTreeRoot_MatchesGeneratedCodec(t *testing.T) {
	vals, bals := util.DeterministicValidators(16)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	incremental, err := st.HashTreeRoot(context.Background())
	require.NoError(t, err)

	inner, ok := st.InnerStateUnsafe().(*ethpb.BeaconState)
	require.Equal(t, true, ok)
	direct, err := inner.HashTreeRoot()
	require.NoError(t, err)
	assert.DeepEqual(t, direct, incremental)
}

func TestHashTreeRoot_DirtyFieldRecompute(t *testing.T) {
	vals, bals := util.DeterministicValidators(16)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	_, err = st.HashTreeRoot(context.Background())
	require.NoError(t, err)

	// Mutate a single balance through the per-index path and ensure the
	// incremental recompute matches a from-scratch hash of the new content.
	require.NoError(t, st.UpdateBalancesAtIndex(3, 31*1e9))
	incremental, err := st.HashTreeRoot(context.Background())
	require.NoError(t, err)

	inner, ok := st.InnerStateUnsafe().(*ethpb.BeaconState)
	require.Equal(t, true, ok)
	direct, err := inner.HashTreeRoot()
	require.NoError(t, err)
	assert.DeepEqual(t, direct, incremental)
}

func TestHashTreeRoot_EqualAfterClone(t *testing.T) {
	vals, bals := util.DeterministicValidators(8)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	cloned := st.Copy()
	r1, err := st.HashTreeRoot(context.Background())
	require.NoError(t, err)
	r2, err := cloned.HashTreeRoot(context.Background())
	require.NoError(t, err)
	assert.DeepEqual(t, r1, r2)
}

func TestCopy_StructuralSharingIsolation(t *testing.T) {
	vals, bals := util.DeterministicValidators(8)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	snapshot := st.Copy()
	snapRoot, err := snapshot.HashTreeRoot(context.Background())
	require.NoError(t, err)

	// Mutating the original must not leak into the copy.
	require.NoError(t, st.UpdateBalancesAtIndex(0, 1))
	require.NoError(t, st.SetSlot(55))

	b, err := snapshot.BalanceAtIndex(0)
	require.NoError(t, err)
	assert.NotEqual(t, uint64(1), b)
	assert.NotEqual(t, snapshot.Slot(), st.Slot())

	// The snapshot root stays stable.
	snapRootAfter, err := snapshot.HashTreeRoot(context.Background())
	require.NoError(t, err)
	assert.DeepEqual(t, snapRoot, snapRootAfter)

	// And differs from the mutated state's root.
	newRoot, err := st.HashTreeRoot(context.Background())
	require.NoError(t, err)
	assert.DeepNotEqual(t, snapRoot, newRoot)
}

func TestSSZ_RoundTrip_Phase0(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = 5
		return nil
	})
	require.NoError(t, err)

	inner, ok := st.InnerStateUnsafe().(*ethpb.BeaconState)
	require.Equal(t, true, ok)
	enc, err := inner.MarshalSSZ()
	require.NoError(t, err)

	decoded := &ethpb.BeaconState{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	assert.DeepEqual(t, inner, decoded)

	// Re-encoding must be byte identical.
	enc2, err := decoded.MarshalSSZ()
	require.NoError(t, err)
	assert.DeepEqual(t, enc, enc2)
}

func TestSSZ_RoundTrip_Altair(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconStateAltair(func(s *ethpb.BeaconStateAltair) error {
		s.Validators = vals
		s.Balances = bals
		s.PreviousEpochParticipation = make([]byte, len(vals))
		s.CurrentEpochParticipation = make([]byte, len(vals))
		s.InactivityScores = make([]uint64, len(vals))
		s.Slot = 5
		return nil
	})
	require.NoError(t, err)

	inner, ok := st.InnerStateUnsafe().(*ethpb.BeaconStateAltair)
	require.Equal(t, true, ok)
	enc, err := inner.MarshalSSZ()
	require.NoError(t, err)

	decoded := &ethpb.BeaconStateAltair{}
	require.NoError(t, decoded.UnmarshalSSZ(enc))
	assert.DeepEqual(t, inner, decoded)

	// Incremental hashing of the store matches the codec root of the decoded state.
	incremental, err := st.HashTreeRoot(context.Background())
	require.NoError(t, err)
	direct, err := decoded.HashTreeRoot()
	require.NoError(t, err)
	assert.DeepEqual(t, direct, incremental)
}

func TestValidatorIndexByPubkey(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	var key [48]byte
	copy(key[:], vals[2].PublicKey)
	idx, ok := st.ValidatorIndexByPubkey(key)
	require.Equal(t, true, ok)
	require.Equal(t, uint64(2), uint64(idx))

	_, ok = st.ValidatorIndexByPubkey([48]byte{0xde, 0xad})
	require.Equal(t, false, ok)
}

func TestApplyToEveryValidator(t *testing.T) {
	vals, bals := util.DeterministicValidators(4)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	err = st.ApplyToEveryValidator(func(idx int, val *ethpb.Validator) (bool, *ethpb.Validator, error) {
		if idx != 1 {
			return false, val, nil
		}
		newVal := ethpb.CopyValidator(val)
		newVal.EffectiveBalance = 31 * 1e9
		return true, newVal, nil
	})
	require.NoError(t, err)

	v, err := st.ValidatorAtIndex(1)
	require.NoError(t, err)
	require.Equal(t, uint64(31*1e9), v.EffectiveBalance)
	v0, err := st.ValidatorAtIndex(0)
	require.NoError(t, err)
	require.Equal(t, uint64(32*1e9), v0.EffectiveBalance)
}
