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

func TestSlotCommitteeCount(t *testing.T) {
	// Under one committee worth of validators, a single committee remains.
	assert.Equal(t, uint64(1), SlotCommitteeCount(100))
	// 32 slots * 128 target committee size * 4 -> 4 committees a slot.
	assert.Equal(t, uint64(4), SlotCommitteeCount(32*128*4))
	// Committees per slot are capped.
	assert.Equal(t, params.BeaconConfig().MaxCommitteesPerSlot, SlotCommitteeCount(1<<40))
}

func TestBeaconCommitteeFromState_PartitionsActiveSet(t *testing.T) {
	ClearCache()
	validatorCount := uint64(256)
	vals, bals := util.DeterministicValidators(validatorCount)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	committeesPerSlot := SlotCommitteeCount(validatorCount)
	seen := make(map[types.ValidatorIndex]int)
	for slot := types.Slot(0); slot < params.BeaconConfig().SlotsPerEpoch; slot++ {
		for idx := types.CommitteeIndex(0); uint64(idx) < committeesPerSlot; idx++ {
			committee, err := BeaconCommitteeFromState(context.Background(), st, slot, idx)
			require.NoError(t, err)
			for _, vIdx := range committee {
				seen[vIdx]++
			}
		}
	}
	// Every active validator sits in exactly one committee per epoch.
	require.Equal(t, int(validatorCount), len(seen))
	for _, count := range seen {
		require.Equal(t, 1, count)
	}
}

func TestBeaconCommitteeFromState_Deterministic(t *testing.T) {
	ClearCache()
	vals, bals := util.DeterministicValidators(128)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		return nil
	})
	require.NoError(t, err)

	c1, err := BeaconCommitteeFromState(context.Background(), st, 2, 0)
	require.NoError(t, err)
	// A second read is served out of the committee cache and must agree.
	c2, err := BeaconCommitteeFromState(context.Background(), st, 2, 0)
	require.NoError(t, err)
	assert.DeepEqual(t, c1, c2)
}
