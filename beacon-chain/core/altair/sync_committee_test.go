package altair_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/crypto/bls"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
)

func blsTestState(t *testing.T, count uint64) *state.BeaconState {
	vals, bals := util.DeterministicValidators(count)
	for i := range vals {
		vals[i].PublicKey = bls.RandKey().PublicKey().Marshal()
	}
	st, err := util.NewBeaconStateAltair(func(s *ethpb.BeaconStateAltair) error {
		s.Validators = vals
		s.Balances = bals
		s.PreviousEpochParticipation = make([]byte, count)
		s.CurrentEpochParticipation = make([]byte, count)
		s.InactivityScores = make([]uint64, count)
		return nil
	})
	require.NoError(t, err)
	return st
}

func TestNextSyncCommitteeIndices(t *testing.T) {
	helpers.ClearCache()
	st := blsTestState(t, 64)
	indices, err := altair.NextSyncCommitteeIndices(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, params.BeaconConfig().SyncCommitteeSize, uint64(len(indices)))
	for _, idx := range indices {
		require.Equal(t, true, uint64(idx) < 64)
	}
}

func TestNextSyncCommittee_AggregatesKeys(t *testing.T) {
	helpers.ClearCache()
	st := blsTestState(t, 64)
	committee, err := altair.NextSyncCommittee(context.Background(), st)
	require.NoError(t, err)
	require.Equal(t, int(params.BeaconConfig().SyncCommitteeSize), len(committee.Pubkeys))
	require.Equal(t, 48, len(committee.AggregatePubkey))

	// The same state yields the same committee.
	helpers.ClearCache()
	committee2, err := altair.NextSyncCommittee(context.Background(), st)
	require.NoError(t, err)
	assert.DeepEqual(t, committee, committee2)
}

func TestProcessSyncCommitteeUpdates_RotatesAtBoundary(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	st := blsTestState(t, 64)
	// End of a sync committee period.
	require.NoError(t, st.SetSlot(cfg.SlotsPerEpoch*types.Slot(cfg.EpochsPerSyncCommitteePeriod)-1))

	next, err := st.NextSyncCommittee()
	require.NoError(t, err)

	post, err := altair.ProcessSyncCommitteeUpdates(context.Background(), st)
	require.NoError(t, err)

	curr, err := post.CurrentSyncCommittee()
	require.NoError(t, err)
	assert.DeepEqual(t, next, curr)

	newNext, err := post.NextSyncCommittee()
	require.NoError(t, err)
	require.Equal(t, int(cfg.SyncCommitteeSize), len(newNext.Pubkeys))
}
