package altair_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/crypto/bls"
	"github.com/fredriksvantes/lodestar/runtime/version"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
)

func TestUpgradeToAltair(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	count := uint64(64)
	vals, bals := util.DeterministicValidators(count)
	for i := range vals {
		vals[i].PublicKey = bls.RandKey().PublicKey().Marshal()
	}
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch * 2
		return nil
	})
	require.NoError(t, err)

	post, err := altair.UpgradeToAltair(context.Background(), st)
	require.NoError(t, err)

	require.Equal(t, version.Altair, post.Version())
	assert.DeepEqual(t, cfg.AltairForkVersion, post.Fork().CurrentVersion)
	assert.Equal(t, st.Slot(), post.Slot())

	// Participation and inactivity tracking is freshly zeroed.
	prev, err := post.PreviousEpochParticipation()
	require.NoError(t, err)
	require.Equal(t, int(count), len(prev))
	scores, err := post.InactivityScores()
	require.NoError(t, err)
	require.Equal(t, int(count), len(scores))
	for i := range scores {
		assert.Equal(t, uint64(0), scores[i])
	}

	// A duplicate committee is installed for the current and next period.
	curr, err := post.CurrentSyncCommittee()
	require.NoError(t, err)
	next, err := post.NextSyncCommittee()
	require.NoError(t, err)
	assert.DeepEqual(t, curr, next)
	require.Equal(t, int(cfg.SyncCommitteeSize), len(curr.Pubkeys))
}
