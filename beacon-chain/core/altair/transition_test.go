package altair_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestProcessEpoch_FullParticipation(t *testing.T) {
	helpers.ClearCache()
	cfg := params.BeaconConfig()
	count := uint64(8)
	st := altairTestState(t, count, cfg.SlotsPerEpoch*3-1, fullFlags(t))
	require.NoError(t, st.SetFinalizedCheckpoint(&ethpb.Checkpoint{Epoch: 1, Root: make([]byte, 32)}))

	post, err := altair.ProcessEpoch(context.Background(), st)
	require.NoError(t, err)

	// Ideal participation earns rewards for everyone.
	for i, b := range post.Balances() {
		assert.Equal(t, true, b > cfg.MaxEffectiveBalance, "validator %d did not gain", i)
	}

	// The current epoch participation is zeroed after the transition.
	curr, err := post.CurrentEpochParticipation()
	require.NoError(t, err)
	sum := 0
	for _, b := range curr {
		sum += int(b)
	}
	assert.Equal(t, 0, sum)

	// The old current epoch flags were rotated into the previous epoch.
	prev, err := post.PreviousEpochParticipation()
	require.NoError(t, err)
	for i := range prev {
		assert.Equal(t, fullFlags(t), prev[i])
	}

	// Inactivity scores stay at zero with timely target votes.
	scores, err := post.InactivityScores()
	require.NoError(t, err)
	for _, s := range scores {
		assert.Equal(t, uint64(0), s)
	}

	// The slashings vector slot of the next epoch is reset.
	assert.Equal(t, uint64(0), post.Slashings()[3])
}

func TestProcessEpoch_NilState(t *testing.T) {
	_, err := altair.ProcessEpoch(context.Background(), nil)
	require.ErrorContains(t, "nil state", err)
}
