package altair_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestProcessParticipationFlagUpdates_Rotates(t *testing.T) {
	cfg := params.BeaconConfig()
	st := altairTestState(t, 4, cfg.SlotsPerEpoch*2, fullFlags(t))

	post, err := altair.ProcessParticipationFlagUpdates(st)
	require.NoError(t, err)

	prev, err := post.PreviousEpochParticipation()
	require.NoError(t, err)
	curr, err := post.CurrentEpochParticipation()
	require.NoError(t, err)

	require.Equal(t, 4, len(curr))
	for i := range curr {
		// Current participation is zeroed after rotation.
		assert.Equal(t, byte(0), curr[i])
		// The old current epoch flags moved to the previous epoch.
		assert.Equal(t, fullFlags(t), prev[i])
	}
}

func TestHasValidatorFlag(t *testing.T) {
	cfg := params.BeaconConfig()
	b, err := altair.AddValidatorFlag(0, cfg.TimelyTargetFlagIndex)
	require.NoError(t, err)
	has, err := altair.HasValidatorFlag(b, cfg.TimelyTargetFlagIndex)
	require.NoError(t, err)
	assert.Equal(t, true, has)
	has, err = altair.HasValidatorFlag(b, cfg.TimelyHeadFlagIndex)
	require.NoError(t, err)
	assert.Equal(t, false, has)

	_, err = altair.HasValidatorFlag(b, 8)
	assert.ErrorContains(t, "flag position exceeds length", err)
	_, err = altair.AddValidatorFlag(b, 8)
	assert.ErrorContains(t, "flag position exceeds length", err)
}

func TestBaseRewardPerIncrement(t *testing.T) {
	cfg := params.BeaconConfig()
	// With 32 ETH total stake: 1e9 * 64 / isqrt(32e9) = 1e9*64/178885.
	want := cfg.EffectiveBalanceIncrement * cfg.BaseRewardFactor / 178885
	assert.Equal(t, want, altair.BaseRewardPerIncrement(32*1e9))
}
