package params_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestOverrideBeaconConfig(t *testing.T) {
	cfg := params.BeaconConfig()
	defer params.OverrideBeaconConfig(cfg)

	c := params.BeaconConfig().Copy()
	c.SlotsPerEpoch = 5
	params.OverrideBeaconConfig(c)
	require.Equal(t, c.SlotsPerEpoch, params.BeaconConfig().SlotsPerEpoch)
}

func TestConfigCopy_NoSharedState(t *testing.T) {
	c := params.MainnetConfig()
	cp := c.Copy()
	cp.GenesisForkVersion[0] = 0xff
	assert.Equal(t, byte(0), c.GenesisForkVersion[0])
}

func TestMainnetConfig_Values(t *testing.T) {
	c := params.MainnetConfig()
	assert.Equal(t, uint64(32*1e9), c.MaxEffectiveBalance)
	assert.Equal(t, uint64(16*1e9), c.EjectionBalance)
	assert.Equal(t, uint64(1e9), c.EffectiveBalanceIncrement)
	assert.Equal(t, uint64(4), c.MinPerEpochChurnLimit)
	assert.Equal(t, 21, c.BeaconStateFieldCount)
	assert.Equal(t, 24, c.BeaconStateAltairFieldCount)
	// The three Altair flag weights plus the sync and proposer shares add up
	// to the denominator.
	total := c.TimelySourceWeight + c.TimelyTargetWeight + c.TimelyHeadWeight + c.SyncRewardWeight + c.ProposerWeight
	assert.Equal(t, c.WeightDenominator, total)
}

func TestMinimalConfig_Values(t *testing.T) {
	c := params.MinimalSpecConfig()
	assert.Equal(t, "minimal", c.ConfigName)
	require.Equal(t, uint64(8), uint64(c.SlotsPerEpoch))
	require.Equal(t, uint64(32), c.ChurnLimitQuotient)
	require.Equal(t, uint64(64), uint64(c.EpochsPerSlashingsVector))
}

func TestForkVersionAtEpoch(t *testing.T) {
	c := params.MainnetConfig()
	assert.DeepEqual(t, c.GenesisForkVersion, c.ForkVersionAtEpoch(0))
	assert.DeepEqual(t, c.AltairForkVersion, c.ForkVersionAtEpoch(c.AltairForkEpoch))
}
