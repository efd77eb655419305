package params_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestLoadChainConfigFile(t *testing.T) {
	cfg := params.BeaconConfig()
	defer params.OverrideBeaconConfig(cfg)

	content := `
CONFIG_NAME: 'testnet'
MIN_GENESIS_ACTIVE_VALIDATOR_COUNT: 100
MIN_GENESIS_TIME: 1578009600
GENESIS_DELAY: 300
SECONDS_PER_SLOT: 6
EJECTION_BALANCE: 16000000000
CHURN_LIMIT_QUOTIENT: 4096
INACTIVITY_SCORE_BIAS: 4
INACTIVITY_SCORE_RECOVERY_RATE: 16
DEPOSIT_NETWORK_ID: 5
DEPOSIT_CONTRACT_ADDRESS: '0x1234567890123456789012345678901234567890'
ALTAIR_FORK_EPOCH: 256
`
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte(content), os.ModePerm))

	params.LoadChainConfigFile(file)
	c := params.BeaconConfig()
	require.Equal(t, "testnet", c.ConfigName)
	require.Equal(t, uint64(100), c.MinGenesisActiveValidatorCount)
	require.Equal(t, uint64(300), c.GenesisDelay)
	require.Equal(t, uint64(6), c.SecondsPerSlot)
	require.Equal(t, uint64(4096), c.ChurnLimitQuotient)
	require.Equal(t, uint64(16), c.InactivityScoreRecoveryRate)
	require.Equal(t, uint64(5), c.DepositNetworkID)
	require.Equal(t, "0x1234567890123456789012345678901234567890", c.DepositContractAddress)
	require.Equal(t, uint64(256), uint64(c.AltairForkEpoch))
}
