package transition_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/transition"
	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/testing/assert"
)

func TestIsValidGenesisState(t *testing.T) {
	cfg := params.BeaconConfig()
	assert.Equal(t, true, transition.IsValidGenesisState(cfg.MinGenesisActiveValidatorCount, cfg.MinGenesisTime))
	assert.Equal(t, false, transition.IsValidGenesisState(cfg.MinGenesisActiveValidatorCount, cfg.MinGenesisTime-1))
	assert.Equal(t, false, transition.IsValidGenesisState(cfg.MinGenesisActiveValidatorCount-1, cfg.MinGenesisTime))
}
