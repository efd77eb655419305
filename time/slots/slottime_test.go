package slots_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/time/slots"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestToEpoch(t *testing.T) {
	assert.Equal(t, types.Epoch(0), slots.ToEpoch(0))
	assert.Equal(t, types.Epoch(0), slots.ToEpoch(31))
	assert.Equal(t, types.Epoch(1), slots.ToEpoch(32))
	assert.Equal(t, types.Epoch(10), slots.ToEpoch(320))
}

func TestEpochStartAndEnd(t *testing.T) {
	start, err := slots.EpochStart(2)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(64), start)

	end, err := slots.EpochEnd(2)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(95), end)

	_, err = slots.EpochStart(params.BeaconConfig().FarFutureEpoch)
	require.ErrorContains(t, "overflow", err)
}

func TestIsEpochBoundaries(t *testing.T) {
	assert.Equal(t, true, slots.IsEpochStart(0))
	assert.Equal(t, true, slots.IsEpochStart(64))
	assert.Equal(t, false, slots.IsEpochStart(65))
	assert.Equal(t, true, slots.IsEpochEnd(31))
	assert.Equal(t, false, slots.IsEpochEnd(32))
}

func TestSinceEpochStarts(t *testing.T) {
	assert.Equal(t, types.Slot(0), slots.SinceEpochStarts(64))
	assert.Equal(t, types.Slot(5), slots.SinceEpochStarts(69))
}
