package cache_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/cache"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
)

func TestSkipSlotCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewSkipSlotCache()
	r := [32]byte{'a'}

	st, err := c.Get(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, true, st == nil, "empty cache returned a state")

	require.NoError(t, c.MarkInProgress(r))

	vals, bals := util.DeterministicValidators(4)
	st, err = util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = 10
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, c.Put(ctx, r, st))
	require.NoError(t, c.MarkNotInProgress(r))

	res, err := c.Get(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, st.Slot(), res.Slot())

	// The cached copy is isolated from later mutations of the retrieved state.
	require.NoError(t, res.SetSlot(42))
	res2, err := c.Get(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, st.Slot(), res2.Slot())
}

func TestSkipSlotCache_MarkInProgress(t *testing.T) {
	c := cache.NewSkipSlotCache()
	r := [32]byte{'b'}
	require.NoError(t, c.MarkInProgress(r))
	require.ErrorIs(t, c.MarkInProgress(r), cache.ErrAlreadyInProgress)
	require.NoError(t, c.MarkNotInProgress(r))
	require.NoError(t, c.MarkInProgress(r))
}
