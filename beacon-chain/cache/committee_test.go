package cache

import (
	"testing"

	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	types "github.com/prysmaticlabs/eth2-types"
)

func TestCommitteeCache_RoundTrip(t *testing.T) {
	c := NewCommitteesCache()
	seed := [32]byte{1}

	indices, err := c.ActiveIndices(seed)
	require.NoError(t, err)
	assert.Equal(t, true, indices == nil)

	item := &Committees{
		CommitteeCount:  32,
		Seed:            seed,
		ShuffledIndices: []types.ValidatorIndex{1, 2, 3, 4},
		SortedIndices:   []types.ValidatorIndex{1, 2, 3, 4},
	}
	require.NoError(t, c.AddCommitteeShuffledList(item))

	indices, err = c.ActiveIndices(seed)
	require.NoError(t, err)
	assert.DeepEqual(t, item.SortedIndices, indices)

	count, err := c.ActiveIndicesCount(seed)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestCommitteeCache_CommitteeSlices(t *testing.T) {
	c := NewCommitteesCache()
	seed := [32]byte{2}
	item := &Committees{
		CommitteeCount:  64, // 2 committees for each of the 32 slots
		Seed:            seed,
		ShuffledIndices: make([]types.ValidatorIndex, 128),
		SortedIndices:   make([]types.ValidatorIndex, 128),
	}
	for i := range item.ShuffledIndices {
		item.ShuffledIndices[i] = types.ValidatorIndex(i)
	}
	require.NoError(t, c.AddCommitteeShuffledList(item))

	first, err := c.Committee(0, seed, 0)
	require.NoError(t, err)
	require.Equal(t, 2, len(first))
	assert.Equal(t, types.ValidatorIndex(0), first[0])

	second, err := c.Committee(0, seed, 1)
	require.NoError(t, err)
	assert.Equal(t, types.ValidatorIndex(2), second[0])
}

func TestCommitteeCache_ProposerIndices(t *testing.T) {
	c := NewCommitteesCache()
	seed := [32]byte{3}
	require.ErrorIs(t, c.AddProposerIndicesList(seed, []types.ValidatorIndex{1}), ErrNonCommitteeKey)

	require.NoError(t, c.AddCommitteeShuffledList(&Committees{Seed: seed, CommitteeCount: 32}))
	require.NoError(t, c.AddProposerIndicesList(seed, []types.ValidatorIndex{9, 8, 7}))

	indices, err := c.ProposerIndices(seed)
	require.NoError(t, err)
	assert.DeepEqual(t, []types.ValidatorIndex{9, 8, 7}, indices)
}
