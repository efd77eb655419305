package stateutil_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/state/stateutil"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func chunk(b byte) [32]byte {
	var c [32]byte
	c[0] = b
	return c
}

func TestReturnTrieLayer_RootMatchesMerkleizeVector(t *testing.T) {
	elements := [][32]byte{chunk(1), chunk(2), chunk(3), chunk(4)}
	layers, err := stateutil.ReturnTrieLayer(append([][32]byte{}, elements...), 4)
	require.NoError(t, err)
	require.Equal(t, 3, len(layers))
	want := ssz.MerkleizeVector(append([][32]byte{}, elements...), 4)
	assert.DeepEqual(t, want, *layers[2][0])
}

func TestRecomputeFromLayer_MatchesFreshBuild(t *testing.T) {
	elements := [][32]byte{chunk(1), chunk(2), chunk(3), chunk(4)}
	layers, err := stateutil.ReturnTrieLayer(append([][32]byte{}, elements...), 4)
	require.NoError(t, err)

	// Change leaf 2 and recompute along the branch only.
	changed := chunk(9)
	root, layers, err := stateutil.RecomputeFromLayer([][32]byte{changed}, []uint64{2}, layers)
	require.NoError(t, err)

	fresh := [][32]byte{chunk(1), chunk(2), changed, chunk(4)}
	want := ssz.MerkleizeVector(fresh, 4)
	assert.DeepEqual(t, want, root)
	assert.DeepEqual(t, want, *layers[2][0])
}

func TestReturnTrieLayerVariable_ZeroAndSomeElements(t *testing.T) {
	// Empty trie at depth yields the zero hash of that depth.
	layers := stateutil.ReturnTrieLayerVariable(nil, 8)
	require.Equal(t, 4, len(layers))
	assert.DeepEqual(t, ssz.ZeroHashes[3], *layers[3][0])

	elements := [][32]byte{chunk(1), chunk(2), chunk(3)}
	layers = stateutil.ReturnTrieLayerVariable(append([][32]byte{}, elements...), 8)
	want := ssz.MerkleizeVector(append([][32]byte{}, elements...), 8)
	assert.DeepEqual(t, want, *layers[3][0])
}

func TestRecomputeFromLayerVariable_UpdatesAndAppends(t *testing.T) {
	elements := [][32]byte{chunk(1), chunk(2), chunk(3)}
	layers := stateutil.ReturnTrieLayerVariable(append([][32]byte{}, elements...), 8)

	// In-place update.
	changed := chunk(7)
	root, layers, err := stateutil.RecomputeFromLayerVariable([][32]byte{changed}, []uint64{1}, layers)
	require.NoError(t, err)
	want := ssz.MerkleizeVector([][32]byte{chunk(1), changed, chunk(3)}, 8)
	assert.DeepEqual(t, want, root)

	// Appending a new boundary leaf.
	appended := chunk(8)
	root, _, err = stateutil.RecomputeFromLayerVariable([][32]byte{appended}, []uint64{3}, layers)
	require.NoError(t, err)
	want = ssz.MerkleizeVector([][32]byte{chunk(1), changed, chunk(3), appended}, 8)
	assert.DeepEqual(t, want, root)
}

func TestValidatorLimitForBalancesChunks(t *testing.T) {
	// 2^40 validators, 4 balances a chunk.
	require.Equal(t, uint64(1099511627776/4), stateutil.ValidatorLimitForBalancesChunks())
}
