package ssz_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestDepth(t *testing.T) {
	trieSizes := []uint64{0, 1, 2, 3, 4, 5, 8, 9, 16}
	expected := []uint8{0, 0, 1, 2, 2, 3, 3, 4, 4}
	for i, size := range trieSizes {
		require.Equal(t, expected[i], ssz.Depth(size))
	}
}

func TestMerkleize_SingleLeaf(t *testing.T) {
	leaf := make([]byte, 32)
	leaf[0] = 1
	root, err := ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), [][]byte{leaf}, 1, 1)
	require.NoError(t, err)
	assert.DeepEqual(t, [32]byte{1}, root)
}

func TestMerkleize_TwoLeaves(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	a[0], b[0] = 1, 2
	root, err := ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), [][]byte{a, b}, 2, 2)
	require.NoError(t, err)
	want := hash.Hash(append(a, b...))
	assert.DeepEqual(t, want, root)
}

func TestMerkleize_PadsWithZeroHashes(t *testing.T) {
	a := make([]byte, 32)
	a[0] = 1
	root, err := ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), [][]byte{a}, 1, 2)
	require.NoError(t, err)
	want := hash.Hash(append(a, make([]byte, 32)...))
	assert.DeepEqual(t, want, root)
}

func TestMerkleize_OverLimit(t *testing.T) {
	a := make([]byte, 32)
	_, err := ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), [][]byte{a, a}, 2, 1)
	require.ErrorContains(t, "merkleizing list that is too large", err)
}

func TestMerkleizeVector_MatchesBitwiseMerkleize(t *testing.T) {
	count := 5
	chunks := make([][]byte, count)
	elements := make([][32]byte, count)
	for i := 0; i < count; i++ {
		var c [32]byte
		c[0] = byte(i + 1)
		elements[i] = c
		chunks[i] = elements[i][:]
	}
	want, err := ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), chunks, uint64(count), 8)
	require.NoError(t, err)
	got := ssz.MerkleizeVector(elements, 8)
	assert.DeepEqual(t, want, got)
}

func TestPack(t *testing.T) {
	// Empty input packs into one zero chunk.
	chunks, err := ssz.Pack([][]byte{})
	require.NoError(t, err)
	require.Equal(t, 1, len(chunks))

	// Smaller items are packed and right-padded to 32 bytes.
	chunks, err = ssz.Pack([][]byte{{1, 2, 3, 4, 5, 6, 7, 8}})
	require.NoError(t, err)
	require.Equal(t, 1, len(chunks))
	require.Equal(t, 32, len(chunks[0]))
	assert.Equal(t, byte(1), chunks[0][0])
	assert.Equal(t, byte(0), chunks[0][8])

	// 48 byte input spans two chunks.
	chunks, err = ssz.Pack([][]byte{make([]byte, 48)})
	require.NoError(t, err)
	require.Equal(t, 2, len(chunks))
}

func TestMixInLength(t *testing.T) {
	var root [32]byte
	root[0] = 1
	length := make([]byte, 32)
	length[0] = 2
	want := hash.Hash(append(root[:], length...))
	assert.DeepEqual(t, want, ssz.MixInLength(root, length))
}

func TestPackUint64IntoChunks(t *testing.T) {
	chunks, err := ssz.PackUint64IntoChunks([]uint64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.Equal(t, 2, len(chunks))
	assert.Equal(t, byte(1), chunks[0][0])
	assert.Equal(t, byte(2), chunks[0][8])
	assert.Equal(t, byte(5), chunks[1][0])
}

func TestUint64Root(t *testing.T) {
	root := ssz.Uint64Root(1)
	assert.Equal(t, byte(1), root[0])
	assert.Equal(t, byte(0), root[1])
}
