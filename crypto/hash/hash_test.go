package hash_test

import (
	"crypto/sha256"
	"testing"

	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestHash_MatchesStandardLibrary(t *testing.T) {
	input := []byte("beacon chain")
	want := sha256.Sum256(input)
	assert.DeepEqual(t, want, hash.Hash(input))
}

func TestCustomSHA256Hasher(t *testing.T) {
	hashFunc := hash.CustomSHA256Hasher()
	input := []byte("abc")
	first := hashFunc(input)
	require.DeepEqual(t, sha256.Sum256(input), first)
	// Repeated use of the enclosed hasher stays correct.
	second := hashFunc([]byte("def"))
	require.DeepEqual(t, sha256.Sum256([]byte("def")), second)
}
