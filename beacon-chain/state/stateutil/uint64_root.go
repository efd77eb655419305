package stateutil

import (
	fieldparams "github.com/fredriksvantes/lodestar/config/fieldparams"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/pkg/errors"
)

// ValidatorLimitForBalancesChunks returns the limit of validators after going through the chunking process.
func ValidatorLimitForBalancesChunks() uint64 {
	maxValidatorLimit := uint64(fieldparams.ValidatorRegistryLimit)
	bytesInUint64 := uint64(8)
	return (maxValidatorLimit*bytesInUint64 + 31) / 32 // round to nearest chunk
}

// ValidatorBalancesRoot computes the HashTreeRoot Merkleization of
// a list of validator uint64 balances according to the eth2
// Simple Serialize specification.
func ValidatorBalancesRoot(balances []uint64) ([32]byte, error) {
	balancesChunks, err := ssz.PackUint64IntoChunks(balances)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not pack balances into chunks")
	}
	balancesRootsRoot := ssz.MerkleizeVector(balancesChunks, ValidatorLimitForBalancesChunks())
	return ssz.MixInLength32(balancesRootsRoot, uint64(len(balances))), nil
}

// Uint64ListRootWithRegistryLimit computes the HashTreeRoot Merkleization of
// a list of uint64 and mixed with registry limit.
func Uint64ListRootWithRegistryLimit(balances []uint64) ([32]byte, error) {
	return ValidatorBalancesRoot(balances)
}

// HandleBalanceSlice returns the root chunks of a balance slice. When
// convertAll is false, the given indices are raw balance indices; they are
// deduplicated into their containing leaf chunks in first-seen order (four
// balances are compressed into one chunk).
func HandleBalanceSlice(balances, indices []uint64, convertAll bool) ([][32]byte, error) {
	if convertAll {
		return ssz.PackUint64IntoChunks(balances)
	}
	if len(balances) > 0 {
		numOfElems := uint64(4)
		roots := make([][32]byte, 0, len(indices))
		seen := make(map[uint64]bool, len(indices))
		for _, idx := range indices {
			if idx >= uint64(len(balances)) {
				return nil, errors.Errorf("index %d greater than number of balances %d", idx, len(balances))
			}
			// We split the indexes into their relevant groups. Balances
			// are compressed according to 4 values -> 1 chunk.
			chunkIdx := idx / numOfElems
			if seen[chunkIdx] {
				continue
			}
			seen[chunkIdx] = true
			startIdx := chunkIdx * numOfElems
			endIdx := startIdx + numOfElems
			if endIdx > uint64(len(balances)) {
				endIdx = uint64(len(balances))
			}
			chunk, err := ssz.PackUint64IntoChunks(balances[startIdx:endIdx])
			if err != nil {
				return nil, err
			}
			roots = append(roots, chunk...)
		}
		return roots, nil
	}
	return [][32]byte{}, nil
}
