package stateutil

import (
	fieldparams "github.com/fredriksvantes/lodestar/config/fieldparams"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
)

// ParticipationBitsRoot computes the HashTreeRoot merkleization of
// participation roots.
func ParticipationBitsRoot(bits []byte) ([32]byte, error) {
	chunkedRoots, err := packParticipationBits(bits)
	if err != nil {
		return [32]byte{}, err
	}
	limit := (uint64(fieldparams.ValidatorRegistryLimit) + 31) / 32
	bitsRootsRoot := ssz.MerkleizeVector(chunkedRoots, limit)
	return ssz.MixInLength32(bitsRootsRoot, uint64(len(bits))), nil
}

// packParticipationBits into chunks. It'll pad the last chunk with zero bytes if
// it does not have length bytes per chunk.
func packParticipationBits(bytes []byte) ([][32]byte, error) {
	numItems := len(bytes)
	var chunks [][32]byte
	for i := 0; i < numItems; i += 32 {
		j := i + 32
		// We create our upper bound index of the chunk, if it is greater than numItems,
		// we set it as numItems itself.
		if j > numItems {
			j = numItems
		}
		// We create chunks from the list of items based on the
		// indices determined above.
		var chunk [32]byte
		copy(chunk[:], bytes[i:j])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}
