package stateutil

import (
	"encoding/binary"

	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/pkg/errors"
)

// BlockHeaderRoot computes the HashTreeRoot Merkleization of
// a BeaconBlockHeader struct according to the eth2
// Simple Serialize specification.
func BlockHeaderRoot(header *ethpb.BeaconBlockHeader) ([32]byte, error) {
	if header == nil {
		return [32]byte{}, errors.New("nil block header")
	}
	fieldRoots := make([][]byte, 5)
	for i := 0; i < len(fieldRoots); i++ {
		fieldRoots[i] = make([]byte, 32)
	}
	headerSlotBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(headerSlotBuf, uint64(header.Slot))
	headerSlotRoot := bytesutil.ToBytes32(headerSlotBuf)
	fieldRoots[0] = headerSlotRoot[:]
	proposerIdxBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(proposerIdxBuf, uint64(header.ProposerIndex))
	proposerIndexRoot := bytesutil.ToBytes32(proposerIdxBuf)
	fieldRoots[1] = proposerIndexRoot[:]
	parentRoot := bytesutil.ToBytes32(header.ParentRoot)
	fieldRoots[2] = parentRoot[:]
	stateRoot := bytesutil.ToBytes32(header.StateRoot)
	fieldRoots[3] = stateRoot[:]
	bodyRoot := bytesutil.ToBytes32(header.BodyRoot)
	fieldRoots[4] = bodyRoot[:]
	return ssz.BitwiseMerkleize(ssz.DefaultHasherFunc(), fieldRoots, uint64(len(fieldRoots)), uint64(len(fieldRoots)))
}
