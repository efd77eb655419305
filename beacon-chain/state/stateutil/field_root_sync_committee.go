package stateutil

import (
	fieldparams "github.com/fredriksvantes/lodestar/config/fieldparams"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/pkg/errors"
)

// SyncCommitteeRoot computes the HashTreeRoot Merkleization of a committee root.
// a SyncCommitteeRoot struct according to the eth2
// Simple Serialize specification.
func SyncCommitteeRoot(committee *ethpb.SyncCommittee) ([32]byte, error) {
	hasher := ssz.DefaultHasherFunc()
	var fieldRoots [][32]byte
	if committee == nil {
		return [32]byte{}, errors.New("nil sync committee")
	}

	// Field 1: Vector[BLSPubkey, SYNC_COMMITTEE_SIZE]
	pubKeyRoots := make([][32]byte, 0, fieldparams.SyncCommitteeLength)
	for _, pubkey := range committee.Pubkeys {
		r, err := merkleizePubkey(hasher, pubkey)
		if err != nil {
			return [32]byte{}, err
		}
		pubKeyRoots = append(pubKeyRoots, r)
	}
	pubkeyRoot := ssz.MerkleizeVector(pubKeyRoots, uint64(len(pubKeyRoots)))

	// Field 2: BLSPubkey
	aggregateKeyRoot, err := merkleizePubkey(hasher, committee.AggregatePubkey)
	if err != nil {
		return [32]byte{}, err
	}
	fieldRoots = [][32]byte{pubkeyRoot, aggregateKeyRoot}

	chunks := make([][]byte, len(fieldRoots))
	for i, root := range fieldRoots {
		r := root
		chunks[i] = r[:]
	}
	return ssz.BitwiseMerkleize(hasher, chunks, uint64(len(chunks)), uint64(len(chunks)))
}

func merkleizePubkey(hasher ssz.Hasher, pubkey []byte) ([32]byte, error) {
	chunks, err := ssz.Pack([][]byte{pubkey})
	if err != nil {
		return [32]byte{}, err
	}
	return ssz.BitwiseMerkleize(hasher, chunks, uint64(len(chunks)), uint64(len(chunks)))
}
