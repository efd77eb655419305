package stateutil

import (
	"encoding/binary"

	fieldparams "github.com/fredriksvantes/lodestar/config/fieldparams"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/pkg/errors"
)

// EpochAttestationsRoot computes the HashTreeRoot Merkleization of
// a list of pending attestation values according to the eth2
// Simple Serialize specification.
func EpochAttestationsRoot(atts []*ethpb.PendingAttestation) ([32]byte, error) {
	if uint64(len(atts)) > uint64(fieldparams.CurrentEpochAttestationsLength) {
		return [32]byte{}, errors.Errorf("epoch attestation exceeds max length %d", fieldparams.CurrentEpochAttestationsLength)
	}

	hasher := ssz.DefaultHasherFunc()
	roots := make([][32]byte, len(atts))
	for i := 0; i < len(atts); i++ {
		pendingRoot, err := PendingAttRootWithHasher(hasher, atts[i])
		if err != nil {
			return [32]byte{}, errors.Wrap(err, "could not attestation merkleization")
		}
		roots[i] = pendingRoot
	}

	attsRootsRoot := ssz.MerkleizeVector(roots, uint64(fieldparams.CurrentEpochAttestationsLength))
	return ssz.MixInLength32(attsRootsRoot, uint64(len(atts))), nil
}

// PendingAttRootWithHasher describes a method from which the hash tree root
// of a pending attestation is returned.
func PendingAttRootWithHasher(hasher ssz.Hasher, att *ethpb.PendingAttestation) ([32]byte, error) {
	if att == nil {
		return [32]byte{}, errors.New("nil pending attestation")
	}
	var fieldRoots [][32]byte

	// Bitfield.
	aggregationRoot, err := ssz.BitlistRoot(hasher, att.AggregationBits, 2048)
	if err != nil {
		return [32]byte{}, err
	}

	// Attestation data.
	attDataRoot, err := AttDataRootWithHasher(hasher, att.Data)
	if err != nil {
		return [32]byte{}, err
	}

	inclusionBuf := [32]byte{}
	binary.LittleEndian.PutUint64(inclusionBuf[:8], uint64(att.InclusionDelay))

	proposerBuf := [32]byte{}
	binary.LittleEndian.PutUint64(proposerBuf[:8], uint64(att.ProposerIndex))

	fieldRoots = [][32]byte{aggregationRoot, attDataRoot, inclusionBuf, proposerBuf}
	chunks := make([][]byte, len(fieldRoots))
	for i, root := range fieldRoots {
		r := root
		chunks[i] = r[:]
	}
	return ssz.BitwiseMerkleize(hasher, chunks, uint64(len(chunks)), uint64(len(chunks)))
}

// AttDataRootWithHasher describes a method from which the hash tree root
// of an attestation data is returned.
func AttDataRootWithHasher(hasher ssz.Hasher, data *ethpb.AttestationData) ([32]byte, error) {
	if data == nil {
		return [32]byte{}, errors.New("nil attestation data")
	}
	fieldRoots := make([][]byte, 5)

	// Slot.
	slotBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(slotBuf, uint64(data.Slot))
	slotRoot := bytesutil.ToBytes32(slotBuf)
	fieldRoots[0] = slotRoot[:]

	// CommitteeIndex.
	indexBuf := make([]byte, 8)
	binary.LittleEndian.PutUint64(indexBuf, uint64(data.CommitteeIndex))
	interRoot := bytesutil.ToBytes32(indexBuf)
	fieldRoots[1] = interRoot[:]

	// Beacon block root.
	blockRoot := bytesutil.ToBytes32(data.BeaconBlockRoot)
	fieldRoots[2] = blockRoot[:]

	// Source.
	sourceRoot, err := ssz.CheckpointRoot(hasher, data.Source)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute source checkpoint merkleization")
	}
	fieldRoots[3] = sourceRoot[:]

	// Target.
	targetRoot, err := ssz.CheckpointRoot(hasher, data.Target)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute target checkpoint merkleization")
	}
	fieldRoots[4] = targetRoot[:]

	return ssz.BitwiseMerkleize(hasher, fieldRoots, uint64(len(fieldRoots)), uint64(len(fieldRoots)))
}
