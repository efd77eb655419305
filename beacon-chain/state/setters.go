package state

import (
	"github.com/fredriksvantes/lodestar/beacon-chain/state/stateutil"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/types"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/runtime/version"
	eth2types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// indicesLimit caps the per-field dirty index list; beyond it a full trie
// rebuild is cheaper than replaying individual branches.
const indicesLimit = 8192

// markFieldAsDirty marks the field as dirty so its root is recomputed on the
// next HashTreeRoot call.
//
// WARNING: Caller must acquire the mutex before using.
func (b *BeaconState) markFieldAsDirty(field types.FieldIndex) {
	b.dirtyFields[field] = true
}

// addDirtyIndices adds the relevant dirty field indices, so that they
// can be recomputed.
//
// WARNING: Caller must acquire the mutex before using.
func (b *BeaconState) addDirtyIndices(index types.FieldIndex, indices []uint64) {
	if b.rebuildTrie[index] {
		return
	}
	b.dirtyIndices[index] = append(b.dirtyIndices[index], indices...)
	if len(b.dirtyIndices[index]) > indicesLimit {
		b.dirtyIndices[index] = []uint64{}
		b.rebuildTrie[index] = true
	}
}

// SetGenesisTime for the beacon state.
func (b *BeaconState) SetGenesisTime(val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.genesisTime = val
	b.markFieldAsDirty(types.GenesisTime)
	return nil
}

// SetGenesisValidatorRoot for the beacon state.
func (b *BeaconState) SetGenesisValidatorRoot(val []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.genesisValidatorsRoot = bytesutil.SafeCopyBytes(val)
	b.markFieldAsDirty(types.GenesisValidatorsRoot)
	return nil
}

// SetSlot for the beacon state.
func (b *BeaconState) SetSlot(val eth2types.Slot) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.slot = val
	b.markFieldAsDirty(types.Slot)
	return nil
}

// SetFork version for the beacon chain.
func (b *BeaconState) SetFork(val *ethpb.Fork) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.fork = ethpb.CopyFork(val)
	b.markFieldAsDirty(types.Fork)
	return nil
}

// SetLatestBlockHeader in the beacon state.
func (b *BeaconState) SetLatestBlockHeader(val *ethpb.BeaconBlockHeader) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.latestBlockHeader = ethpb.CopyBeaconBlockHeader(val)
	b.markFieldAsDirty(types.LatestBlockHeader)
	return nil
}

// UpdateBlockRootAtIndex for the beacon state. Updates the block root
// at a specific index to a new value.
func (b *BeaconState) UpdateBlockRootAtIndex(idx uint64, blockRoot [32]byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.blockRoots)) <= idx {
		return errors.Errorf("invalid index provided %d", idx)
	}

	r := b.blockRoots
	if ref := b.sharedFieldReferences[types.BlockRoots]; ref.Refs() > 1 {
		// Copy elements in underlying array by reference.
		r = make([][]byte, len(b.blockRoots))
		copy(r, b.blockRoots)
		ref.MinusRef()
		b.sharedFieldReferences[types.BlockRoots] = stateutil.NewRef(1)
	}

	r[idx] = blockRoot[:]
	b.blockRoots = r

	b.markFieldAsDirty(types.BlockRoots)
	b.addDirtyIndices(types.BlockRoots, []uint64{idx})
	return nil
}

// UpdateStateRootAtIndex for the beacon state. Updates the state root
// at a specific index to a new value.
func (b *BeaconState) UpdateStateRootAtIndex(idx uint64, stateRoot [32]byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.stateRoots)) <= idx {
		return errors.Errorf("invalid index provided %d", idx)
	}

	r := b.stateRoots
	if ref := b.sharedFieldReferences[types.StateRoots]; ref.Refs() > 1 {
		r = make([][]byte, len(b.stateRoots))
		copy(r, b.stateRoots)
		ref.MinusRef()
		b.sharedFieldReferences[types.StateRoots] = stateutil.NewRef(1)
	}

	r[idx] = stateRoot[:]
	b.stateRoots = r

	b.markFieldAsDirty(types.StateRoots)
	b.addDirtyIndices(types.StateRoots, []uint64{idx})
	return nil
}

// AppendHistoricalRoots for the beacon state. Appends the new value
// to the end of list.
func (b *BeaconState) AppendHistoricalRoots(root [32]byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	roots := b.historicalRoots
	if b.sharedFieldReferences[types.HistoricalRoots].Refs() > 1 {
		roots = make([][]byte, len(b.historicalRoots))
		copy(roots, b.historicalRoots)
		b.sharedFieldReferences[types.HistoricalRoots].MinusRef()
		b.sharedFieldReferences[types.HistoricalRoots] = stateutil.NewRef(1)
	}

	b.historicalRoots = append(roots, root[:])
	b.markFieldAsDirty(types.HistoricalRoots)
	return nil
}

// SetEth1Data for the beacon state.
func (b *BeaconState) SetEth1Data(val *ethpb.Eth1Data) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.eth1Data = ethpb.CopyEth1Data(val)
	b.markFieldAsDirty(types.Eth1Data)
	return nil
}

// SetEth1DataVotes for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetEth1DataVotes(val []*ethpb.Eth1Data) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.Eth1DataVotes].MinusRef()
	b.sharedFieldReferences[types.Eth1DataVotes] = stateutil.NewRef(1)

	b.eth1DataVotes = val
	b.markFieldAsDirty(types.Eth1DataVotes)
	return nil
}

// SetEth1DepositIndex for the beacon state.
func (b *BeaconState) SetEth1DepositIndex(val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.eth1DepositIndex = val
	b.markFieldAsDirty(types.Eth1DepositIndex)
	return nil
}

// UpdateRandaoMixesAtIndex for the beacon state. Updates the randao mixes
// at a specific index to a new value.
func (b *BeaconState) UpdateRandaoMixesAtIndex(idx uint64, val []byte) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.randaoMixes)) <= idx {
		return errors.Errorf("invalid index provided %d", idx)
	}

	mixes := b.randaoMixes
	if refs := b.sharedFieldReferences[types.RandaoMixes].Refs(); refs > 1 {
		mixes = make([][]byte, len(b.randaoMixes))
		copy(mixes, b.randaoMixes)
		b.sharedFieldReferences[types.RandaoMixes].MinusRef()
		b.sharedFieldReferences[types.RandaoMixes] = stateutil.NewRef(1)
	}

	mixes[idx] = val
	b.randaoMixes = mixes

	b.markFieldAsDirty(types.RandaoMixes)
	b.addDirtyIndices(types.RandaoMixes, []uint64{idx})
	return nil
}

// SetSlashings for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetSlashings(val []uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.Slashings].MinusRef()
	b.sharedFieldReferences[types.Slashings] = stateutil.NewRef(1)

	b.slashings = val
	b.markFieldAsDirty(types.Slashings)
	return nil
}

// UpdateSlashingsAtIndex for the beacon state. Updates the slashings
// at a specific index to a new value.
func (b *BeaconState) UpdateSlashingsAtIndex(idx, val uint64) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.slashings)) <= idx {
		return errors.Errorf("invalid index provided %d", idx)
	}

	s := b.slashings
	if b.sharedFieldReferences[types.Slashings].Refs() > 1 {
		s = make([]uint64, len(b.slashings))
		copy(s, b.slashings)
		b.sharedFieldReferences[types.Slashings].MinusRef()
		b.sharedFieldReferences[types.Slashings] = stateutil.NewRef(1)
	}

	s[idx] = val
	b.slashings = s

	b.markFieldAsDirty(types.Slashings)
	return nil
}

// SetPreviousEpochAttestations for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetPreviousEpochAttestations(val []*ethpb.PendingAttestation) error {
	if b.version != version.Phase0 {
		return errNotSupported("SetPreviousEpochAttestations", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.PreviousEpochAttestations].MinusRef()
	b.sharedFieldReferences[types.PreviousEpochAttestations] = stateutil.NewRef(1)

	b.previousEpochAttestations = val
	b.markFieldAsDirty(types.PreviousEpochAttestations)
	return nil
}

// SetCurrentEpochAttestations for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetCurrentEpochAttestations(val []*ethpb.PendingAttestation) error {
	if b.version != version.Phase0 {
		return errNotSupported("SetCurrentEpochAttestations", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.CurrentEpochAttestations].MinusRef()
	b.sharedFieldReferences[types.CurrentEpochAttestations] = stateutil.NewRef(1)

	b.currentEpochAttestations = val
	b.markFieldAsDirty(types.CurrentEpochAttestations)
	return nil
}

// AppendCurrentEpochAttestations for the beacon state. Appends the new value
// to the end of list.
func (b *BeaconState) AppendCurrentEpochAttestations(val *ethpb.PendingAttestation) error {
	if b.version != version.Phase0 {
		return errNotSupported("AppendCurrentEpochAttestations", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	atts := b.currentEpochAttestations
	if b.sharedFieldReferences[types.CurrentEpochAttestations].Refs() > 1 {
		atts = make([]*ethpb.PendingAttestation, 0, len(b.currentEpochAttestations)+1)
		atts = append(atts, b.currentEpochAttestations...)
		b.sharedFieldReferences[types.CurrentEpochAttestations].MinusRef()
		b.sharedFieldReferences[types.CurrentEpochAttestations] = stateutil.NewRef(1)
	}

	b.currentEpochAttestations = append(atts, val)
	b.markFieldAsDirty(types.CurrentEpochAttestations)
	return nil
}

// AppendPreviousEpochAttestations for the beacon state. Appends the new value
// to the end of list.
func (b *BeaconState) AppendPreviousEpochAttestations(val *ethpb.PendingAttestation) error {
	if b.version != version.Phase0 {
		return errNotSupported("AppendPreviousEpochAttestations", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	atts := b.previousEpochAttestations
	if b.sharedFieldReferences[types.PreviousEpochAttestations].Refs() > 1 {
		atts = make([]*ethpb.PendingAttestation, 0, len(b.previousEpochAttestations)+1)
		atts = append(atts, b.previousEpochAttestations...)
		b.sharedFieldReferences[types.PreviousEpochAttestations].MinusRef()
		b.sharedFieldReferences[types.PreviousEpochAttestations] = stateutil.NewRef(1)
	}

	b.previousEpochAttestations = append(atts, val)
	b.markFieldAsDirty(types.PreviousEpochAttestations)
	return nil
}

// SetPreviousParticipationBits for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetPreviousParticipationBits(val []byte) error {
	if b.version == version.Phase0 {
		return errNotSupported("SetPreviousParticipationBits", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.PreviousEpochParticipationBits].MinusRef()
	b.sharedFieldReferences[types.PreviousEpochParticipationBits] = stateutil.NewRef(1)

	b.previousEpochParticipation = val
	b.markFieldAsDirty(types.PreviousEpochParticipationBits)
	return nil
}

// SetCurrentParticipationBits for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetCurrentParticipationBits(val []byte) error {
	if b.version == version.Phase0 {
		return errNotSupported("SetCurrentParticipationBits", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.CurrentEpochParticipationBits].MinusRef()
	b.sharedFieldReferences[types.CurrentEpochParticipationBits] = stateutil.NewRef(1)

	b.currentEpochParticipation = val
	b.markFieldAsDirty(types.CurrentEpochParticipationBits)
	return nil
}

// SetJustificationBits for the beacon state.
func (b *BeaconState) SetJustificationBits(val bitfield.Bitvector4) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.justificationBits = val
	b.markFieldAsDirty(types.JustificationBits)
	return nil
}

// SetPreviousJustifiedCheckpoint for the beacon state.
func (b *BeaconState) SetPreviousJustifiedCheckpoint(val *ethpb.Checkpoint) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.previousJustifiedCheckpoint = val
	b.markFieldAsDirty(types.PreviousJustifiedCheckpoint)
	return nil
}

// SetCurrentJustifiedCheckpoint for the beacon state.
func (b *BeaconState) SetCurrentJustifiedCheckpoint(val *ethpb.Checkpoint) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.currentJustifiedCheckpoint = val
	b.markFieldAsDirty(types.CurrentJustifiedCheckpoint)
	return nil
}

// SetFinalizedCheckpoint for the beacon state.
func (b *BeaconState) SetFinalizedCheckpoint(val *ethpb.Checkpoint) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.finalizedCheckpoint = val
	b.markFieldAsDirty(types.FinalizedCheckpoint)
	return nil
}

// SetInactivityScores for the beacon state. Updates the entire
// list to a new value by overwriting the previous one.
func (b *BeaconState) SetInactivityScores(val []uint64) error {
	if b.version == version.Phase0 {
		return errNotSupported("SetInactivityScores", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.sharedFieldReferences[types.InactivityScores].MinusRef()
	b.sharedFieldReferences[types.InactivityScores] = stateutil.NewRef(1)

	b.inactivityScores = val
	b.markFieldAsDirty(types.InactivityScores)
	return nil
}

// SetCurrentSyncCommittee for the beacon state.
func (b *BeaconState) SetCurrentSyncCommittee(val *ethpb.SyncCommittee) error {
	if b.version == version.Phase0 {
		return errNotSupported("SetCurrentSyncCommittee", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.currentSyncCommittee = val
	b.markFieldAsDirty(types.CurrentSyncCommittee)
	return nil
}

// SetNextSyncCommittee for the beacon state.
func (b *BeaconState) SetNextSyncCommittee(val *ethpb.SyncCommittee) error {
	if b.version == version.Phase0 {
		return errNotSupported("SetNextSyncCommittee", b.version)
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.nextSyncCommittee = val
	b.markFieldAsDirty(types.NextSyncCommittee)
	return nil
}
