package state

import (
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/runtime/version"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// GenesisTime of the beacon state as a uint64.
func (b *BeaconState) GenesisTime() uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.genesisTime
}

// GenesisValidatorRoot of the beacon state.
func (b *BeaconState) GenesisValidatorRoot() []byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.genesisValidatorsRoot == nil {
		return make([]byte, 32)
	}
	root := make([]byte, 32)
	copy(root, b.genesisValidatorsRoot)
	return root
}

// Slot of the current beacon chain state.
func (b *BeaconState) Slot() types.Slot {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.slot
}

// Fork version of the beacon chain.
func (b *BeaconState) Fork() *ethpb.Fork {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.fork == nil {
		return nil
	}
	return ethpb.CopyFork(b.fork)
}

// LatestBlockHeader stored within the beacon state.
func (b *BeaconState) LatestBlockHeader() *ethpb.BeaconBlockHeader {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.latestBlockHeader == nil {
		return nil
	}
	return ethpb.CopyBeaconBlockHeader(b.latestBlockHeader)
}

// BlockRoots kept track of in the beacon state.
func (b *BeaconState) BlockRoots() [][]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.blockRoots == nil {
		return nil
	}
	return bytesutil.SafeCopy2dBytes(b.blockRoots)
}

// BlockRootAtIndex retrieves a specific block root based on an
// input index value.
func (b *BeaconState) BlockRootAtIndex(idx uint64) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.blockRoots == nil {
		return nil, nil
	}
	if uint64(len(b.blockRoots)) <= idx {
		return nil, errors.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.blockRoots[idx]), nil
}

// StateRoots kept track of in the beacon state.
func (b *BeaconState) StateRoots() [][]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.stateRoots == nil {
		return nil
	}
	return bytesutil.SafeCopy2dBytes(b.stateRoots)
}

// StateRootAtIndex retrieves a specific state root based on an
// input index value.
func (b *BeaconState) StateRootAtIndex(idx uint64) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.stateRoots == nil {
		return nil, nil
	}
	if uint64(len(b.stateRoots)) <= idx {
		return nil, errors.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.stateRoots[idx]), nil
}

// HistoricalRoots based on epochs stored in the beacon state.
func (b *BeaconState) HistoricalRoots() [][]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.historicalRoots == nil {
		return nil
	}
	return bytesutil.SafeCopy2dBytes(b.historicalRoots)
}

// Eth1Data corresponding to the proof-of-work chain information stored in the beacon state.
func (b *BeaconState) Eth1Data() *ethpb.Eth1Data {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.eth1Data == nil {
		return nil
	}
	return ethpb.CopyEth1Data(b.eth1Data)
}

// Eth1DataVotes corresponds to votes from eth2 on the canonical proof-of-work chain
// data retrieved from eth1.
func (b *BeaconState) Eth1DataVotes() []*ethpb.Eth1Data {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.eth1DataVotes == nil {
		return nil
	}
	res := make([]*ethpb.Eth1Data, len(b.eth1DataVotes))
	for i := 0; i < len(res); i++ {
		res[i] = ethpb.CopyEth1Data(b.eth1DataVotes[i])
	}
	return res
}

// Eth1DepositIndex corresponds to the index of the deposit made to the
// validator deposit contract at the time of this state's eth1 data.
func (b *BeaconState) Eth1DepositIndex() uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return b.eth1DepositIndex
}

// RandaoMixes of block proposers on the beacon chain.
func (b *BeaconState) RandaoMixes() [][]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.randaoMixes == nil {
		return nil
	}
	return bytesutil.SafeCopy2dBytes(b.randaoMixes)
}

// RandaoMixAtIndex retrieves a specific randao mix based on an
// input index value.
func (b *BeaconState) RandaoMixAtIndex(idx uint64) ([]byte, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.randaoMixes == nil {
		return nil, nil
	}
	if uint64(len(b.randaoMixes)) <= idx {
		return nil, errors.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.randaoMixes[idx]), nil
}

// RandaoMixesLength returns the length of the randao mixes slice.
func (b *BeaconState) RandaoMixesLength() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.randaoMixes == nil {
		return 0
	}
	return len(b.randaoMixes)
}

// Slashings of validators on the beacon chain.
func (b *BeaconState) Slashings() []uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.slashings == nil {
		return nil
	}
	res := make([]uint64, len(b.slashings))
	copy(res, b.slashings)
	return res
}

// PreviousEpochAttestations corresponding to blocks on the beacon chain.
func (b *BeaconState) PreviousEpochAttestations() ([]*ethpb.PendingAttestation, error) {
	if b.version != version.Phase0 {
		return nil, errNotSupported("PreviousEpochAttestations", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	return ethpb.CopyPendingAttestationSlice(b.previousEpochAttestations), nil
}

// CurrentEpochAttestations corresponding to blocks on the beacon chain.
func (b *BeaconState) CurrentEpochAttestations() ([]*ethpb.PendingAttestation, error) {
	if b.version != version.Phase0 {
		return nil, errNotSupported("CurrentEpochAttestations", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	return ethpb.CopyPendingAttestationSlice(b.currentEpochAttestations), nil
}

// PreviousEpochParticipation corresponding to participation bits on the beacon chain.
func (b *BeaconState) PreviousEpochParticipation() ([]byte, error) {
	if b.version == version.Phase0 {
		return nil, errNotSupported("PreviousEpochParticipation", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	return bytesutil.SafeCopyBytes(b.previousEpochParticipation), nil
}

// CurrentEpochParticipation corresponding to participation bits on the beacon chain.
func (b *BeaconState) CurrentEpochParticipation() ([]byte, error) {
	if b.version == version.Phase0 {
		return nil, errNotSupported("CurrentEpochParticipation", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	return bytesutil.SafeCopyBytes(b.currentEpochParticipation), nil
}

// JustificationBits marking which epochs have been justified in the beacon chain.
func (b *BeaconState) JustificationBits() bitfield.Bitvector4 {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.justificationBits == nil {
		return nil
	}
	res := make([]byte, len(b.justificationBits.Bytes()))
	copy(res, b.justificationBits.Bytes())
	return res
}

// PreviousJustifiedCheckpoint denoting an epoch and block root.
func (b *BeaconState) PreviousJustifiedCheckpoint() *ethpb.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return ethpb.CopyCheckpoint(b.previousJustifiedCheckpoint)
}

// CurrentJustifiedCheckpoint denoting an epoch and block root.
func (b *BeaconState) CurrentJustifiedCheckpoint() *ethpb.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return ethpb.CopyCheckpoint(b.currentJustifiedCheckpoint)
}

// FinalizedCheckpoint denoting an epoch and block root.
func (b *BeaconState) FinalizedCheckpoint() *ethpb.Checkpoint {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return ethpb.CopyCheckpoint(b.finalizedCheckpoint)
}

// FinalizedCheckpointEpoch returns the epoch value of the finalized checkpoint.
func (b *BeaconState) FinalizedCheckpointEpoch() types.Epoch {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.finalizedCheckpoint == nil {
		return 0
	}
	return b.finalizedCheckpoint.Epoch
}

// InactivityScores of validators participating in consensus on the beacon chain.
func (b *BeaconState) InactivityScores() ([]uint64, error) {
	if b.version == version.Phase0 {
		return nil, errNotSupported("InactivityScores", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.inactivityScores == nil {
		return nil, nil
	}
	res := make([]uint64, len(b.inactivityScores))
	copy(res, b.inactivityScores)
	return res, nil
}

// CurrentSyncCommittee of the current sync committee in beacon chain state.
func (b *BeaconState) CurrentSyncCommittee() (*ethpb.SyncCommittee, error) {
	if b.version == version.Phase0 {
		return nil, errNotSupported("CurrentSyncCommittee", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.currentSyncCommittee == nil {
		return nil, nil
	}
	return ethpb.CopySyncCommittee(b.currentSyncCommittee), nil
}

// NextSyncCommittee of the next sync committee in beacon chain state.
func (b *BeaconState) NextSyncCommittee() (*ethpb.SyncCommittee, error) {
	if b.version == version.Phase0 {
		return nil, errNotSupported("NextSyncCommittee", b.version)
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.nextSyncCommittee == nil {
		return nil, nil
	}
	return ethpb.CopySyncCommittee(b.nextSyncCommittee), nil
}

// errNotSupported constructs an error for an getter access that is not
// supported by the state's fork version.
func errNotSupported(funcName string, ver int) error {
	return errors.Errorf("%s is not supported for %s", funcName, version.String(ver))
}
