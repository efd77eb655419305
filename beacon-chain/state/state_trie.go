package state

import (
	"context"
	"runtime"
	"sort"

	"github.com/fredriksvantes/lodestar/beacon-chain/state/fieldtrie"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/stateutil"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/types"
	fieldparams "github.com/fredriksvantes/lodestar/config/fieldparams"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/runtime/version"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// InitializeFromPhase0 the beacon state from a phase 0 container representation.
// This function makes a copy of the input container before populating the store.
func InitializeFromPhase0(st *ethpb.BeaconState) (*BeaconState, error) {
	if st == nil {
		return nil, ErrNilInnerState
	}
	return InitializeFromPhase0Unsafe(copyPhase0State(st))
}

// InitializeFromPhase0Unsafe directly uses the beacon state container fields
// and sets them as the fields of the state store.
func InitializeFromPhase0Unsafe(st *ethpb.BeaconState) (*BeaconState, error) {
	if st == nil {
		return nil, ErrNilInnerState
	}
	b := &BeaconState{
		version:                     version.Phase0,
		genesisTime:                 st.GenesisTime,
		genesisValidatorsRoot:       st.GenesisValidatorsRoot,
		slot:                        st.Slot,
		fork:                        st.Fork,
		latestBlockHeader:           st.LatestBlockHeader,
		blockRoots:                  st.BlockRoots,
		stateRoots:                  st.StateRoots,
		historicalRoots:             st.HistoricalRoots,
		eth1Data:                    st.Eth1Data,
		eth1DataVotes:               st.Eth1DataVotes,
		eth1DepositIndex:            st.Eth1DepositIndex,
		validators:                  st.Validators,
		balances:                    st.Balances,
		randaoMixes:                 st.RandaoMixes,
		slashings:                   st.Slashings,
		previousEpochAttestations:   st.PreviousEpochAttestations,
		currentEpochAttestations:    st.CurrentEpochAttestations,
		justificationBits:           st.JustificationBits,
		previousJustifiedCheckpoint: st.PreviousJustifiedCheckpoint,
		currentJustifiedCheckpoint:  st.CurrentJustifiedCheckpoint,
		finalizedCheckpoint:         st.FinalizedCheckpoint,
	}
	b.initializeCaches()
	return b, nil
}

// InitializeFromAltair the beacon state from an Altair container representation.
// This function makes a copy of the input container before populating the store.
func InitializeFromAltair(st *ethpb.BeaconStateAltair) (*BeaconState, error) {
	if st == nil {
		return nil, ErrNilInnerState
	}
	return InitializeFromAltairUnsafe(copyAltairState(st))
}

// InitializeFromAltairUnsafe directly uses the beacon state container fields
// and sets them as the fields of the state store.
func InitializeFromAltairUnsafe(st *ethpb.BeaconStateAltair) (*BeaconState, error) {
	if st == nil {
		return nil, ErrNilInnerState
	}
	b := &BeaconState{
		version:                     version.Altair,
		genesisTime:                 st.GenesisTime,
		genesisValidatorsRoot:       st.GenesisValidatorsRoot,
		slot:                        st.Slot,
		fork:                        st.Fork,
		latestBlockHeader:           st.LatestBlockHeader,
		blockRoots:                  st.BlockRoots,
		stateRoots:                  st.StateRoots,
		historicalRoots:             st.HistoricalRoots,
		eth1Data:                    st.Eth1Data,
		eth1DataVotes:               st.Eth1DataVotes,
		eth1DepositIndex:            st.Eth1DepositIndex,
		validators:                  st.Validators,
		balances:                    st.Balances,
		randaoMixes:                 st.RandaoMixes,
		slashings:                   st.Slashings,
		previousEpochParticipation:  st.PreviousEpochParticipation,
		currentEpochParticipation:   st.CurrentEpochParticipation,
		justificationBits:           st.JustificationBits,
		previousJustifiedCheckpoint: st.PreviousJustifiedCheckpoint,
		currentJustifiedCheckpoint:  st.CurrentJustifiedCheckpoint,
		finalizedCheckpoint:         st.FinalizedCheckpoint,
		inactivityScores:            st.InactivityScores,
		currentSyncCommittee:        st.CurrentSyncCommittee,
		nextSyncCommittee:           st.NextSyncCommittee,
	}
	b.initializeCaches()
	return b, nil
}

func (b *BeaconState) initializeCaches() {
	fieldCount := b.fieldCount()
	b.dirtyFields = make(map[types.FieldIndex]bool, fieldCount)
	b.dirtyIndices = make(map[types.FieldIndex][]uint64, fieldCount)
	b.stateFieldLeaves = make(map[types.FieldIndex]*fieldtrie.FieldTrie, fieldCount)
	b.rebuildTrie = make(map[types.FieldIndex]bool, fieldCount)
	b.sharedFieldReferences = make(map[types.FieldIndex]*stateutil.Reference, 11)
	b.valMapHandler = stateutil.NewValMapHandler(b.validators)

	for _, f := range b.fields() {
		b.dirtyFields[f] = true
	}
	for _, f := range trieBackedFields {
		b.dirtyIndices[f] = []uint64{}
		b.rebuildTrie[f] = true
		trie, err := fieldtrie.NewFieldTrie(f, fieldMap[f], nil, 0)
		if err != nil {
			// NewFieldTrie with nil elements never errors.
			panic(err)
		}
		b.stateFieldLeaves[f] = trie
	}

	b.sharedFieldReferences[types.BlockRoots] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.StateRoots] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.HistoricalRoots] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.Eth1DataVotes] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.Validators] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.Balances] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.RandaoMixes] = stateutil.NewRef(1)
	b.sharedFieldReferences[types.Slashings] = stateutil.NewRef(1)
	if b.version == version.Phase0 {
		b.sharedFieldReferences[types.PreviousEpochAttestations] = stateutil.NewRef(1)
		b.sharedFieldReferences[types.CurrentEpochAttestations] = stateutil.NewRef(1)
	} else {
		b.sharedFieldReferences[types.PreviousEpochParticipationBits] = stateutil.NewRef(1)
		b.sharedFieldReferences[types.CurrentEpochParticipationBits] = stateutil.NewRef(1)
		b.sharedFieldReferences[types.InactivityScores] = stateutil.NewRef(1)
	}
}

// Copy returns a deep copy of the beacon state.
func (b *BeaconState) Copy() *BeaconState {
	b.lock.RLock()
	defer b.lock.RUnlock()
	fieldCount := b.fieldCount()

	dst := &BeaconState{
		version: b.version,

		// Primitive types, safe to copy.
		genesisTime:      b.genesisTime,
		slot:             b.slot,
		eth1DepositIndex: b.eth1DepositIndex,

		// Large arrays, infrequently changed, constant size.
		blockRoots:  b.blockRoots,
		stateRoots:  b.stateRoots,
		randaoMixes: b.randaoMixes,
		slashings:   b.slashings,

		// Large arrays, increases over time.
		validators:                 b.validators,
		balances:                   b.balances,
		historicalRoots:            b.historicalRoots,
		eth1DataVotes:              b.eth1DataVotes,
		previousEpochAttestations:  b.previousEpochAttestations,
		currentEpochAttestations:   b.currentEpochAttestations,
		previousEpochParticipation: b.previousEpochParticipation,
		currentEpochParticipation:  b.currentEpochParticipation,
		inactivityScores:           b.inactivityScores,

		// Everything else, too small to be concerned about, constant size.
		genesisValidatorsRoot:       bytesutil.SafeCopyBytes(b.genesisValidatorsRoot),
		justificationBits:           bytesutil.SafeCopyBytes(b.justificationBits),
		fork:                        ethpb.CopyFork(b.fork),
		latestBlockHeader:           ethpb.CopyBeaconBlockHeader(b.latestBlockHeader),
		eth1Data:                    ethpb.CopyEth1Data(b.eth1Data),
		previousJustifiedCheckpoint: ethpb.CopyCheckpoint(b.previousJustifiedCheckpoint),
		currentJustifiedCheckpoint:  ethpb.CopyCheckpoint(b.currentJustifiedCheckpoint),
		finalizedCheckpoint:         ethpb.CopyCheckpoint(b.finalizedCheckpoint),
		currentSyncCommittee:        ethpb.CopySyncCommittee(b.currentSyncCommittee),
		nextSyncCommittee:           ethpb.CopySyncCommittee(b.nextSyncCommittee),

		dirtyFields:           make(map[types.FieldIndex]bool, fieldCount),
		dirtyIndices:          make(map[types.FieldIndex][]uint64, fieldCount),
		rebuildTrie:           make(map[types.FieldIndex]bool, fieldCount),
		stateFieldLeaves:      make(map[types.FieldIndex]*fieldtrie.FieldTrie, fieldCount),
		sharedFieldReferences: make(map[types.FieldIndex]*stateutil.Reference, 11),

		// Share the reference to validator index map.
		valMapHandler: b.valMapHandler.AddRef(),
	}

	for field, ref := range b.sharedFieldReferences {
		ref.AddRef()
		dst.sharedFieldReferences[field] = ref
	}

	// Copy the dirty-field, dirty-index and rebuild bookkeeping.
	for i := range b.dirtyFields {
		dst.dirtyFields[i] = true
	}
	for i := range b.dirtyIndices {
		indices := make([]uint64, len(b.dirtyIndices[i]))
		copy(indices, b.dirtyIndices[i])
		dst.dirtyIndices[i] = indices
	}
	for i := range b.rebuildTrie {
		dst.rebuildTrie[i] = b.rebuildTrie[i]
	}
	for fldIdx, fieldTrie := range b.stateFieldLeaves {
		dst.stateFieldLeaves[fldIdx] = fieldTrie
		if fieldTrie.FieldReference() != nil {
			fieldTrie.Lock()
			fieldTrie.FieldReference().AddRef()
			fieldTrie.Unlock()
		}
	}

	if b.merkleLayers != nil {
		dst.merkleLayers = make([][][]byte, len(b.merkleLayers))
		for i, layer := range b.merkleLayers {
			dst.merkleLayers[i] = make([][]byte, len(layer))
			for j, content := range layer {
				dst.merkleLayers[i][j] = make([]byte, len(content))
				copy(dst.merkleLayers[i][j], content)
			}
		}
	}

	stateCount.Inc()
	// Finalizer runs when dst is being destroyed in garbage collection.
	runtime.SetFinalizer(dst, finalizerCleanup)
	return dst
}

// HashTreeRoot of the beacon state retrieves the Merkle root of the trie
// representation of the beacon state based on the eth2 Simple Serialize specification.
func (b *BeaconState) HashTreeRoot(ctx context.Context) ([32]byte, error) {
	_, span := trace.StartSpan(ctx, "beaconState.HashTreeRoot")
	defer span.End()

	b.lock.Lock()
	defer b.lock.Unlock()
	if err := b.initializeMerkleLayers(ctx); err != nil {
		return [32]byte{}, err
	}
	if err := b.recomputeDirtyFields(ctx); err != nil {
		return [32]byte{}, err
	}
	return bytesutil.ToBytes32(b.merkleLayers[len(b.merkleLayers)-1][0]), nil
}

// Initializes the Merkle layers for the beacon state if they are empty.
//
// WARNING: Caller must acquire the mutex before using.
func (b *BeaconState) initializeMerkleLayers(ctx context.Context) error {
	if len(b.merkleLayers) > 0 {
		return nil
	}
	fieldRoots, err := b.computeFieldRoots(ctx)
	if err != nil {
		return err
	}
	b.merkleLayers = stateutil.Merkleize(fieldRoots)
	b.dirtyFields = make(map[types.FieldIndex]bool, b.fieldCount())
	return nil
}

// Recomputes the Merkle layers for the dirty fields in the state.
//
// WARNING: Caller must acquire the mutex before using.
func (b *BeaconState) recomputeDirtyFields(_ context.Context) error {
	dirty := make([]types.FieldIndex, 0, len(b.dirtyFields))
	for field := range b.dirtyFields {
		dirty = append(dirty, field)
	}
	sort.Slice(dirty, func(i, j int) bool { return dirty[i] < dirty[j] })
	for _, field := range dirty {
		root, err := b.rootSelector(field)
		if err != nil {
			return err
		}
		position, err := field.RealPosition(b.version)
		if err != nil {
			return err
		}
		b.merkleLayers[0][position] = root[:]
		b.recomputeRoot(position)
		delete(b.dirtyFields, field)
	}
	return nil
}

// recomputeRoot recomputes the root of the merkle layers from the leaf at
// the provided index up to the top of the trie.
func (b *BeaconState) recomputeRoot(idx int) {
	hashFunc := hash.CustomSHA256Hasher()
	layers := b.merkleLayers
	// The merkle tree structure looks as follows:
	// [[r1, r2, r3, r4], [parent1, parent2], [root]]
	// Using information about the index which changed, idx, we recompute
	// only its branch up the tree.
	currentIndex := idx
	root := b.merkleLayers[0][idx]
	for i := 0; i < len(layers)-1; i++ {
		isLeft := currentIndex%2 == 0
		neighborIdx := currentIndex ^ 1

		neighbor := make([]byte, 32)
		if neighborIdx < len(layers[i]) {
			neighbor = layers[i][neighborIdx]
		}
		if isLeft {
			parentHash := hashFunc(append(root, neighbor...))
			root = parentHash[:]
		} else {
			parentHash := hashFunc(append(neighbor, root...))
			root = parentHash[:]
		}
		parentIdx := currentIndex / 2
		if len(layers[i+1]) == 0 {
			layers[i+1] = append(layers[i+1], root)
		} else {
			layers[i+1][parentIdx] = root
		}
		currentIndex = parentIdx
	}
	b.merkleLayers = layers
}

func (b *BeaconState) rootSelector(field types.FieldIndex) ([32]byte, error) {
	switch field {
	case types.GenesisTime:
		return ssz.Uint64Root(b.genesisTime), nil
	case types.GenesisValidatorsRoot:
		return bytesutil.ToBytes32(b.genesisValidatorsRoot), nil
	case types.Slot:
		return ssz.Uint64Root(uint64(b.slot)), nil
	case types.Fork:
		return ssz.ForkRoot(b.fork)
	case types.LatestBlockHeader:
		return stateutil.BlockHeaderRoot(b.latestBlockHeader)
	case types.BlockRoots:
		if b.rebuildTrie[field] {
			return b.resetFieldTrie(field, b.blockRoots, uint64(fieldparams.BlockRootsLength))
		}
		return b.recomputeFieldTrie(field, b.blockRoots)
	case types.StateRoots:
		if b.rebuildTrie[field] {
			return b.resetFieldTrie(field, b.stateRoots, uint64(fieldparams.StateRootsLength))
		}
		return b.recomputeFieldTrie(field, b.stateRoots)
	case types.HistoricalRoots:
		return stateutil.HistoricalRootsRoot(b.historicalRoots)
	case types.Eth1Data:
		return stateutil.Eth1Root(ssz.DefaultHasherFunc(), b.eth1Data)
	case types.Eth1DataVotes:
		return stateutil.Eth1DataVotesRoot(b.eth1DataVotes)
	case types.Eth1DepositIndex:
		return ssz.Uint64Root(b.eth1DepositIndex), nil
	case types.Validators:
		if b.rebuildTrie[field] {
			return b.resetFieldTrie(field, b.validators, uint64(fieldparams.ValidatorRegistryLimit))
		}
		return b.recomputeFieldTrie(field, b.validators)
	case types.Balances:
		if b.rebuildTrie[field] {
			return b.resetFieldTrie(field, b.balances, stateutil.ValidatorLimitForBalancesChunks())
		}
		return b.recomputeFieldTrie(field, b.balances)
	case types.RandaoMixes:
		if b.rebuildTrie[field] {
			return b.resetFieldTrie(field, b.randaoMixes, uint64(fieldparams.RandaoMixesLength))
		}
		return b.recomputeFieldTrie(field, b.randaoMixes)
	case types.Slashings:
		return ssz.SlashingsRoot(b.slashings)
	case types.PreviousEpochAttestations:
		return stateutil.EpochAttestationsRoot(b.previousEpochAttestations)
	case types.CurrentEpochAttestations:
		return stateutil.EpochAttestationsRoot(b.currentEpochAttestations)
	case types.PreviousEpochParticipationBits:
		return stateutil.ParticipationBitsRoot(b.previousEpochParticipation)
	case types.CurrentEpochParticipationBits:
		return stateutil.ParticipationBitsRoot(b.currentEpochParticipation)
	case types.JustificationBits:
		return bytesutil.ToBytes32(b.justificationBits), nil
	case types.PreviousJustifiedCheckpoint:
		return ssz.CheckpointRoot(ssz.DefaultHasherFunc(), b.previousJustifiedCheckpoint)
	case types.CurrentJustifiedCheckpoint:
		return ssz.CheckpointRoot(ssz.DefaultHasherFunc(), b.currentJustifiedCheckpoint)
	case types.FinalizedCheckpoint:
		return ssz.CheckpointRoot(ssz.DefaultHasherFunc(), b.finalizedCheckpoint)
	case types.InactivityScores:
		return stateutil.Uint64ListRootWithRegistryLimit(b.inactivityScores)
	case types.CurrentSyncCommittee:
		return stateutil.SyncCommitteeRoot(b.currentSyncCommittee)
	case types.NextSyncCommittee:
		return stateutil.SyncCommitteeRoot(b.nextSyncCommittee)
	default:
		return [32]byte{}, errors.Errorf("unsupported field index: %s", field.String())
	}
}

func (b *BeaconState) recomputeFieldTrie(index types.FieldIndex, elements interface{}) ([32]byte, error) {
	fTrie := b.stateFieldLeaves[index]
	// We can't recompute the trie from an empty state, this can happen if
	// the field trie was never built for this field.
	if fTrie.Empty() {
		return b.resetFieldTrie(index, elements, fieldTrieLength(index))
	}
	if fTrie.FieldReference().Refs() > 1 {
		fTrie.Lock()
		defer fTrie.Unlock()
		fTrie.FieldReference().MinusRef()
		newTrie := fTrie.CopyTrie()
		b.stateFieldLeaves[index] = newTrie
		fTrie = newTrie
	}
	// remove duplicate indexes
	b.dirtyIndices[index] = sliceUniq(b.dirtyIndices[index])
	// sort indexes again
	sort.Slice(b.dirtyIndices[index], func(i int, j int) bool {
		return b.dirtyIndices[index][i] < b.dirtyIndices[index][j]
	})
	root, err := fTrie.RecomputeTrie(b.dirtyIndices[index], elements)
	if err != nil {
		return [32]byte{}, err
	}
	b.dirtyIndices[index] = []uint64{}
	return root, nil
}

func (b *BeaconState) resetFieldTrie(index types.FieldIndex, elements interface{}, length uint64) ([32]byte, error) {
	fTrie, err := fieldtrie.NewFieldTrie(index, fieldMap[index], elements, length)
	if err != nil {
		return [32]byte{}, err
	}
	b.stateFieldLeaves[index] = fTrie
	b.dirtyIndices[index] = []uint64{}
	delete(b.rebuildTrie, index)
	return fTrie.TrieRoot()
}

func fieldTrieLength(index types.FieldIndex) uint64 {
	switch index {
	case types.BlockRoots:
		return uint64(fieldparams.BlockRootsLength)
	case types.StateRoots:
		return uint64(fieldparams.StateRootsLength)
	case types.RandaoMixes:
		return uint64(fieldparams.RandaoMixesLength)
	case types.Validators:
		return uint64(fieldparams.ValidatorRegistryLimit)
	case types.Balances:
		return stateutil.ValidatorLimitForBalancesChunks()
	default:
		return 0
	}
}

func sliceUniq(s []uint64) []uint64 {
	seen := make(map[uint64]bool, len(s))
	result := make([]uint64, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}

func finalizerCleanup(b *BeaconState) {
	for field, v := range b.sharedFieldReferences {
		v.MinusRef()
		if trie, ok := b.stateFieldLeaves[field]; ok && trie.FieldReference() != nil {
			trie.FieldReference().MinusRef()
		}
	}
	for i := range b.dirtyFields {
		delete(b.dirtyFields, i)
	}
	for i := range b.rebuildTrie {
		delete(b.rebuildTrie, i)
	}
	for i := range b.dirtyIndices {
		delete(b.dirtyIndices, i)
	}
	for i := range b.sharedFieldReferences {
		delete(b.sharedFieldReferences, i)
	}
	for i := range b.stateFieldLeaves {
		delete(b.stateFieldLeaves, i)
	}
	stateCount.Sub(1)
}
