// Package state defines the actual beacon state store as a copy-on-write,
// incrementally-merkleized container. Unchanged subtrees are shared between
// copies, and only dirtied fields are rehashed when a new state root is
// requested.
package state

import (
	"sync"

	"github.com/fredriksvantes/lodestar/beacon-chain/state/fieldtrie"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/stateutil"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/types"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/runtime/version"
	eth2types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// BeaconState defines a struct containing utilities for the eth2 chain state, defining
// getters and setters for its respective values and helpful functions such as HashTreeRoot().
type BeaconState struct {
	version                     int
	genesisTime                 uint64
	genesisValidatorsRoot       []byte
	slot                        eth2types.Slot
	fork                        *ethpb.Fork
	latestBlockHeader           *ethpb.BeaconBlockHeader
	blockRoots                  [][]byte
	stateRoots                  [][]byte
	historicalRoots             [][]byte
	eth1Data                    *ethpb.Eth1Data
	eth1DataVotes               []*ethpb.Eth1Data
	eth1DepositIndex            uint64
	validators                  []*ethpb.Validator
	balances                    []uint64
	randaoMixes                 [][]byte
	slashings                   []uint64
	previousEpochAttestations   []*ethpb.PendingAttestation
	currentEpochAttestations    []*ethpb.PendingAttestation
	previousEpochParticipation  []byte
	currentEpochParticipation   []byte
	justificationBits           bitfield.Bitvector4
	previousJustifiedCheckpoint *ethpb.Checkpoint
	currentJustifiedCheckpoint  *ethpb.Checkpoint
	finalizedCheckpoint         *ethpb.Checkpoint
	inactivityScores            []uint64
	currentSyncCommittee        *ethpb.SyncCommittee
	nextSyncCommittee           *ethpb.SyncCommittee

	lock                  sync.RWMutex
	dirtyFields           map[types.FieldIndex]bool
	dirtyIndices          map[types.FieldIndex][]uint64
	stateFieldLeaves      map[types.FieldIndex]*fieldtrie.FieldTrie
	rebuildTrie           map[types.FieldIndex]bool
	valMapHandler         *stateutil.ValidatorMapHandler
	merkleLayers          [][][]byte
	sharedFieldReferences map[types.FieldIndex]*stateutil.Reference
}

// ErrNilInnerState is returned when the state is nil.
var ErrNilInnerState = errors.New("nil inner state")

// fieldMap keeps track of each field to its corresponding data type.
var fieldMap = map[types.FieldIndex]types.DataType{
	types.BlockRoots:  types.BasicArray,
	types.StateRoots:  types.BasicArray,
	types.RandaoMixes: types.BasicArray,
	types.Validators:  types.CompositeArray,
	types.Balances:    types.CompressedArray,
}

// trie-backed fields of the beacon state.
var trieBackedFields = []types.FieldIndex{
	types.BlockRoots,
	types.StateRoots,
	types.RandaoMixes,
	types.Validators,
	types.Balances,
}

func phase0Fields() []types.FieldIndex {
	return []types.FieldIndex{
		types.GenesisTime,
		types.GenesisValidatorsRoot,
		types.Slot,
		types.Fork,
		types.LatestBlockHeader,
		types.BlockRoots,
		types.StateRoots,
		types.HistoricalRoots,
		types.Eth1Data,
		types.Eth1DataVotes,
		types.Eth1DepositIndex,
		types.Validators,
		types.Balances,
		types.RandaoMixes,
		types.Slashings,
		types.PreviousEpochAttestations,
		types.CurrentEpochAttestations,
		types.JustificationBits,
		types.PreviousJustifiedCheckpoint,
		types.CurrentJustifiedCheckpoint,
		types.FinalizedCheckpoint,
	}
}

func altairFields() []types.FieldIndex {
	return []types.FieldIndex{
		types.GenesisTime,
		types.GenesisValidatorsRoot,
		types.Slot,
		types.Fork,
		types.LatestBlockHeader,
		types.BlockRoots,
		types.StateRoots,
		types.HistoricalRoots,
		types.Eth1Data,
		types.Eth1DataVotes,
		types.Eth1DepositIndex,
		types.Validators,
		types.Balances,
		types.RandaoMixes,
		types.Slashings,
		types.PreviousEpochParticipationBits,
		types.CurrentEpochParticipationBits,
		types.JustificationBits,
		types.PreviousJustifiedCheckpoint,
		types.CurrentJustifiedCheckpoint,
		types.FinalizedCheckpoint,
		types.InactivityScores,
		types.CurrentSyncCommittee,
		types.NextSyncCommittee,
	}
}

func (b *BeaconState) fields() []types.FieldIndex {
	if b.version == version.Altair {
		return altairFields()
	}
	return phase0Fields()
}

func (b *BeaconState) fieldCount() int {
	if b.version == version.Altair {
		return params.BeaconConfig().BeaconStateAltairFieldCount
	}
	return params.BeaconConfig().BeaconStateFieldCount
}

// Version of the beacon state. This method is strictly meant to be used without a lock
// internally.
func (b *BeaconState) Version() int {
	return b.version
}

// IsNil checks if the state and the underlying validator registry are nil.
func (b *BeaconState) IsNil() bool {
	return b == nil || b.validators == nil
}
