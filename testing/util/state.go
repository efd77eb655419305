// Package util defines utilities to generate deterministic beacon states and
// validator registries for testing.
package util

import (
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/prysmaticlabs/go-bitfield"
)

// FillRootsNaturalOpt is meant to be used as an option when calling NewBeaconState.
// It fills state and block roots with encoded natural numbers starting with 0,
// so that the root of slot i is distinguishable and derivable from i.
func FillRootsNaturalOpt(state *ethpb.BeaconState) error {
	rootsLen := uint64(params.BeaconConfig().SlotsPerHistoricalRoot)
	blockRoots := make([][]byte, rootsLen)
	stateRoots := make([][]byte, rootsLen)
	for i := uint64(0); i < rootsLen; i++ {
		r := make([]byte, 32)
		copy(r[24:], bytesutil.Bytes8(i))
		blockRoots[i] = r
		stateRoots[i] = r
	}
	state.BlockRoots = blockRoots
	state.StateRoots = stateRoots
	return nil
}

// NewBeaconState creates a beacon state with minimum marshalable fields.
func NewBeaconState(options ...func(state *ethpb.BeaconState) error) (*state.BeaconState, error) {
	seed := &ethpb.BeaconState{
		GenesisValidatorsRoot: make([]byte, 32),
		Fork: &ethpb.Fork{
			PreviousVersion: make([]byte, 4),
			CurrentVersion:  make([]byte, 4),
		},
		LatestBlockHeader: HydrateBeaconHeader(&ethpb.BeaconBlockHeader{}),
		BlockRoots:        filledByteSlice2D(uint64(params.BeaconConfig().SlotsPerHistoricalRoot), 32),
		StateRoots:        filledByteSlice2D(uint64(params.BeaconConfig().SlotsPerHistoricalRoot), 32),
		HistoricalRoots:   [][]byte{},
		Eth1Data: &ethpb.Eth1Data{
			DepositRoot: make([]byte, 32),
			BlockHash:   make([]byte, 32),
		},
		Eth1DataVotes:               []*ethpb.Eth1Data{},
		Validators:                  []*ethpb.Validator{},
		Balances:                    []uint64{},
		RandaoMixes:                 filledByteSlice2D(uint64(params.BeaconConfig().EpochsPerHistoricalVector), 32),
		Slashings:                   make([]uint64, params.BeaconConfig().EpochsPerSlashingsVector),
		PreviousEpochAttestations:   []*ethpb.PendingAttestation{},
		CurrentEpochAttestations:    []*ethpb.PendingAttestation{},
		JustificationBits:           bitfield.Bitvector4{0x0},
		PreviousJustifiedCheckpoint: &ethpb.Checkpoint{Root: make([]byte, 32)},
		CurrentJustifiedCheckpoint:  &ethpb.Checkpoint{Root: make([]byte, 32)},
		FinalizedCheckpoint:         &ethpb.Checkpoint{Root: make([]byte, 32)},
	}

	for _, opt := range options {
		err := opt(seed)
		if err != nil {
			return nil, err
		}
	}

	return state.InitializeFromPhase0(seed)
}

// NewBeaconStateAltair creates a beacon state with minimum marshalable fields.
func NewBeaconStateAltair(options ...func(state *ethpb.BeaconStateAltair) error) (*state.BeaconState, error) {
	pubkeys := make([][]byte, 512)
	for i := range pubkeys {
		pubkeys[i] = make([]byte, 48)
	}

	seed := &ethpb.BeaconStateAltair{
		GenesisValidatorsRoot: make([]byte, 32),
		Fork: &ethpb.Fork{
			PreviousVersion: make([]byte, 4),
			CurrentVersion:  make([]byte, 4),
		},
		LatestBlockHeader: HydrateBeaconHeader(&ethpb.BeaconBlockHeader{}),
		BlockRoots:        filledByteSlice2D(uint64(params.BeaconConfig().SlotsPerHistoricalRoot), 32),
		StateRoots:        filledByteSlice2D(uint64(params.BeaconConfig().SlotsPerHistoricalRoot), 32),
		HistoricalRoots:   [][]byte{},
		Eth1Data: &ethpb.Eth1Data{
			DepositRoot: make([]byte, 32),
			BlockHash:   make([]byte, 32),
		},
		Eth1DataVotes:               []*ethpb.Eth1Data{},
		Validators:                  []*ethpb.Validator{},
		Balances:                    []uint64{},
		RandaoMixes:                 filledByteSlice2D(uint64(params.BeaconConfig().EpochsPerHistoricalVector), 32),
		Slashings:                   make([]uint64, params.BeaconConfig().EpochsPerSlashingsVector),
		PreviousEpochParticipation:  []byte{},
		CurrentEpochParticipation:   []byte{},
		JustificationBits:           bitfield.Bitvector4{0x0},
		PreviousJustifiedCheckpoint: &ethpb.Checkpoint{Root: make([]byte, 32)},
		CurrentJustifiedCheckpoint:  &ethpb.Checkpoint{Root: make([]byte, 32)},
		FinalizedCheckpoint:         &ethpb.Checkpoint{Root: make([]byte, 32)},
		InactivityScores:            []uint64{},
		CurrentSyncCommittee: &ethpb.SyncCommittee{
			Pubkeys:         pubkeys,
			AggregatePubkey: make([]byte, 48),
		},
		NextSyncCommittee: &ethpb.SyncCommittee{
			Pubkeys:         pubkeys,
			AggregatePubkey: make([]byte, 48),
		},
	}

	for _, opt := range options {
		err := opt(seed)
		if err != nil {
			return nil, err
		}
	}

	return state.InitializeFromAltair(seed)
}

// HydrateBeaconHeader fills the required fields of a beacon block header with
// zero values if they are empty.
func HydrateBeaconHeader(h *ethpb.BeaconBlockHeader) *ethpb.BeaconBlockHeader {
	if h == nil {
		h = &ethpb.BeaconBlockHeader{}
	}
	if h.BodyRoot == nil {
		h.BodyRoot = make([]byte, 32)
	}
	if h.StateRoot == nil {
		h.StateRoot = make([]byte, 32)
	}
	if h.ParentRoot == nil {
		h.ParentRoot = make([]byte, 32)
	}
	return h
}

// DeterministicPubkey returns a deterministic 48 byte pubkey-shaped value for
// the given validator index. The key is not a valid BLS point and cannot be
// aggregated.
func DeterministicPubkey(idx uint64) []byte {
	h := hash.Hash(bytesutil.Bytes8(idx))
	return bytesutil.PadTo(h[:], 48)
}

// DeterministicValidators returns a registry of the given size where every
// validator is active from genesis with max effective balance, along with
// matching balances.
func DeterministicValidators(count uint64) ([]*ethpb.Validator, []uint64) {
	validators := make([]*ethpb.Validator, count)
	balances := make([]uint64, count)
	for i := uint64(0); i < count; i++ {
		validators[i] = &ethpb.Validator{
			PublicKey:                  DeterministicPubkey(i),
			WithdrawalCredentials:      make([]byte, 32),
			EffectiveBalance:           params.BeaconConfig().MaxEffectiveBalance,
			Slashed:                    false,
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:            0,
			ExitEpoch:                  params.BeaconConfig().FarFutureEpoch,
			WithdrawableEpoch:          params.BeaconConfig().FarFutureEpoch,
		}
		balances[i] = params.BeaconConfig().MaxEffectiveBalance
	}
	return validators, balances
}

func filledByteSlice2D(length, innerLen uint64) [][]byte {
	b := make([][]byte, length)
	for i := uint64(0); i < length; i++ {
		b[i] = make([]byte, innerLen)
	}
	return b
}
