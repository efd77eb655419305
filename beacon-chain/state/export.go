package state

import (
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/runtime/version"
)

// InnerStateUnsafe returns the pointer value of the underlying
// beacon state container. It will return a *eth.BeaconState for a phase 0
// state and a *eth.BeaconStateAltair for an Altair state.
//
// WARNING: This method exposes the internal, mutable fields of the store.
func (b *BeaconState) InnerStateUnsafe() interface{} {
	if b == nil {
		return nil
	}
	if b.version == version.Altair {
		return b.altairInner()
	}
	return b.phase0Inner()
}

// CloneInnerState the beacon state into a full copy of its underlying container.
func (b *BeaconState) CloneInnerState() interface{} {
	if b == nil {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.version == version.Altair {
		return copyAltairState(b.altairInner())
	}
	return copyPhase0State(b.phase0Inner())
}

func (b *BeaconState) phase0Inner() *ethpb.BeaconState {
	return &ethpb.BeaconState{
		GenesisTime:                 b.genesisTime,
		GenesisValidatorsRoot:       b.genesisValidatorsRoot,
		Slot:                        b.slot,
		Fork:                        b.fork,
		LatestBlockHeader:           b.latestBlockHeader,
		BlockRoots:                  b.blockRoots,
		StateRoots:                  b.stateRoots,
		HistoricalRoots:             b.historicalRoots,
		Eth1Data:                    b.eth1Data,
		Eth1DataVotes:               b.eth1DataVotes,
		Eth1DepositIndex:            b.eth1DepositIndex,
		Validators:                  b.validators,
		Balances:                    b.balances,
		RandaoMixes:                 b.randaoMixes,
		Slashings:                   b.slashings,
		PreviousEpochAttestations:   b.previousEpochAttestations,
		CurrentEpochAttestations:    b.currentEpochAttestations,
		JustificationBits:           b.justificationBits,
		PreviousJustifiedCheckpoint: b.previousJustifiedCheckpoint,
		CurrentJustifiedCheckpoint:  b.currentJustifiedCheckpoint,
		FinalizedCheckpoint:         b.finalizedCheckpoint,
	}
}

func (b *BeaconState) altairInner() *ethpb.BeaconStateAltair {
	return &ethpb.BeaconStateAltair{
		GenesisTime:                 b.genesisTime,
		GenesisValidatorsRoot:       b.genesisValidatorsRoot,
		Slot:                        b.slot,
		Fork:                        b.fork,
		LatestBlockHeader:           b.latestBlockHeader,
		BlockRoots:                  b.blockRoots,
		StateRoots:                  b.stateRoots,
		HistoricalRoots:             b.historicalRoots,
		Eth1Data:                    b.eth1Data,
		Eth1DataVotes:               b.eth1DataVotes,
		Eth1DepositIndex:            b.eth1DepositIndex,
		Validators:                  b.validators,
		Balances:                    b.balances,
		RandaoMixes:                 b.randaoMixes,
		Slashings:                   b.slashings,
		PreviousEpochParticipation:  b.previousEpochParticipation,
		CurrentEpochParticipation:   b.currentEpochParticipation,
		JustificationBits:           b.justificationBits,
		PreviousJustifiedCheckpoint: b.previousJustifiedCheckpoint,
		CurrentJustifiedCheckpoint:  b.currentJustifiedCheckpoint,
		FinalizedCheckpoint:         b.finalizedCheckpoint,
		InactivityScores:            b.inactivityScores,
		CurrentSyncCommittee:        b.currentSyncCommittee,
		NextSyncCommittee:           b.nextSyncCommittee,
	}
}
