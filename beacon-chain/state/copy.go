package state

import (
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
)

func copyPhase0State(st *ethpb.BeaconState) *ethpb.BeaconState {
	return &ethpb.BeaconState{
		GenesisTime:                 st.GenesisTime,
		GenesisValidatorsRoot:       bytesutil.SafeCopyBytes(st.GenesisValidatorsRoot),
		Slot:                        st.Slot,
		Fork:                        ethpb.CopyFork(st.Fork),
		LatestBlockHeader:           ethpb.CopyBeaconBlockHeader(st.LatestBlockHeader),
		BlockRoots:                  bytesutil.SafeCopy2dBytes(st.BlockRoots),
		StateRoots:                  bytesutil.SafeCopy2dBytes(st.StateRoots),
		HistoricalRoots:             bytesutil.SafeCopy2dBytes(st.HistoricalRoots),
		Eth1Data:                    ethpb.CopyEth1Data(st.Eth1Data),
		Eth1DataVotes:               copyEth1DataVotes(st.Eth1DataVotes),
		Eth1DepositIndex:            st.Eth1DepositIndex,
		Validators:                  ethpb.CopyValidatorSlice(st.Validators),
		Balances:                    copyUint64Slice(st.Balances),
		RandaoMixes:                 bytesutil.SafeCopy2dBytes(st.RandaoMixes),
		Slashings:                   copyUint64Slice(st.Slashings),
		PreviousEpochAttestations:   ethpb.CopyPendingAttestationSlice(st.PreviousEpochAttestations),
		CurrentEpochAttestations:    ethpb.CopyPendingAttestationSlice(st.CurrentEpochAttestations),
		JustificationBits:           bytesutil.SafeCopyBytes(st.JustificationBits),
		PreviousJustifiedCheckpoint: ethpb.CopyCheckpoint(st.PreviousJustifiedCheckpoint),
		CurrentJustifiedCheckpoint:  ethpb.CopyCheckpoint(st.CurrentJustifiedCheckpoint),
		FinalizedCheckpoint:         ethpb.CopyCheckpoint(st.FinalizedCheckpoint),
	}
}

func copyAltairState(st *ethpb.BeaconStateAltair) *ethpb.BeaconStateAltair {
	return &ethpb.BeaconStateAltair{
		GenesisTime:                 st.GenesisTime,
		GenesisValidatorsRoot:       bytesutil.SafeCopyBytes(st.GenesisValidatorsRoot),
		Slot:                        st.Slot,
		Fork:                        ethpb.CopyFork(st.Fork),
		LatestBlockHeader:           ethpb.CopyBeaconBlockHeader(st.LatestBlockHeader),
		BlockRoots:                  bytesutil.SafeCopy2dBytes(st.BlockRoots),
		StateRoots:                  bytesutil.SafeCopy2dBytes(st.StateRoots),
		HistoricalRoots:             bytesutil.SafeCopy2dBytes(st.HistoricalRoots),
		Eth1Data:                    ethpb.CopyEth1Data(st.Eth1Data),
		Eth1DataVotes:               copyEth1DataVotes(st.Eth1DataVotes),
		Eth1DepositIndex:            st.Eth1DepositIndex,
		Validators:                  ethpb.CopyValidatorSlice(st.Validators),
		Balances:                    copyUint64Slice(st.Balances),
		RandaoMixes:                 bytesutil.SafeCopy2dBytes(st.RandaoMixes),
		Slashings:                   copyUint64Slice(st.Slashings),
		PreviousEpochParticipation:  bytesutil.SafeCopyBytes(st.PreviousEpochParticipation),
		CurrentEpochParticipation:   bytesutil.SafeCopyBytes(st.CurrentEpochParticipation),
		JustificationBits:           bytesutil.SafeCopyBytes(st.JustificationBits),
		PreviousJustifiedCheckpoint: ethpb.CopyCheckpoint(st.PreviousJustifiedCheckpoint),
		CurrentJustifiedCheckpoint:  ethpb.CopyCheckpoint(st.CurrentJustifiedCheckpoint),
		FinalizedCheckpoint:         ethpb.CopyCheckpoint(st.FinalizedCheckpoint),
		InactivityScores:            copyUint64Slice(st.InactivityScores),
		CurrentSyncCommittee:        ethpb.CopySyncCommittee(st.CurrentSyncCommittee),
		NextSyncCommittee:           ethpb.CopySyncCommittee(st.NextSyncCommittee),
	}
}

func copyEth1DataVotes(votes []*ethpb.Eth1Data) []*ethpb.Eth1Data {
	if votes == nil {
		return nil
	}
	res := make([]*ethpb.Eth1Data, len(votes))
	for i := 0; i < len(res); i++ {
		res[i] = ethpb.CopyEth1Data(votes[i])
	}
	return res
}

func copyUint64Slice(vals []uint64) []uint64 {
	if vals == nil {
		return nil
	}
	res := make([]uint64, len(vals))
	copy(res, vals)
	return res
}
