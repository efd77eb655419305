package altair

import (
	"bytes"
	"context"
	"sort"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/math"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// UpgradeToAltair updates input state to return the version Altair state.
//
// Spec code:
//
//	def upgrade_to_altair(pre: phase0.BeaconState) -> BeaconState:
//	  epoch = phase0.get_current_epoch(pre)
//	  post = BeaconState(
//	      ...
//	      # Participation
//	      previous_epoch_participation=[ParticipationFlags(0b0000_0000) for _ in range(len(pre.validators))],
//	      current_epoch_participation=[ParticipationFlags(0b0000_0000) for _ in range(len(pre.validators))],
//	      # Inactivity
//	      inactivity_scores=[uint64(0) for _ in range(len(pre.validators))],
//	  )
//	  # Fill in previous epoch participation from the pre state's pending attestations
//	  translate_participation(post, pre.previous_epoch_attestations)
//
//	  # Fill in sync committees
//	  # Note: A duplicate committee is assigned for the current and next committee at the fork boundary
//	  post.current_sync_committee = get_next_sync_committee(post)
//	  post.next_sync_committee = get_next_sync_committee(post)
//	  return post
func UpgradeToAltair(ctx context.Context, st *state.BeaconState) (*state.BeaconState, error) {
	epoch := coretime.CurrentEpoch(st)

	pre, ok := st.InnerStateUnsafe().(*ethpb.BeaconState)
	if !ok {
		return nil, errors.New("state is not a phase 0 state")
	}
	prevEpochAtts := pre.PreviousEpochAttestations

	numValidators := st.NumValidators()
	s := &ethpb.BeaconStateAltair{
		GenesisTime:           pre.GenesisTime,
		GenesisValidatorsRoot: pre.GenesisValidatorsRoot,
		Slot:                  pre.Slot,
		Fork: &ethpb.Fork{
			PreviousVersion: pre.Fork.CurrentVersion,
			CurrentVersion:  params.BeaconConfig().AltairForkVersion,
			Epoch:           epoch,
		},
		LatestBlockHeader:           pre.LatestBlockHeader,
		BlockRoots:                  pre.BlockRoots,
		StateRoots:                  pre.StateRoots,
		HistoricalRoots:             pre.HistoricalRoots,
		Eth1Data:                    pre.Eth1Data,
		Eth1DataVotes:               pre.Eth1DataVotes,
		Eth1DepositIndex:            pre.Eth1DepositIndex,
		Validators:                  pre.Validators,
		Balances:                    pre.Balances,
		RandaoMixes:                 pre.RandaoMixes,
		Slashings:                   pre.Slashings,
		PreviousEpochParticipation:  make([]byte, numValidators),
		CurrentEpochParticipation:   make([]byte, numValidators),
		JustificationBits:           pre.JustificationBits,
		PreviousJustifiedCheckpoint: pre.PreviousJustifiedCheckpoint,
		CurrentJustifiedCheckpoint:  pre.CurrentJustifiedCheckpoint,
		FinalizedCheckpoint:         pre.FinalizedCheckpoint,
		InactivityScores:            make([]uint64, numValidators),
	}

	newState, err := state.InitializeFromAltairUnsafe(s)
	if err != nil {
		return nil, err
	}

	newState, err = TranslateParticipation(ctx, newState, prevEpochAtts)
	if err != nil {
		return nil, errors.Wrap(err, "could not translate participation")
	}

	committee, err := NextSyncCommittee(ctx, newState)
	if err != nil {
		return nil, errors.Wrap(err, "could not get sync committee")
	}
	if err := newState.SetCurrentSyncCommittee(committee); err != nil {
		return nil, err
	}
	if err := newState.SetNextSyncCommittee(ethpb.CopySyncCommittee(committee)); err != nil {
		return nil, err
	}
	return newState, nil
}

// TranslateParticipation translates pending attestations into participation bits, then inserts the bits into beacon state.
// This is helper function for UpgradeToAltair.
//
// Spec code:
//
//	def translate_participation(state: BeaconState, pending_attestations: Sequence[phase0.PendingAttestation]) -> None:
//	  for attestation in pending_attestations:
//	      data = attestation.data
//	      inclusion_delay = attestation.inclusion_delay
//	      # Translate attestation inclusion info to participation flags
//	      participation_flag_indices = get_attestation_participation_flag_indices(state, data, inclusion_delay)
//
//	      # Apply flags to all attesting validators
//	      epoch_participation = state.previous_epoch_participation
//	      for index in get_attesting_indices(state, data, attestation.aggregation_bits):
//	          for flag_index in participation_flag_indices:
//	              epoch_participation[index] = add_flag(epoch_participation[index], flag_index)
func TranslateParticipation(ctx context.Context, st *state.BeaconState, atts []*ethpb.PendingAttestation) (*state.BeaconState, error) {
	epochParticipation, err := st.PreviousEpochParticipation()
	if err != nil {
		return nil, err
	}

	for _, att := range atts {
		participatedFlags, err := AttestationParticipationFlagIndices(st, att.Data, att.InclusionDelay)
		if err != nil {
			return nil, err
		}

		committee, err := helpers.BeaconCommitteeFromState(ctx, st, att.Data.Slot, att.Data.CommitteeIndex)
		if err != nil {
			return nil, err
		}
		indices, err := attestingIndices(att.AggregationBits, committee)
		if err != nil {
			return nil, err
		}

		cfg := params.BeaconConfig()
		sourceFlagIndex := cfg.TimelySourceFlagIndex
		targetFlagIndex := cfg.TimelyTargetFlagIndex
		headFlagIndex := cfg.TimelyHeadFlagIndex
		for _, index := range indices {
			if index >= uint64(len(epochParticipation)) {
				return nil, errors.Errorf("index %d exceeds participation length %d", index, len(epochParticipation))
			}
			if participatedFlags[sourceFlagIndex] {
				epochParticipation[index], err = AddValidatorFlag(epochParticipation[index], sourceFlagIndex)
				if err != nil {
					return nil, err
				}
			}
			if participatedFlags[targetFlagIndex] {
				epochParticipation[index], err = AddValidatorFlag(epochParticipation[index], targetFlagIndex)
				if err != nil {
					return nil, err
				}
			}
			if participatedFlags[headFlagIndex] {
				epochParticipation[index], err = AddValidatorFlag(epochParticipation[index], headFlagIndex)
				if err != nil {
					return nil, err
				}
			}
		}
	}
	if err := st.SetPreviousParticipationBits(epochParticipation); err != nil {
		return nil, err
	}
	return st, nil
}

// AttestationParticipationFlagIndices retrieves a map of attestation scoring based on Altair's participation flag indices.
// This is used to facilitate process attestation during state transition and during upgrade to altair state.
//
// Spec code:
//
//	def get_attestation_participation_flag_indices(state: BeaconState,
//	                                             data: AttestationData,
//	                                             inclusion_delay: uint64) -> Sequence[int]:
//	  """
//	  Return the flag indices that are satisfied by an attestation.
//	  """
//	  if data.target.epoch == get_current_epoch(state):
//	      justified_checkpoint = state.current_justified_checkpoint
//	  else:
//	      justified_checkpoint = state.previous_justified_checkpoint
//
//	  # Matching roots
//	  is_matching_source = data.source == justified_checkpoint
//	  is_matching_target = is_matching_source and data.target.root == get_block_root(state, data.target.epoch)
//	  is_matching_head = is_matching_target and data.beacon_block_root == get_block_root_at_slot(state, data.slot)
//	  assert is_matching_source
//
//	  participation_flag_indices = []
//	  if is_matching_source and inclusion_delay <= integer_squareroot(SLOTS_PER_EPOCH):
//	      participation_flag_indices.append(TIMELY_SOURCE_FLAG_INDEX)
//	  if is_matching_target and inclusion_delay <= SLOTS_PER_EPOCH:
//	      participation_flag_indices.append(TIMELY_TARGET_FLAG_INDEX)
//	  if is_matching_head and inclusion_delay == MIN_ATTESTATION_INCLUSION_DELAY:
//	      participation_flag_indices.append(TIMELY_HEAD_FLAG_INDEX)
//
//	  return participation_flag_indices
func AttestationParticipationFlagIndices(beaconState *state.BeaconState, data *ethpb.AttestationData, delay types.Slot) (map[uint8]bool, error) {
	currEpoch := coretime.CurrentEpoch(beaconState)
	var justifiedCheckpt *ethpb.Checkpoint
	if data.Target.Epoch == currEpoch {
		justifiedCheckpt = beaconState.CurrentJustifiedCheckpoint()
	} else {
		justifiedCheckpt = beaconState.PreviousJustifiedCheckpoint()
	}

	matchedSrc, err := matchingSource(data, justifiedCheckpt)
	if err != nil {
		return nil, err
	}
	if !matchedSrc {
		return nil, errors.New("source epoch does not match")
	}

	matchedTgt, err := matchingTarget(beaconState, data)
	if err != nil {
		return nil, err
	}
	matchedHead := false
	if matchedTgt {
		matchedHead, err = matchingHead(beaconState, data)
		if err != nil {
			return nil, err
		}
	}

	participatedFlags := make(map[uint8]bool)
	cfg := params.BeaconConfig()
	sourceFlagIndex := cfg.TimelySourceFlagIndex
	targetFlagIndex := cfg.TimelyTargetFlagIndex
	headFlagIndex := cfg.TimelyHeadFlagIndex
	slotsPerEpoch := cfg.SlotsPerEpoch
	sqtRootSlots := types.Slot(math.IntegerSquareRoot(uint64(slotsPerEpoch)))
	if matchedSrc && delay <= sqtRootSlots {
		participatedFlags[sourceFlagIndex] = true
	}
	if matchedTgt && delay <= slotsPerEpoch {
		participatedFlags[targetFlagIndex] = true
	}
	if matchedHead && delay == cfg.MinAttestationInclusionDelay {
		participatedFlags[headFlagIndex] = true
	}
	return participatedFlags, nil
}

func matchingSource(data *ethpb.AttestationData, checkpt *ethpb.Checkpoint) (bool, error) {
	if data == nil || data.Source == nil || checkpt == nil {
		return false, errors.New("nil or missing attestation data source")
	}
	return data.Source.Epoch == checkpt.Epoch && bytes.Equal(data.Source.Root, checkpt.Root), nil
}

func matchingTarget(beaconState *state.BeaconState, data *ethpb.AttestationData) (bool, error) {
	r, err := helpers.BlockRoot(beaconState, data.Target.Epoch)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data.Target.Root, r), nil
}

func matchingHead(beaconState *state.BeaconState, data *ethpb.AttestationData) (bool, error) {
	r, err := helpers.BlockRootAtSlot(beaconState, data.Slot)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data.BeaconBlockRoot, r), nil
}

// attestingIndices returns the attesting participant indices for the given
// aggregation bits and committee.
func attestingIndices(bf bitfield.Bitlist, committee []types.ValidatorIndex) ([]uint64, error) {
	if bf.Len() != uint64(len(committee)) {
		return nil, errors.Errorf("bitfield length %d is not equal to committee length %d", bf.Len(), len(committee))
	}
	indices := make([]uint64, 0, bf.Count())
	for _, idx := range bf.BitIndices() {
		if idx < len(committee) {
			indices = append(indices, uint64(committee[idx]))
		}
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices, nil
}
