package transition_test

import (
	"context"
	"testing"

	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/transition"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
	"github.com/fredriksvantes/lodestar/testing/util"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
)

func transitionTestState(t *testing.T, count uint64, slot types.Slot) *state.BeaconState {
	vals, bals := util.DeterministicValidators(count)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = slot
		return nil
	})
	require.NoError(t, err)
	return st
}

func TestProcessSlots_SlotBehind(t *testing.T) {
	helpers.ClearCache()
	st := transitionTestState(t, 4, 10)
	_, err := transition.ProcessSlots(context.Background(), st, 10)
	require.ErrorIs(t, err, transition.ErrSlotBehind)
	_, err = transition.ProcessSlots(context.Background(), st, 4)
	require.ErrorIs(t, err, transition.ErrSlotBehind)
}

func TestProcessSlot_UpdatesRootsAndHeader(t *testing.T) {
	helpers.ClearCache()
	st := transitionTestState(t, 4, 3)

	post, err := transition.ProcessSlot(context.Background(), st)
	require.NoError(t, err)

	// The latest block header's zeroed state root was patched with the
	// previous state root.
	header := post.LatestBlockHeader()
	zero := make([]byte, 32)
	assert.DeepNotEqual(t, zero, header.StateRoot)

	// The state root ring buffer holds the previous root at slot % N.
	root, err := post.StateRootAtIndex(3)
	require.NoError(t, err)
	assert.DeepEqual(t, header.StateRoot, root)

	// The block root ring buffer holds the patched header's root.
	wantBlockRoot, err := post.LatestBlockHeader().HashTreeRoot()
	require.NoError(t, err)
	gotBlockRoot, err := post.BlockRootAtIndex(3)
	require.NoError(t, err)
	assert.DeepEqual(t, wantBlockRoot[:], gotBlockRoot)
}

func TestProcessSlots_AdvancesThroughSkipSlots(t *testing.T) {
	helpers.ClearCache()
	transition.SkipSlotCache.Disable()
	defer transition.SkipSlotCache.Enable()

	st := transitionTestState(t, 4, 0)
	post, err := transition.ProcessSlots(context.Background(), st, 5)
	require.NoError(t, err)
	require.Equal(t, types.Slot(5), post.Slot())
}

func TestProcessSlots_EpochBoundaryRunsEpochProcessing(t *testing.T) {
	helpers.ClearCache()
	transition.SkipSlotCache.Disable()
	defer transition.SkipSlotCache.Enable()
	cfg := params.BeaconConfig()

	// Walk over the epoch 2 boundary so justification can move; every
	// validator misses everything, so balances must strictly decrease.
	st := transitionTestState(t, 8, cfg.SlotsPerEpoch*3-2)
	preBalances := st.Balances()

	post, err := transition.ProcessSlots(context.Background(), st, cfg.SlotsPerEpoch*3)
	require.NoError(t, err)
	require.Equal(t, cfg.SlotsPerEpoch*3, post.Slot())
	require.Equal(t, types.Epoch(3), coretime.CurrentEpoch(post))

	postBalances := post.Balances()
	for i := range postBalances {
		assert.Equal(t, true, postBalances[i] < preBalances[i], "validator %d was not penalized", i)
	}
	// Nobody justified anything.
	assert.Equal(t, types.Epoch(0), post.CurrentJustifiedCheckpoint().Epoch)
}

func TestProcessSlots_FullParticipationJustifies(t *testing.T) {
	helpers.ClearCache()
	transition.SkipSlotCache.Disable()
	defer transition.SkipSlotCache.Enable()
	cfg := params.BeaconConfig()
	count := uint64(64)

	vals, bals := util.DeterministicValidators(count)
	st, err := util.NewBeaconState(func(s *ethpb.BeaconState) error {
		s.Validators = vals
		s.Balances = bals
		s.Slot = cfg.SlotsPerEpoch*3 - 1
		return util.FillRootsNaturalOpt(s)
	})
	require.NoError(t, err)

	// Craft full-vote pending attestations for the previous and current epochs.
	prevAtts := fullEpochAttestations(t, st, 1)
	currAtts := fullEpochAttestations(t, st, 2)
	require.NoError(t, st.SetPreviousEpochAttestations(prevAtts))
	require.NoError(t, st.SetCurrentEpochAttestations(currAtts))

	post, err := transition.ProcessSlots(context.Background(), st, cfg.SlotsPerEpoch*3)
	require.NoError(t, err)

	// With a full current-epoch target vote the current epoch is justified.
	assert.Equal(t, types.Epoch(2), post.CurrentJustifiedCheckpoint().Epoch)
	assert.Equal(t, true, post.JustificationBits().BitAt(0))
	assert.Equal(t, true, post.JustificationBits().BitAt(1))

	// Ideal participation earns every validator a reward.
	for i, b := range post.Balances() {
		assert.Equal(t, true, b > cfg.MaxEffectiveBalance, "validator %d did not gain", i)
	}

	// Pending attestations rotated.
	curr, err := post.CurrentEpochAttestations()
	require.NoError(t, err)
	assert.Equal(t, 0, len(curr))
}

// fullEpochAttestations returns pending attestations voting the correct
// source, target and head with inclusion delay 1 for every committee of the
// given epoch.
func fullEpochAttestations(t *testing.T, st *state.BeaconState, epoch types.Epoch) []*ethpb.PendingAttestation {
	cfg := params.BeaconConfig()
	startSlot := types.Slot(uint64(epoch) * uint64(cfg.SlotsPerEpoch))
	targetRoot, err := helpers.BlockRoot(st, epoch)
	require.NoError(t, err)

	var atts []*ethpb.PendingAttestation
	for slot := startSlot; slot < startSlot+cfg.SlotsPerEpoch; slot++ {
		// An attestation for slot s can be included earliest at s+1; the head
		// root for the state's own slot is not yet in the ring buffer either.
		if slot+1 > st.Slot() {
			break
		}
		committeesPerSlot := helpers.SlotCommitteeCount(uint64(st.NumValidators()))
		for idx := types.CommitteeIndex(0); uint64(idx) < committeesPerSlot; idx++ {
			committee, err := helpers.BeaconCommitteeFromState(context.Background(), st, slot, idx)
			require.NoError(t, err)
			bits := bitfield.NewBitlist(uint64(len(committee)))
			for i := uint64(0); i < uint64(len(committee)); i++ {
				bits.SetBitAt(i, true)
			}
			headRoot, err := helpers.BlockRootAtSlot(st, slot)
			require.NoError(t, err)
			atts = append(atts, &ethpb.PendingAttestation{
				AggregationBits: bits,
				Data: &ethpb.AttestationData{
					Slot:            slot,
					CommitteeIndex:  idx,
					BeaconBlockRoot: headRoot,
					Source:          &ethpb.Checkpoint{Root: make([]byte, 32)},
					Target:          &ethpb.Checkpoint{Epoch: epoch, Root: targetRoot},
				},
				InclusionDelay: 1,
				ProposerIndex:  0,
			})
		}
	}
	return atts
}
