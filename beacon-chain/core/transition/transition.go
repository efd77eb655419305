// Package transition implements the whole state transition
// function which consists of per slot and per-epoch transitions.
package transition

import (
	"bytes"
	"context"
	"time"

	"github.com/fredriksvantes/lodestar/beacon-chain/cache"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/altair"
	e "github.com/fredriksvantes/lodestar/beacon-chain/core/epoch"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/epoch/precompute"
	"github.com/fredriksvantes/lodestar/beacon-chain/core/helpers"
	coretime "github.com/fredriksvantes/lodestar/beacon-chain/core/time"
	"github.com/fredriksvantes/lodestar/beacon-chain/state"
	"github.com/fredriksvantes/lodestar/config/params"
	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	"github.com/fredriksvantes/lodestar/monitoring/tracing"
	"github.com/fredriksvantes/lodestar/runtime/version"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// SkipSlotCache exists for the unlikely scenario that is a large gap between the head state and
// the current slot. If the beacon chain were ever to be stalled for several epochs, it may be
// difficult or impossible to compute the appropriate beacon state for assignments within a
// reasonable amount of time.
var SkipSlotCache = cache.NewSkipSlotCache()

// ProcessSlot happens every slot and focuses on the slot counter and block roots record updates.
// It happens regardless if there's an incoming block or not.
//
// Spec pseudocode definition:
//
//	def process_slot(state: BeaconState) -> None:
//	  # Cache state root
//	  previous_state_root = hash_tree_root(state)
//	  state.state_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_state_root
//	  # Cache latest block header state root
//	  if state.latest_block_header.state_root == Bytes32():
//	      state.latest_block_header.state_root = previous_state_root
//	  # Cache block root
//	  previous_block_root = hash_tree_root(state.latest_block_header)
//	  state.block_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_block_root
func ProcessSlot(ctx context.Context, st *state.BeaconState) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlot")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("slot", int64(st.Slot()))) // lint:ignore uintcast -- This is OK for tracing.

	prevStateRoot, err := st.HashTreeRoot(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.UpdateStateRootAtIndex(
		uint64(st.Slot()%params.BeaconConfig().SlotsPerHistoricalRoot),
		prevStateRoot,
	); err != nil {
		return nil, err
	}

	zeroHash := params.BeaconConfig().ZeroHash
	// Cache latest block header state root.
	header := st.LatestBlockHeader()
	if header.StateRoot == nil || bytes.Equal(header.StateRoot, zeroHash[:]) {
		header.StateRoot = prevStateRoot[:]
		if err := st.SetLatestBlockHeader(header); err != nil {
			return nil, err
		}
	}
	prevBlockRoot, err := st.LatestBlockHeader().HashTreeRoot()
	if err != nil {
		tracing.AnnotateError(span, err)
		return nil, errors.Wrap(err, "could not determine prev block root")
	}
	// Cache the block root.
	if err := st.UpdateBlockRootAtIndex(
		uint64(st.Slot()%params.BeaconConfig().SlotsPerHistoricalRoot),
		prevBlockRoot,
	); err != nil {
		return nil, err
	}
	return st, nil
}

// ProcessSlotsIfPossible executes ProcessSlots on the input state when target slot is above the state's slot.
// Otherwise, it returns the input state unchanged.
func ProcessSlotsIfPossible(ctx context.Context, st *state.BeaconState, targetSlot types.Slot) (*state.BeaconState, error) {
	if targetSlot > st.Slot() {
		return ProcessSlots(ctx, st, targetSlot)
	}
	return st, nil
}

// ProcessSlots process through skip slots and apply epoch transition when it's needed.
//
// Spec pseudocode definition:
//
//	def process_slots(state: BeaconState, slot: Slot) -> None:
//	  assert state.slot < slot
//	  while state.slot < slot:
//	      process_slot(state)
//	      # Process epoch on the start slot of the next epoch
//	      if (state.slot + 1) % SLOTS_PER_EPOCH == 0:
//	          process_epoch(state)
//	      state.slot = Slot(state.slot + 1)
func ProcessSlots(ctx context.Context, st *state.BeaconState, slot types.Slot) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlots")
	defer span.End()
	if st == nil || st.IsNil() {
		return nil, errors.New("nil state")
	}
	span.AddAttributes(trace.Int64Attribute("slots", int64(slot)-int64(st.Slot()))) // lint:ignore uintcast -- This is OK for tracing.

	// The block must have a higher slot than parent state.
	if st.Slot() >= slot {
		err := errors.Wrapf(ErrSlotBehind, "expected state.slot %d < slot %d", st.Slot(), slot)
		tracing.AnnotateError(span, err)
		return nil, err
	}

	highestSlot := st.Slot()
	key, err := cacheKey(ctx, st)
	if err != nil {
		return nil, err
	}

	// Restart from cached value, if one exists.
	cachedState, err := SkipSlotCache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if cachedState != nil && !cachedState.IsNil() && cachedState.Slot() < slot {
		highestSlot = cachedState.Slot()
		st = cachedState
	}
	if err := SkipSlotCache.MarkInProgress(key); errors.Is(err, cache.ErrAlreadyInProgress) {
		cachedState, err = SkipSlotCache.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if cachedState != nil && !cachedState.IsNil() && cachedState.Slot() < slot {
			highestSlot = cachedState.Slot()
			st = cachedState
		}
	} else if err != nil {
		return nil, err
	}
	defer func() {
		if err := SkipSlotCache.MarkNotInProgress(key); err != nil {
			log.WithError(err).Error("Failed to mark skip slot no longer in progress")
		}
	}()

	for st.Slot() < slot {
		if ctx.Err() != nil {
			tracing.AnnotateError(span, ctx.Err())
			// Cache last best value.
			if highestSlot < st.Slot() {
				if err := SkipSlotCache.Put(ctx, key, st); err != nil {
					log.WithError(err).Error("Failed to put skip slot cache value")
				}
			}
			return nil, ctx.Err()
		}
		st, err = ProcessSlot(ctx, st)
		if err != nil {
			tracing.AnnotateError(span, err)
			return nil, errors.Wrap(err, "could not process slot")
		}
		if coretime.CanProcessEpoch(st) {
			switch st.Version() {
			case version.Phase0:
				st, err = ProcessEpochPrecompute(ctx, st)
				if err != nil {
					tracing.AnnotateError(span, err)
					return nil, errors.Wrap(err, "could not process epoch with optimizations")
				}
			case version.Altair:
				if st.NumValidators() != st.BalancesLength() {
					err := errors.Wrap(ErrInvariantViolation, "validator and balance registries are different lengths")
					tracing.AnnotateError(span, err)
					return nil, err
				}
				st, err = altair.ProcessEpoch(ctx, st)
				if err != nil {
					tracing.AnnotateError(span, err)
					return nil, errors.Wrap(err, "could not process epoch")
				}
			default:
				return nil, errors.Wrapf(ErrForkMismatch, "unknown state version %s", version.String(st.Version()))
			}
			// Warm the shuffling and proposer caches for the upcoming epoch,
			// the seed-keyed analogue of rotating the epoch caches forward.
			if err := helpers.UpdateCommitteeCache(ctx, st, coretime.NextEpoch(st)); err != nil {
				log.WithError(err).Error("Failed to update committee cache")
			}
		}
		if err := st.SetSlot(st.Slot() + 1); err != nil {
			tracing.AnnotateError(span, err)
			return nil, errors.Wrap(err, "failed to increment state slot")
		}

		if coretime.CanUpgradeToAltair(st.Slot()) {
			st, err = altair.UpgradeToAltair(ctx, st)
			if err != nil {
				tracing.AnnotateError(span, err)
				return nil, err
			}
			log.WithField("slot", st.Slot()).Info("Upgraded state to Altair")
		}
	}

	if highestSlot < st.Slot() {
		if err := SkipSlotCache.Put(ctx, key, st); err != nil {
			log.WithError(err).Error("Failed to put skip slot cache value")
		}
	}

	return st, nil
}

// ProcessEpochPrecompute describes the per epoch operations that are performed on the beacon state.
// It's optimized by pre computing validator attested info and epoch total/attested balances upfront.
func ProcessEpochPrecompute(ctx context.Context, st *state.BeaconState) (*state.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessEpochPrecompute")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("epoch", int64(coretime.CurrentEpoch(st)))) // lint:ignore uintcast -- This is OK for tracing.

	if st == nil || st.IsNil() {
		return nil, errors.New("nil state")
	}
	if st.NumValidators() != st.BalancesLength() {
		return nil, errors.Wrap(ErrInvariantViolation, "validator and balance registries are different lengths")
	}
	defer func(t time.Time) {
		processEpochTime.Observe(float64(time.Since(t).Milliseconds()))
	}(time.Now())

	vp, bp, err := precompute.New(ctx, st)
	if err != nil {
		return nil, err
	}
	vp, bp, err = precompute.ProcessAttestations(ctx, st, vp, bp)
	if err != nil {
		return nil, err
	}

	st, err = precompute.ProcessJustificationAndFinalizationPreCompute(st, bp)
	if err != nil {
		return nil, errors.Wrap(err, "could not process justification")
	}

	st, err = precompute.ProcessRewardsAndPenaltiesPrecompute(st, bp, vp, precompute.AttestationsDelta, precompute.ProposersDelta)
	if err != nil {
		return nil, errors.Wrap(err, "could not process rewards and penalties")
	}

	st, err = e.ProcessRegistryUpdates(ctx, st)
	if err != nil {
		return nil, errors.Wrap(err, "could not process registry updates")
	}

	err = precompute.ProcessSlashingsPrecompute(st, bp)
	if err != nil {
		return nil, err
	}

	st, err = e.ProcessFinalUpdates(st)
	if err != nil {
		return nil, errors.Wrap(err, "could not process final updates")
	}
	return st, nil
}

// cacheKey computes the skip slot cache key for a given state, which is
// keyed by the latest block header root along with the state slot.
func cacheKey(ctx context.Context, st *state.BeaconState) ([32]byte, error) {
	_, span := trace.StartSpan(ctx, "core.state.cacheKey")
	defer span.End()

	bh := st.LatestBlockHeader()
	if bh == nil {
		return [32]byte{}, errors.New("state does not have a latest block header")
	}
	r, err := bh.HashTreeRoot()
	if err != nil {
		return [32]byte{}, err
	}
	return hash.Hash(append(bytesutil.Bytes8(uint64(st.Slot())), r[:]...)), nil
}
