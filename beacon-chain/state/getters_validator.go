package state

import (
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/pkg/errors"
)

// ErrNilValidatorsInState returns when accessing validators in the state while the state has a
// nil slice for the validators field.
var ErrNilValidatorsInState = errors.New("state has nil validator slice")

// Validators participating in consensus on the beacon chain.
func (b *BeaconState) Validators() []*ethpb.Validator {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.validators == nil {
		return nil
	}
	return ethpb.CopyValidatorSlice(b.validators)
}

// ValidatorsReadOnly returns validators participating in consensus on the beacon chain. The
// returned validators are read only.
func (b *BeaconState) ValidatorsReadOnly() []ReadOnlyValidator {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.validators == nil {
		return nil
	}
	res := make([]ReadOnlyValidator, len(b.validators))
	for i := 0; i < len(res); i++ {
		res[i] = ReadOnlyValidator{validator: b.validators[i]}
	}
	return res
}

// ValidatorAtIndex is the validator at the provided index.
func (b *BeaconState) ValidatorAtIndex(idx types.ValidatorIndex) (*ethpb.Validator, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.validators == nil {
		return nil, ErrNilValidatorsInState
	}
	if uint64(len(b.validators)) <= uint64(idx) {
		return nil, errors.Errorf("index %d out of range", idx)
	}
	return ethpb.CopyValidator(b.validators[idx]), nil
}

// ValidatorAtIndexReadOnly is the validator at the provided index. This method
// doesn't clone the validator.
func (b *BeaconState) ValidatorAtIndexReadOnly(idx types.ValidatorIndex) (ReadOnlyValidator, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.validators == nil {
		return ReadOnlyValidator{}, ErrNilValidatorsInState
	}
	if uint64(len(b.validators)) <= uint64(idx) {
		return ReadOnlyValidator{}, errors.Errorf("index %d out of range", idx)
	}
	return NewValidator(b.validators[idx])
}

// ValidatorIndexByPubkey returns a given validator by its 48-byte public key.
func (b *BeaconState) ValidatorIndexByPubkey(key [48]byte) (types.ValidatorIndex, bool) {
	if b == nil || b.valMapHandler.IsNil() {
		return 0, false
	}
	b.lock.RLock()
	defer b.lock.RUnlock()
	numOfVals := len(b.validators)

	idx, ok := b.valMapHandler.ValidatorIndex(key)
	if ok && numOfVals <= int(idx) {
		return types.ValidatorIndex(0), false
	}
	return idx, ok
}

// PubkeyAtIndex returns the pubkey at the given
// validator index.
func (b *BeaconState) PubkeyAtIndex(idx types.ValidatorIndex) [48]byte {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if uint64(idx) >= uint64(len(b.validators)) {
		return [48]byte{}
	}
	if b.validators[idx] == nil {
		return [48]byte{}
	}
	var pubkey [48]byte
	copy(pubkey[:], b.validators[idx].PublicKey)
	return pubkey
}

// NumValidators returns the size of the validator registry.
func (b *BeaconState) NumValidators() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	return len(b.validators)
}

// ReadFromEveryValidator reads values from every validator and applies it to the provided function.
//
// WARNING: This method is potentially unsafe, as it exposes the actual validator registry.
func (b *BeaconState) ReadFromEveryValidator(f func(idx int, val ReadOnlyValidator) error) error {
	b.lock.RLock()
	validators := b.validators
	b.lock.RUnlock()

	for i, v := range validators {
		rov, err := NewValidator(v)
		if err != nil {
			return err
		}
		if err := f(i, rov); err != nil {
			return err
		}
	}
	return nil
}

// Balances of validators participating in consensus on the beacon chain.
func (b *BeaconState) Balances() []uint64 {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.balances == nil {
		return nil
	}
	res := make([]uint64, len(b.balances))
	copy(res, b.balances)
	return res
}

// BalanceAtIndex of validator with the provided index.
func (b *BeaconState) BalanceAtIndex(idx types.ValidatorIndex) (uint64, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.balances == nil {
		return 0, nil
	}
	if uint64(len(b.balances)) <= uint64(idx) {
		return 0, errors.Errorf("index %d out of range", idx)
	}
	return b.balances[idx], nil
}

// BalancesLength returns the length of the balances slice.
func (b *BeaconState) BalancesLength() int {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.balances == nil {
		return 0
	}
	return len(b.balances)
}
