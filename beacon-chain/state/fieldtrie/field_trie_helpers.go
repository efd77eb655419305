package fieldtrie

import (
	"github.com/fredriksvantes/lodestar/beacon-chain/state/stateutil"
	"github.com/fredriksvantes/lodestar/beacon-chain/state/types"
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/pkg/errors"
)

// ErrEmptyFieldTrie is returned when a trie root is requested from an
// uninitialized field trie.
var ErrEmptyFieldTrie = errors.New("empty field trie")

// fieldConverters converts the corresponding field and the provided elements to the
// appropriate roots.
func fieldConverters(field types.FieldIndex, indices []uint64, elements interface{}, convertAll bool) ([][32]byte, error) {
	switch field {
	case types.BlockRoots, types.StateRoots, types.RandaoMixes:
		val, ok := elements.([][]byte)
		if !ok {
			return nil, errors.Errorf("wanted type of %T but got %T", [][]byte{}, elements)
		}
		return stateutil.HandleByteArrays(val, indices, convertAll)
	case types.Validators:
		val, ok := elements.([]*ethpb.Validator)
		if !ok {
			return nil, errors.Errorf("wanted type of %T but got %T", []*ethpb.Validator{}, elements)
		}
		return stateutil.HandleValidatorSlice(val, indices, convertAll)
	case types.Balances:
		val, ok := elements.([]uint64)
		if !ok {
			return nil, errors.Errorf("wanted type of %T but got %T", []uint64{}, elements)
		}
		return stateutil.HandleBalanceSlice(val, indices, convertAll)
	default:
		return [][32]byte{}, errors.Errorf("got unsupported type of %T", elements)
	}
}

// validateElements checks that the provided elements are of the expected
// length for the given field.
func validateElements(field types.FieldIndex, elements interface{}, length uint64) error {
	if field == types.Balances {
		// Balances are compressed 4 to a chunk, the trie limit is in chunks.
		length *= 4
	}
	val := reflectLen(elements)
	if uint64(val) > length {
		return errors.Errorf("elements length is larger than expected for field %s: %d > %d", field.String(), val, length)
	}
	return nil
}

// validateIndices checks that the provided indices are within the bounds of
// the trie's capacity.
func (f *FieldTrie) validateIndices(idxs []uint64) error {
	length := f.length
	if f.dataType == types.CompressedArray {
		numOfElems, err := f.field.ElemsInChunk()
		if err != nil {
			return err
		}
		length *= numOfElems
	}
	for _, idx := range idxs {
		if idx >= length {
			return errors.Errorf("invalid index for field %s: %d >= length %d", f.field.String(), idx, length)
		}
	}
	return nil
}

func reflectLen(elements interface{}) int {
	switch val := elements.(type) {
	case [][]byte:
		return len(val)
	case []*ethpb.Validator:
		return len(val)
	case []uint64:
		return len(val)
	default:
		return 0
	}
}
