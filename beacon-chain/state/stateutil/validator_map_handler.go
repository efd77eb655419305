package stateutil

import (
	ethpb "github.com/fredriksvantes/lodestar/consensus-types/eth"
	"github.com/fredriksvantes/lodestar/encoding/bytesutil"
	types "github.com/prysmaticlabs/eth2-types"
)

// ValidatorMapHandler is a container to hold the map and a reference tracker for how many
// states shared this.
type ValidatorMapHandler struct {
	valIdxMap map[[48]byte]types.ValidatorIndex
	mapRef    *Reference
}

// NewValMapHandler returns a new validator map handler.
func NewValMapHandler(vals []*ethpb.Validator) *ValidatorMapHandler {
	return &ValidatorMapHandler{
		valIdxMap: ValidatorIndexMap(vals),
		mapRef:    NewRef(1),
	}
}

// AddRef copies the whole map and returns a map handler with the copied map.
func (v *ValidatorMapHandler) AddRef() *ValidatorMapHandler {
	v.mapRef.AddRef()
	return &ValidatorMapHandler{
		valIdxMap: v.valIdxMap,
		mapRef:    v.mapRef,
	}
}

// IsNil returns true if the underlying validator index map is nil.
func (v *ValidatorMapHandler) IsNil() bool {
	return v == nil || v.valIdxMap == nil
}

// ValidatorIndexMap builds a lookup map for quickly determining the index of
// a validator by their public key.
func ValidatorIndexMap(validators []*ethpb.Validator) map[[48]byte]types.ValidatorIndex {
	m := make(map[[48]byte]types.ValidatorIndex, len(validators))
	if validators == nil {
		return m
	}
	for idx, record := range validators {
		if record == nil {
			continue
		}
		key := bytesutil.ToBytes48(record.PublicKey)
		m[key] = types.ValidatorIndex(idx)
	}
	return m
}

// ValidatorIndex retrieves the validator index of the provided public key.
func (v *ValidatorMapHandler) ValidatorIndex(key [48]byte) (types.ValidatorIndex, bool) {
	idx, ok := v.valIdxMap[key]
	return idx, ok
}

// Set inserts the given public key and validator index into the map.
func (v *ValidatorMapHandler) Set(key [48]byte, index types.ValidatorIndex) {
	v.valIdxMap[key] = index
}

// MapCopy performs a copy of the whole map and returns a new map.
func (v *ValidatorMapHandler) MapCopy() *ValidatorMapHandler {
	m := make(map[[48]byte]types.ValidatorIndex, len(v.valIdxMap))
	for k, idx := range v.valIdxMap {
		m[k] = idx
	}
	v.mapRef.MinusRef()
	return &ValidatorMapHandler{
		valIdxMap: m,
		mapRef:    NewRef(1),
	}
}
