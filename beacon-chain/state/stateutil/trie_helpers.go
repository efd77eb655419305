package stateutil

import (
	"github.com/fredriksvantes/lodestar/crypto/hash"
	"github.com/fredriksvantes/lodestar/encoding/ssz"
	"github.com/pkg/errors"
)

// ReturnTrieLayer returns the representation of a merkle trie when
// provided with the elements of a fixed sized trie and the corresponding depth of
// it.
func ReturnTrieLayer(elements [][32]byte, length uint64) ([][]*[32]byte, error) {
	leaves := elements

	if len(leaves) == 1 {
		return [][]*[32]byte{{&leaves[0]}}, nil
	}
	hashLayer := leaves
	layers := make([][][32]byte, ssz.Depth(length)+1)
	layers[0] = hashLayer
	layers, _, err := merkleizeTrieLeaves(layers, hashLayer)
	if err != nil {
		return nil, err
	}
	refLayers := make([][]*[32]byte, len(layers))
	for i, val := range layers {
		refLayers[i] = make([]*[32]byte, len(val))
		for j, innerVal := range val {
			newVal := innerVal
			refLayers[i][j] = &newVal
		}
	}
	return refLayers, nil
}

// ReturnTrieLayerVariable returns the representation of a merkle trie when
// provided with the elements of a variable sized trie and the corresponding depth of
// it.
func ReturnTrieLayerVariable(elements [][32]byte, length uint64) [][]*[32]byte {
	depth := ssz.Depth(length)
	layers := make([][]*[32]byte, depth+1)
	// Return zerohash at depth
	if len(elements) == 0 {
		zerohash := ssz.ZeroHashes[depth]
		layers[len(layers)-1] = []*[32]byte{&zerohash}
		return layers
	}
	transformedLeaves := make([]*[32]byte, len(elements))
	for i := range elements {
		arr := elements[i]
		transformedLeaves[i] = &arr
	}
	layers[0] = transformedLeaves
	for i := 0; i < int(depth); i++ {
		currentLayer := layers[i]
		oddNodeLength := len(currentLayer)%2 == 1
		if oddNodeLength {
			zerohash := ssz.ZeroHashes[i]
			currentLayer = append(currentLayer, &zerohash)
		}
		updatedValues := make([]*[32]byte, 0, len(currentLayer)/2)
		for j := 0; j < len(currentLayer); j += 2 {
			concat := hash.Hash(append(currentLayer[j][:], currentLayer[j+1][:]...))
			updatedValues = append(updatedValues, &concat)
		}
		layers[i+1] = updatedValues
	}
	return layers
}

// RecomputeFromLayer recomputes specific branches of a fixed sized trie depending on the provided changed indexes.
func RecomputeFromLayer(changedLeaves [][32]byte, changedIdx []uint64, layer [][]*[32]byte) ([32]byte, [][]*[32]byte, error) {
	for i, idx := range changedIdx {
		layer[0][idx] = &changedLeaves[i]
	}

	if len(changedIdx) == 0 {
		return *layer[len(layer)-1][0], layer, nil
	}

	root := *layer[len(layer)-1][0]
	var err error
	for _, idx := range changedIdx {
		root, layer, err = recomputeRootFromLayer(int(idx), layer)
		if err != nil {
			return [32]byte{}, nil, err
		}
	}
	return root, layer, nil
}

// RecomputeFromLayerVariable recomputes specific branches of a variable sized trie depending on the provided changed indexes.
func RecomputeFromLayerVariable(changedLeaves [][32]byte, changedIdx []uint64, layer [][]*[32]byte) ([32]byte, [][]*[32]byte, error) {
	if len(changedIdx) == 0 {
		return *layer[len(layer)-1][0], layer, nil
	}

	for i, idx := range changedIdx {
		// Append to the layer if the changed index is
		// at the boundary of the trie.
		if idx == uint64(len(layer[0])) {
			newLeaf := changedLeaves[i]
			layer[0] = append(layer[0], &newLeaf)
			continue
		}
		if idx > uint64(len(layer[0])) {
			return [32]byte{}, nil, errors.Errorf("invalid index for trie, accessing index %d for trie of length %d", idx, len(layer[0]))
		}
		layer[0][idx] = &changedLeaves[i]
	}

	root := [32]byte{}
	var err error
	for _, idx := range changedIdx {
		root, layer, err = recomputeRootFromLayer(int(idx), layer)
		if err != nil {
			return [32]byte{}, nil, err
		}
	}
	return root, layer, nil
}

// recomputeRootFromLayer recomputes the root and the internal nodes along the
// merkle path of the provided leaf index.
func recomputeRootFromLayer(idx int, layers [][]*[32]byte) ([32]byte, [][]*[32]byte, error) {
	hashFunc := hash.CustomSHA256Hasher()
	currentIndex := idx
	for i := 0; i < len(layers)-1; i++ {
		if len(layers[i]) == 0 || currentIndex >= len(layers[i]) {
			return [32]byte{}, nil, errors.Errorf("invalid index for trie, accessing index %d in layer %d", currentIndex, i)
		}
		isLeft := currentIndex%2 == 0
		neighborIdx := currentIndex ^ 1

		neighbor := ssz.ZeroHashes[i]
		if neighborIdx < len(layers[i]) {
			neighbor = *layers[i][neighborIdx]
		}
		var parentHash [32]byte
		if isLeft {
			parentHash = hashFunc(append((*layers[i][currentIndex])[:], neighbor[:]...))
		} else {
			parentHash = hashFunc(append(neighbor[:], (*layers[i][currentIndex])[:]...))
		}

		parentIdx := currentIndex / 2
		// Update the cached layers at the parent index.
		if len(layers[i+1]) == 0 || parentIdx == len(layers[i+1]) {
			layers[i+1] = append(layers[i+1], &parentHash)
		} else {
			layers[i+1][parentIdx] = &parentHash
		}
		currentIndex = parentIdx
	}

	return *layers[len(layers)-1][0], layers, nil
}

// Merkleize 2-d array of bytes of the state's field roots into a
// full representation of the merkle layers, with the leaf layer padded
// with zero chunks to the next power of two.
func Merkleize(leaves [][]byte) [][][]byte {
	currentLayer := leaves
	for !isPowerOf2(len(currentLayer)) {
		currentLayer = append(currentLayer, make([]byte, 32))
	}
	layers := [][][]byte{currentLayer}
	hashFunc := hash.CustomSHA256Hasher()
	for len(currentLayer) > 1 {
		nextLayer := make([][]byte, len(currentLayer)/2)
		for i := 0; i < len(currentLayer); i += 2 {
			hashedChunk := hashFunc(append(currentLayer[i], currentLayer[i+1]...))
			nextLayer[i/2] = hashedChunk[:]
		}
		layers = append(layers, nextLayer)
		currentLayer = nextLayer
	}
	return layers
}

// AddInMixin describes a method from which a length mixin is added to the
// provided root.
func AddInMixin(root [32]byte, length uint64) ([32]byte, error) {
	return ssz.MixInLength32(root, length), nil
}

// merkleizeTrieLeaves merkleize the leaves of a trie and returns all the
// intermediate layers.
func merkleizeTrieLeaves(layers [][][32]byte, hashLayer [][32]byte) ([][][32]byte, [][32]byte, error) {
	// We keep track of the hash layers of a Merkle trie until we reach
	// the top layer of length 1, which contains the single root element.
	//        [Root]      -> Top layer has length 1.
	//    [E]       [F]   -> This layer has length 2.
	// [A]  [B]  [C]  [D] -> The bottom layer has length 4 (needs to be a power of two).
	i := 1
	for len(hashLayer) > 1 && i < len(layers) {
		if !isPowerOf2(len(hashLayer)) {
			return nil, nil, errors.Errorf("hash layer is a non power of 2: %d", len(hashLayer))
		}
		hashLayer = htrSublayer(hashLayer)
		layers[i] = hashLayer
		i++
	}
	return layers, hashLayer, nil
}

func htrSublayer(hashLayer [][32]byte) [][32]byte {
	layer := make([][32]byte, len(hashLayer)/2)
	hashFunc := hash.CustomSHA256Hasher()
	for i := 0; i < len(hashLayer)-1; i += 2 {
		hashedChunk := hashFunc(append(hashLayer[i][:], hashLayer[i+1][:]...))
		layer[i/2] = hashedChunk
	}
	return layer
}

func isPowerOf2(n int) bool {
	return n != 0 && (n&(n-1)) == 0
}
