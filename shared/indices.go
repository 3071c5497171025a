package shared

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// CanonicalIndices maps a raw puzzle solution to the one encoding its
// equivalence class hashes under. The puzzle accepts reorderings of index
// sub-pairs as equally valid, so hashing the raw bytes would let a prover
// grind the orderings of a single solution for a better digest without
// doing more puzzle work. Sorting the eight uint16 words ascending and
// re-emitting them little-endian picks one fixed representative; equal
// words encode identically, so no further tie-break is needed. Distinct
// index multisets sort to distinct encodings.
func CanonicalIndices(indices []byte) ([]byte, error) {
	if len(indices) != IndicesSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", ErrInvalidIndicesLength, IndicesSize, len(indices))
	}

	words := make([]uint16, NumIndices)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(indices[2*i:])
	}
	sort.Slice(words, func(i, j int) bool { return words[i] < words[j] })

	canonical := make([]byte, IndicesSize)
	for i, w := range words {
		binary.LittleEndian.PutUint16(canonical[2*i:], w)
	}
	return canonical, nil
}
