package oracle

import "github.com/tapedrive-io/crankx/internal/equix"

// Validator is the stateless verification side of the puzzle capability.
// Unlike WorkOracle it holds no solver arena and is safe for concurrent use.
type Validator struct{}

// Verify checks that indices solve the puzzle for the given seed.
func (Validator) Verify(seed, indices []byte) error {
	return equix.Verify(seed, indices)
}
