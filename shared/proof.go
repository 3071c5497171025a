package shared

import "fmt"

// ProofSize is the size of a serialized proof: digest || nonce || indices.
const ProofSize = DigestSize + NonceSize + IndicesSize

// Proof is the result of one successful solve attempt. Indices carry the
// puzzle solution in the order the solver emitted it; verifiers need them
// to re-run the puzzle's validity predicate.
type Proof struct {
	Nonce   []byte
	Indices []byte
	Digest  []byte
}

// Difficulty returns the work score of the proof: the number of leading
// zero bits of its digest.
func (p *Proof) Difficulty() uint {
	return LeadingZeroBits(p.Digest)
}

// Bytes serializes the proof as digest || nonce || indices.
func (p *Proof) Bytes() []byte {
	b := make([]byte, ProofSize)
	copy(b, p.Digest)
	copy(b[DigestSize:], p.Nonce)
	copy(b[DigestSize+NonceSize:], p.Indices)
	return b
}

// ProofFromBytes deserializes a proof serialized with Bytes.
func ProofFromBytes(b []byte) (*Proof, error) {
	if len(b) != ProofSize {
		return nil, fmt.Errorf("invalid proof size; expected: %d, given: %d", ProofSize, len(b))
	}
	p := &Proof{
		Digest:  make([]byte, DigestSize),
		Nonce:   make([]byte, NonceSize),
		Indices: make([]byte, IndicesSize),
	}
	copy(p.Digest, b)
	copy(p.Nonce, b[DigestSize:])
	copy(p.Indices, b[DigestSize+NonceSize:])
	return p, nil
}
