package oracle

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/tapedrive-io/crankx/shared"
)

// SeedBytes binds a challenge, a data segment and a nonce into the seed of
// one puzzle instance: challenge || segment || nonce. The segment is bound
// whole rather than through a hash of it, so segments that would collide
// under a cheaper summary still instantiate distinct puzzles.
func SeedBytes(challenge shared.Challenge, segment, nonce []byte) ([]byte, error) {
	if len(challenge) != shared.ChallengeSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidChallengeLength, shared.ChallengeSize, len(challenge))
	}
	if len(segment) == 0 {
		return nil, fmt.Errorf("%w; expected: > 0, given: %d", shared.ErrInvalidSegmentLength, len(segment))
	}
	if len(nonce) != shared.NonceSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidNonceLength, shared.NonceSize, len(nonce))
	}

	seed := make([]byte, 0, len(challenge)+len(segment)+len(nonce))
	seed = append(seed, challenge...)
	seed = append(seed, segment...)
	seed = append(seed, nonce...)
	return seed, nil
}

// SolutionDigest hashes the seed, the canonical solution and the raw
// segment into the proof digest: the first DigestSize bytes of
// Keccak-256(seed || canonical || segment). The concatenation order is part
// of the wire contract. Hashing the segment directly is what ties the proof
// to possession of the data: a verifier that doesn't hold the exact bytes
// cannot reproduce the digest.
func SolutionDigest(seed, canonical, segment []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(seed)
	h.Write(canonical)
	h.Write(segment)
	return h.Sum(nil)[:shared.DigestSize]
}
