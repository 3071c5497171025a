package shared

import "errors"

var (
	ErrInvalidChallengeLength = errors.New("invalid `challenge` length")
	ErrInvalidSegmentLength   = errors.New("invalid `segment` length")
	ErrInvalidNonceLength     = errors.New("invalid `nonce` length")
	ErrInvalidIndicesLength   = errors.New("invalid `indices` length")
	ErrInvalidDigestLength    = errors.New("invalid `digest` length")

	// ErrNoSolutionFound is returned when the puzzle yields no candidate for
	// a seed. The caller's recovery is to retry with a different nonce.
	ErrNoSolutionFound = errors.New("no solution found")

	// ErrInvalidSolution is returned when the supplied indices fail the
	// puzzle's validity predicate for the recomputed seed.
	ErrInvalidSolution = errors.New("invalid solution")

	// ErrDigestMismatch is returned when the recomputed digest differs from
	// the claimed one.
	ErrDigestMismatch = errors.New("digest mismatch")

	ErrProofNotExist = errors.New("proof doesn't exist")
)
