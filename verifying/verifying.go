package verifying

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/oracle"
	"github.com/tapedrive-io/crankx/shared"
)

// Verify ensures the validity of a proof for the given challenge and data
// segment. It rebinds the seed, checks the proof's indices against the
// puzzle's validity predicate and requires the recomputed digest to equal
// the claimed one byte for byte. It returns nil if the proof is valid or an
// error describing the failure, otherwise.
//
// Verify is side-effect free and safe to call concurrently and repeatedly.
func Verify(proof *shared.Proof, challenge shared.Challenge, segment []byte, opts ...OptionFunc) error {
	options, err := applyOpts(opts...)
	if err != nil {
		return err
	}

	if uint(len(segment)) != options.cfg.SegmentSize {
		return fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidSegmentLength, options.cfg.SegmentSize, len(segment))
	}
	if len(proof.Digest) != shared.DigestSize {
		return fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidDigestLength, shared.DigestSize, len(proof.Digest))
	}

	seed, err := oracle.SeedBytes(challenge, segment, proof.Nonce)
	if err != nil {
		return err
	}

	canonical, err := shared.CanonicalIndices(proof.Indices)
	if err != nil {
		return err
	}

	if err := options.verifier.Verify(seed, proof.Indices); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidSolution, err)
	}

	digest := oracle.SolutionDigest(seed, canonical, segment)
	if !bytes.Equal(digest, proof.Digest) {
		return fmt.Errorf("%w; expected: %x, given: %x", shared.ErrDigestMismatch, digest, proof.Digest)
	}

	options.logger.Debug("verifying: proof is valid",
		zap.Binary("nonce", proof.Nonce),
		zap.Uint("difficulty", proof.Difficulty()),
	)
	return nil
}
