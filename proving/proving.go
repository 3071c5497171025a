package proving

import (
	"bytes"
	"fmt"

	"github.com/tapedrive-io/crankx/oracle"
	"github.com/tapedrive-io/crankx/shared"
)

// Prove runs one solve attempt for the given nonce: it binds the challenge,
// the segment and the nonce into a seed, solves the puzzle for it and
// returns the resulting proof. It fails with shared.ErrNoSolutionFound when
// the puzzle yields no candidate for this seed; the caller's normal
// recovery is to retry with a different nonce.
func Prove(challenge shared.Challenge, segment, nonce []byte, opts ...OptionFunc) (*shared.Proof, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	puzzle := options.puzzle
	if puzzle == nil {
		o, err := oracle.New(oracle.WithLogger(options.logger))
		if err != nil {
			return nil, err
		}
		defer o.Close()
		puzzle = o
	}

	return prove(challenge, segment, nonce, puzzle, options)
}

func prove(challenge shared.Challenge, segment, nonce []byte, puzzle shared.Puzzle, options *option) (*shared.Proof, error) {
	if uint(len(segment)) != options.cfg.SegmentSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidSegmentLength, options.cfg.SegmentSize, len(segment))
	}

	seed, err := oracle.SeedBytes(challenge, segment, nonce)
	if err != nil {
		return nil, err
	}

	candidates, err := puzzle.Solve(seed)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w for nonce %x", shared.ErrNoSolutionFound, nonce)
	}

	// A seed can yield several valid solutions. Keep the one whose digest is
	// smallest: the leading-zero score grows as the digest shrinks, so this
	// returns the highest difficulty one unit of puzzle work can claim, and
	// byte order breaks ties deterministically.
	var best *shared.Proof
	for _, indices := range candidates {
		canonical, err := shared.CanonicalIndices(indices)
		if err != nil {
			return nil, err
		}
		digest := oracle.SolutionDigest(seed, canonical, segment)

		if best == nil || bytes.Compare(digest, best.Digest) < 0 {
			best = &shared.Proof{
				Nonce:   append([]byte(nil), nonce...),
				Indices: indices,
				Digest:  digest,
			}
		}
	}

	return best, nil
}
