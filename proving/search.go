package proving

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tapedrive-io/crankx/shared"
)

// Search iterates nonces across a pool of workers until a proof scores at
// least cfg.SearchDifficulty leading zero bits. Every worker owns its own
// puzzle instance, so solver arenas are never shared between in-flight
// solves. Cancelling the context stops the search between attempts; a
// running attempt is left to finish and its result discarded.
func Search(ctx context.Context, challenge shared.Challenge, segment []byte, opts ...OptionFunc) (*shared.Proof, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	if len(challenge) != shared.ChallengeSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidChallengeLength, shared.ChallengeSize, len(challenge))
	}
	if uint(len(segment)) != options.cfg.SegmentSize {
		return nil, fmt.Errorf("%w; expected: %d, given: %d", shared.ErrInvalidSegmentLength, options.cfg.SegmentSize, len(segment))
	}

	workers := int(options.cfg.SearchWorkers)
	target := options.cfg.SearchDifficulty
	options.logger.Info("proving: starting search",
		zap.Int("workers", workers),
		zap.Uint("difficulty", target),
		zap.Uint64("startNonce", options.startNonce),
	)

	var nonceCounter atomic.Uint64
	nonceCounter.Store(options.startNonce)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := make(chan *shared.Proof, workers)
	eg, egCtx := errgroup.WithContext(searchCtx)
	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			puzzle, err := options.newPuzzle()
			if err != nil {
				return err
			}
			if closer, ok := puzzle.(io.Closer); ok {
				defer closer.Close()
			}

			nonce := make([]byte, shared.NonceSize)
			for {
				select {
				case <-egCtx.Done():
					return nil
				default:
				}

				binary.LittleEndian.PutUint64(nonce, nonceCounter.Add(1)-1)

				proof, err := prove(challenge, segment, nonce, puzzle, options)
				switch {
				case errors.Is(err, shared.ErrNoSolutionFound):
					continue
				case err != nil:
					return err
				}

				if !shared.CheckLeadingZeroBits(proof.Digest, target) {
					continue
				}

				options.logger.Debug("proving: found proof",
					zap.Uint("difficulty", proof.Difficulty()),
					zap.Binary("nonce", proof.Nonce),
				)
				found <- proof
				cancel()
				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Several workers may cross the target in the same round; keep the best.
	var best *shared.Proof
	for {
		select {
		case proof := <-found:
			if best == nil || proof.Difficulty() > best.Difficulty() {
				best = proof
			}
			continue
		default:
		}
		break
	}
	if best == nil {
		return nil, ctx.Err()
	}
	return best, nil
}
