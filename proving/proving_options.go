package proving

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/config"
	"github.com/tapedrive-io/crankx/oracle"
	"github.com/tapedrive-io/crankx/shared"
)

type option struct {
	cfg    *config.Config
	logger *zap.Logger

	// puzzle is the instance used by single-attempt solves.
	puzzle shared.Puzzle

	// newPuzzle creates one puzzle instance per search worker, so no solver
	// arena is ever shared by two in-flight solves.
	newPuzzle func() (shared.Puzzle, error)

	startNonce uint64
}

func applyOpts(opts ...OptionFunc) (*option, error) {
	options := &option{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}
	options.newPuzzle = func() (shared.Puzzle, error) {
		return oracle.New(oracle.WithLogger(options.logger))
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if err := options.cfg.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// OptionFunc is a function that sets an option for a solve attempt.
type OptionFunc func(*option) error

// WithConfig sets the protocol configuration. Defaults to config.DefaultConfig().
func WithConfig(cfg *config.Config) OptionFunc {
	return func(opts *option) error {
		if cfg == nil {
			return errors.New("`cfg` must not be nil")
		}
		opts.cfg = cfg
		return nil
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opts *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		opts.logger = logger
		return nil
	}
}

// WithPuzzle sets the puzzle instance used by Prove. The caller remains
// responsible for closing it. Defaults to a fresh oracle per call.
func WithPuzzle(puzzle shared.Puzzle) OptionFunc {
	return func(opts *option) error {
		if puzzle == nil {
			return errors.New("`puzzle` must not be nil")
		}
		opts.puzzle = puzzle
		return nil
	}
}

// WithPuzzleFactory sets the factory Search uses to create one puzzle
// instance per worker. Instances implementing io.Closer are closed when
// their worker exits.
func WithPuzzleFactory(newPuzzle func() (shared.Puzzle, error)) OptionFunc {
	return func(opts *option) error {
		if newPuzzle == nil {
			return errors.New("`newPuzzle` must not be nil")
		}
		opts.newPuzzle = newPuzzle
		return nil
	}
}

// WithStartNonce sets the nonce Search begins iterating from.
func WithStartNonce(nonce uint64) OptionFunc {
	return func(opts *option) error {
		opts.startNonce = nonce
		return nil
	}
}
