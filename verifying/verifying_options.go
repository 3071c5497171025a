package verifying

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/config"
	"github.com/tapedrive-io/crankx/oracle"
)

// puzzleVerifier is the slice of the puzzle capability verification needs:
// the cheap, pure validity predicate.
type puzzleVerifier interface {
	Verify(seed, indices []byte) error
}

type option struct {
	cfg      *config.Config
	logger   *zap.Logger
	verifier puzzleVerifier
}

func applyOpts(opts ...OptionFunc) (*option, error) {
	options := &option{
		cfg:      config.DefaultConfig(),
		logger:   zap.NewNop(),
		verifier: oracle.Validator{},
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

// OptionFunc is a function that sets an option for a verification.
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

// WithPuzzleVerifier sets the puzzle validity predicate. Defaults to the
// native solver's verification.
func WithPuzzleVerifier(verifier puzzleVerifier) OptionFunc {
	return func(opts *option) error {
		if verifier == nil {
			return errors.New("`verifier` must not be nil")
		}
		opts.verifier = verifier
		return nil
	}
}
