package oracle

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/internal/equix"
)

// ErrWorkOracleClosed is returned when calling a method on an already closed WorkOracle instance.
var ErrWorkOracleClosed = errors.New("work oracle has been closed")

type option struct {
	logger *zap.Logger
}

func (o *option) validate() error {
	return nil
}

// OptionFunc is a function that sets an option for a WorkOracle instance.
type OptionFunc func(*option) error

// WithLogger sets the logger used by the oracle. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(opts *option) error {
		if logger == nil {
			return errors.New("`logger` must not be nil")
		}
		opts.logger = logger
		return nil
	}
}

// WorkOracle exposes the memory-hard puzzle behind the native solver as the
// generate / validate capability the proof pipeline consumes. One instance
// owns one solver arena; it is not safe for concurrent use.
type WorkOracle struct {
	options *option
	solver  *equix.Solver
}

// New returns a WorkOracle backed by a freshly allocated solver arena.
func New(opts ...OptionFunc) (*WorkOracle, error) {
	options := &option{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	if err := options.validate(); err != nil {
		return nil, err
	}

	solver, err := equix.NewSolver()
	if err != nil {
		return nil, err
	}

	return &WorkOracle{
		options: options,
		solver:  solver,
	}, nil
}

// Close releases the oracle's solver arena.
func (w *WorkOracle) Close() error {
	if w.solver == nil {
		return ErrWorkOracleClosed
	}
	if err := w.solver.Close(); err != nil && !errors.Is(err, equix.ErrSolverClosed) {
		return err
	}
	w.solver = nil
	return nil
}

// Solve runs the puzzle search for the given seed. It may return zero, one
// or several raw solutions.
func (w *WorkOracle) Solve(seed []byte) ([][]byte, error) {
	if w.solver == nil {
		return nil, ErrWorkOracleClosed
	}

	sols, err := w.solver.Solve(seed)
	if err != nil {
		return nil, err
	}

	w.options.logger.Debug("oracle: solved seed", zap.Int("solutions", len(sols)))
	return sols, nil
}

// Verify checks that indices solve the puzzle for the given seed. Safe for
// concurrent use and usable on a closed oracle; validation contexts hold no
// arena.
func (w *WorkOracle) Verify(seed, indices []byte) error {
	return equix.Verify(seed, indices)
}
