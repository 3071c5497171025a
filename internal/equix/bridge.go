package equix

// #cgo LDFLAGS: -lequix
// #include <stdlib.h>
// #include <equix.h>
import "C"

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"
)

const (
	// NumIndices is the number of indices in one solution.
	NumIndices = C.EQUIX_NUM_IDX

	// SolutionSize is the size of a serialized solution, in bytes.
	SolutionSize = NumIndices * 2

	// MaxSolutions is the maximal number of solutions one seed can yield.
	MaxSolutions = C.EQUIX_MAX_SOLS
)

var (
	ErrSolverClosed  = errors.New("equix solver has been closed")
	ErrUnsupported   = errors.New("equix is not supported on this platform")
	ErrOutOfMemory   = errors.New("failed to allocate equix context")
	ErrInvalidLength = errors.New("invalid solution length")

	ErrFailChallenge = errors.New("seed is unusable for hash construction")
	ErrFailOrder     = errors.New("indices are out of order")
	ErrFailSum       = errors.New("index sums don't meet the target")
	ErrFailInternal  = errors.New("internal solver error")
)

func resultToError(res C.equix_result) error {
	switch res {
	case C.EQUIX_OK:
		return nil
	case C.EQUIX_FAIL_CHALLENGE:
		return ErrFailChallenge
	case C.EQUIX_FAIL_ORDER:
		return ErrFailOrder
	case C.EQUIX_FAIL_PARTIAL_SUM, C.EQUIX_FAIL_FINAL_SUM:
		return ErrFailSum
	default:
		return fmt.Errorf("%w: code %d", ErrFailInternal, int(res))
	}
}

func alloc(flags C.equix_ctx_flags) (*C.equix_ctx, error) {
	ctx := C.equix_alloc(flags)
	switch {
	case ctx == nil:
		return nil, ErrOutOfMemory
	case uintptr(unsafe.Pointer(ctx)) == ^uintptr(0): // EQUIX_NOTSUPP
		return nil, ErrUnsupported
	}
	return ctx, nil
}

// Solver owns one solving context: the solver's scratch arena plus a
// reusable solution buffer. The arena is reused between calls and must
// never be shared by two in-flight solves; allocate one Solver per worker
// goroutine. A Solver must be closed after use to release the arena.
type Solver struct {
	ctx  *C.equix_ctx
	sols [MaxSolutions]C.equix_solution
}

// NewSolver allocates a solving context.
func NewSolver() (*Solver, error) {
	ctx, err := alloc(C.EQUIX_CTX_SOLVE)
	if err != nil {
		return nil, err
	}
	return &Solver{ctx: ctx}, nil
}

// Solve runs the puzzle search for the given seed and returns all solutions
// found, each serialized as eight little-endian uint16 indices in the order
// the solver emitted them.
func (s *Solver) Solve(seed []byte) ([][]byte, error) {
	if s.ctx == nil {
		return nil, ErrSolverClosed
	}
	s.reset()

	seedPtr := C.CBytes(seed)
	defer C.free(seedPtr)

	n := C.equix_solve(s.ctx, seedPtr, C.size_t(len(seed)), &s.sols[0])
	if n < 0 {
		return nil, fmt.Errorf("%w: solve returned %d", ErrFailInternal, int(n))
	}

	out := make([][]byte, n)
	for i := range out {
		buf := make([]byte, SolutionSize)
		for j := 0; j < NumIndices; j++ {
			binary.LittleEndian.PutUint16(buf[2*j:], uint16(s.sols[i].idx[j]))
		}
		out[i] = buf
	}
	return out, nil
}

// reset clears the reusable solution buffer between calls.
func (s *Solver) reset() {
	for i := range s.sols {
		s.sols[i] = C.equix_solution{}
	}
}

// Close releases the solver's arena. The Solver must not be used afterwards.
func (s *Solver) Close() error {
	if s.ctx == nil {
		return ErrSolverClosed
	}
	C.equix_free(s.ctx)
	s.ctx = nil
	return nil
}

// Verify checks that the serialized indices solve the puzzle for the given
// seed. Verification contexts hold no arena, so one is allocated per call
// and the function is safe for concurrent use.
func Verify(seed, indices []byte) error {
	if len(indices) != SolutionSize {
		return fmt.Errorf("%w; expected: %d, given: %d", ErrInvalidLength, SolutionSize, len(indices))
	}

	ctx, err := alloc(C.EQUIX_CTX_VERIFY)
	if err != nil {
		return err
	}
	defer C.equix_free(ctx)

	var sol C.equix_solution
	for j := 0; j < NumIndices; j++ {
		sol.idx[j] = C.equix_idx(binary.LittleEndian.Uint16(indices[2*j:]))
	}

	seedPtr := C.CBytes(seed)
	defer C.free(seedPtr)

	return resultToError(C.equix_verify(ctx, seedPtr, C.size_t(len(seed)), &sol))
}
