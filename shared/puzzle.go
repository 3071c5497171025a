package shared

// Puzzle is the memory-hard capability the proof pipeline consumes. The
// search algorithm itself lives in the native solver library; this core
// only relies on the two operations below.
type Puzzle interface {
	// Solve returns zero or more raw solutions valid for the seed.
	// Repeated calls with the same seed produce the same candidate set.
	// Implementations own scratch memory and are not safe for concurrent
	// use; allocate one instance per goroutine.
	Solve(seed []byte) ([][]byte, error)

	// Verify checks that indices satisfy the puzzle's consistency predicate
	// for the seed. It is cheap, pure and safe to call concurrently.
	Verify(seed, indices []byte) error
}
