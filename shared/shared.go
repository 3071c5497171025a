package shared

// Byte widths of the values exchanged between provers and verifiers.
// They are part of the wire contract and must be preserved exactly.
const (
	// ChallengeSize is the size of an externally assigned challenge.
	ChallengeSize = 32

	// NonceSize is the size of the prover-chosen nonce.
	NonceSize = 8

	// NumIndices is the number of indices in one puzzle solution.
	NumIndices = 8

	// IndicesSize is the size of a serialized puzzle solution:
	// eight little-endian uint16 indices.
	IndicesSize = NumIndices * 2

	// DigestSize is the size of a proof digest.
	DigestSize = 16

	// MaxDifficulty is the difficulty of an all-zero digest.
	MaxDifficulty = DigestSize * 8
)

// Challenge is an externally assigned value the proof commits to.
type Challenge []byte
