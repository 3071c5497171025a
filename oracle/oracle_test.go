package oracle

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tapedrive-io/crankx/shared"
)

func TestWorkOracle(t *testing.T) {
	r := require.New(t)

	w, err := New(WithLogger(zaptest.NewLogger(t)))
	r.NoError(err)
	defer w.Close()

	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := make([]byte, 64)
	nonce := make([]byte, shared.NonceSize)

	// Scan nonces until the puzzle yields; a seed solves with probability
	// well above one half.
	for i := 0; i < 64; i++ {
		binary.LittleEndian.PutUint64(nonce, uint64(i))
		seed, err := SeedBytes(challenge, segment, nonce)
		r.NoError(err)

		sols, err := w.Solve(seed)
		r.NoError(err)
		if len(sols) == 0 {
			continue
		}

		for _, sol := range sols {
			r.Len(sol, shared.IndicesSize)
			r.NoError(w.Verify(seed, sol))
			r.NoError(Validator{}.Verify(seed, sol))
		}
		return
	}
	t.Fatal("no solution found in 64 nonces")
}

func TestWorkOracle_Closed(t *testing.T) {
	r := require.New(t)

	w, err := New()
	r.NoError(err)

	r.NoError(w.Close())
	r.ErrorIs(w.Close(), ErrWorkOracleClosed)

	_, err = w.Solve(make([]byte, 40))
	r.ErrorIs(err, ErrWorkOracleClosed)
}
