package verifying

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tapedrive-io/crankx/config"
	"github.com/tapedrive-io/crankx/oracle"
	"github.com/tapedrive-io/crankx/shared"
)

// fakeVerifier accepts or rejects every candidate, standing in for the
// native puzzle predicate.
type fakeVerifier struct {
	err error
}

func (f fakeVerifier) Verify(seed, indices []byte) error {
	return f.err
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SegmentSize = 64
	return cfg
}

// buildProof assembles a proof whose digest is honestly recomputed from the
// given inputs, without running the puzzle search.
func buildProof(tb testing.TB, challenge shared.Challenge, segment []byte) *shared.Proof {
	tb.Helper()
	r := require.New(tb)

	nonce := make([]byte, shared.NonceSize)
	indices := make([]byte, shared.IndicesSize)
	for i := 0; i < shared.NumIndices; i++ {
		binary.LittleEndian.PutUint16(indices[2*i:], uint16(100+i*13))
	}

	seed, err := oracle.SeedBytes(challenge, segment, nonce)
	r.NoError(err)
	canonical, err := shared.CanonicalIndices(indices)
	r.NoError(err)

	return &shared.Proof{
		Nonce:   nonce,
		Indices: indices,
		Digest:  oracle.SolutionDigest(seed, canonical, segment),
	}
}

func TestVerify(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	r.NoError(Verify(proof, challenge, segment,
		WithConfig(cfg),
		WithPuzzleVerifier(fakeVerifier{}),
	))
}

func TestVerify_ReorderedIndicesSameDigest(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	// A differently ordered encoding of the same solution canonicalizes to
	// the same digest; a prover gains nothing by reordering.
	reordered := append([]byte(nil), proof.Indices...)
	for i := 0; i < len(reordered); i += 4 {
		reordered[i], reordered[i+2] = reordered[i+2], reordered[i]
		reordered[i+1], reordered[i+3] = reordered[i+3], reordered[i+1]
	}
	r.NotEqual(proof.Indices, reordered)
	proof.Indices = reordered

	r.NoError(Verify(proof, challenge, segment,
		WithConfig(cfg),
		WithPuzzleVerifier(fakeVerifier{}),
	))
}

func TestVerify_InvalidSolution(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	err := Verify(proof, challenge, segment,
		WithConfig(cfg),
		WithPuzzleVerifier(fakeVerifier{err: errors.New("rejected")}),
	)
	r.ErrorIs(err, shared.ErrInvalidSolution)
}

func TestVerify_DigestMismatch(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	// Last byte incremented.
	proof.Digest[shared.DigestSize-1]++
	err := Verify(proof, challenge, segment,
		WithConfig(cfg),
		WithPuzzleVerifier(fakeVerifier{}),
	)
	r.ErrorIs(err, shared.ErrDigestMismatch)
}

func TestVerify_TamperedSegment(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	tampered := append([]byte(nil), segment...)
	tampered[0] ^= 0x01
	err := Verify(proof, challenge, tampered,
		WithConfig(cfg),
		WithPuzzleVerifier(fakeVerifier{}),
	)
	r.ErrorIs(err, shared.ErrDigestMismatch)
}

func TestVerify_InvalidInput(t *testing.T) {
	r := require.New(t)

	cfg := testConfig()
	challenge := make(shared.Challenge, shared.ChallengeSize)
	segment := bytes.Repeat([]byte{0x01}, int(cfg.SegmentSize))
	proof := buildProof(t, challenge, segment)

	err := Verify(proof, challenge[:31], segment, WithConfig(cfg), WithPuzzleVerifier(fakeVerifier{}))
	r.ErrorIs(err, shared.ErrInvalidChallengeLength)

	err = Verify(proof, challenge, segment[:63], WithConfig(cfg), WithPuzzleVerifier(fakeVerifier{}))
	r.ErrorIs(err, shared.ErrInvalidSegmentLength)

	short := buildProof(t, challenge, segment)
	short.Nonce = short.Nonce[:4]
	err = Verify(short, challenge, segment, WithConfig(cfg), WithPuzzleVerifier(fakeVerifier{}))
	r.ErrorIs(err, shared.ErrInvalidNonceLength)

	badIndices := buildProof(t, challenge, segment)
	badIndices.Indices = badIndices.Indices[:8]
	err = Verify(badIndices, challenge, segment, WithConfig(cfg), WithPuzzleVerifier(fakeVerifier{}))
	r.ErrorIs(err, shared.ErrInvalidIndicesLength)

	badDigest := buildProof(t, challenge, segment)
	badDigest.Digest = badDigest.Digest[:15]
	err = Verify(badDigest, challenge, segment, WithConfig(cfg), WithPuzzleVerifier(fakeVerifier{}))
	r.ErrorIs(err, shared.ErrInvalidDigestLength)
}
