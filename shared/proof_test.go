package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testProof() *Proof {
	digest := make([]byte, DigestSize)
	nonce := make([]byte, NonceSize)
	indices := make([]byte, IndicesSize)
	for i := range digest {
		digest[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(0xA0 + i)
	}
	for i := range indices {
		indices[i] = byte(0xC0 + i)
	}
	return &Proof{Nonce: nonce, Indices: indices, Digest: digest}
}

func TestProof_Bytes(t *testing.T) {
	r := require.New(t)

	proof := testProof()
	b := proof.Bytes()
	r.Len(b, ProofSize)

	got, err := ProofFromBytes(b)
	r.NoError(err)
	r.Equal(proof, got)

	_, err = ProofFromBytes(b[:ProofSize-1])
	r.Error(err)
}

func TestProof_Difficulty(t *testing.T) {
	r := require.New(t)

	proof := testProof()
	proof.Digest = make([]byte, DigestSize)
	r.Equal(uint(MaxDifficulty), proof.Difficulty())

	proof.Digest[0] = 0x10
	r.Equal(uint(3), proof.Difficulty())
}

func TestPersistProof(t *testing.T) {
	r := require.New(t)

	datadir := t.TempDir()
	challenge := make([]byte, ChallengeSize)
	proof := testProof()

	_, err := FetchProof(datadir, challenge)
	r.ErrorIs(err, ErrProofNotExist)

	r.NoError(PersistProof(datadir, challenge, proof))

	got, err := FetchProof(datadir, challenge)
	r.NoError(err)
	r.Equal(proof, got)
}
