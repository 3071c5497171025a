package shared

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	xdr "github.com/nullstyle/go-xdr/xdr3"
)

const (
	// OwnerReadWrite is a standard owner read / write file permission.
	OwnerReadWrite = os.FileMode(0o600)

	// OwnerReadWriteExec is a standard owner read / write / exec file permission.
	OwnerReadWriteExec = os.FileMode(0o700)
)

func GetProofsDir(datadir string) string {
	return filepath.Join(datadir, "proofs")
}

func GetProofFilename(datadir string, challenge []byte) string {
	// Use a special name for the zero challenge, which otherwise
	// will result in empty filename.
	c := hex.EncodeToString(challenge)
	if c == "" {
		c = "0"
	}

	return filepath.Join(GetProofsDir(datadir), c)
}

// PersistProof stores a proof on disk, keyed by the challenge it answers.
func PersistProof(datadir string, challenge []byte, proof *Proof) error {
	var w bytes.Buffer
	_, err := xdr.Marshal(&w, proof)
	if err != nil {
		return fmt.Errorf("serialization failure: %w", err)
	}

	dir := GetProofsDir(datadir)
	err = os.MkdirAll(dir, OwnerReadWriteExec)
	if err != nil {
		return fmt.Errorf("dir creation failure: %w", err)
	}

	filename := GetProofFilename(datadir, challenge)
	err = os.WriteFile(filename, w.Bytes(), OwnerReadWrite)
	if err != nil {
		return fmt.Errorf("write to disk failure: %w", err)
	}

	return nil
}

// FetchProof loads a previously persisted proof for the given challenge.
func FetchProof(datadir string, challenge []byte) (*Proof, error) {
	filename := GetProofFilename(datadir, challenge)
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProofNotExist
		}

		return nil, fmt.Errorf("read file failure: %w", err)
	}

	proof := &Proof{}
	_, err = xdr.Unmarshal(bytes.NewReader(data), proof)
	if err != nil {
		return nil, err
	}

	return proof, nil
}
