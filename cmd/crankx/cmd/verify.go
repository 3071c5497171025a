package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapedrive-io/crankx/shared"
	"github.com/tapedrive-io/crankx/verifying"
)

var (
	verifyChallengeHex string
	verifySegmentFile  string
	verifyProofHex     string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a proof of access against the segment bytes",
	RunE: func(cmd *cobra.Command, args []string) error {
		challenge, err := hex.DecodeString(verifyChallengeHex)
		if err != nil {
			return fmt.Errorf("failed to decode challenge: %w", err)
		}
		segment, err := os.ReadFile(verifySegmentFile)
		if err != nil {
			return fmt.Errorf("failed to read segment: %w", err)
		}

		var proof *shared.Proof
		if verifyProofHex != "" {
			b, err := hex.DecodeString(verifyProofHex)
			if err != nil {
				return fmt.Errorf("failed to decode proof: %w", err)
			}
			proof, err = shared.ProofFromBytes(b)
			if err != nil {
				return err
			}
		} else {
			proof, err = shared.FetchProof(cfg.DataDir, challenge)
			if err != nil {
				return err
			}
		}

		if err := verifying.Verify(proof, challenge, segment,
			verifying.WithConfig(cfg),
			verifying.WithLogger(logger),
		); err != nil {
			return err
		}

		fmt.Printf("proof is valid; difficulty: %d\n", proof.Difficulty())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyChallengeHex, "challenge", hex.EncodeToString(make([]byte, shared.ChallengeSize)), "challenge, hex encoded")
	verifyCmd.Flags().StringVar(&verifySegmentFile, "segment", "", "path to the data segment file")
	verifyCmd.Flags().StringVar(&verifyProofHex, "proof", "", "proof, hex encoded; fetched from datadir when omitted")
	_ = verifyCmd.MarkFlagRequired("segment")
}
