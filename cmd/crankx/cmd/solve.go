package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/proving"
	"github.com/tapedrive-io/crankx/shared"
)

var (
	solveChallengeHex string
	solveSegmentFile  string
	solveStartNonce   uint64
	solveSave         bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Search nonces for a proof of access over a data segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		challenge, err := hex.DecodeString(solveChallengeHex)
		if err != nil {
			return fmt.Errorf("failed to decode challenge: %w", err)
		}
		segment, err := os.ReadFile(solveSegmentFile)
		if err != nil {
			return fmt.Errorf("failed to read segment: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		start := time.Now()
		proof, err := proving.Search(ctx, challenge, segment,
			proving.WithConfig(cfg),
			proving.WithLogger(logger),
			proving.WithStartNonce(solveStartNonce),
		)
		if err != nil {
			return err
		}

		logger.Info("found proof",
			zap.Uint("difficulty", proof.Difficulty()),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Printf("proof: %x\n", proof.Bytes())

		if solveSave {
			if err := shared.PersistProof(cfg.DataDir, challenge, proof); err != nil {
				return err
			}
			logger.Info("persisted proof", zap.String("datadir", cfg.DataDir))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveChallengeHex, "challenge", hex.EncodeToString(make([]byte, shared.ChallengeSize)), "challenge, hex encoded")
	solveCmd.Flags().StringVar(&solveSegmentFile, "segment", "", "path to the data segment file")
	solveCmd.Flags().Uint64Var(&solveStartNonce, "start-nonce", 0, "nonce to start the search from")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "persist the proof under datadir")
	_ = solveCmd.MarkFlagRequired("segment")
}
